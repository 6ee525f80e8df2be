package bot

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/catalog"
	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// catalogCommand opens the paged catalog view
func (b *Bot) catalogCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "catalog",
		Description: "Browse the skin catalog",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "search",
				Description: "Filter by name or description",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()

		term := ""
		if opts := getOptions(i); len(opts) > 0 {
			term = opts[0].StringValue()
		}

		skins, err := b.deps.Catalog.Search(ctx, term)
		if err != nil {
			slog.Error("Failed to load catalog", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed, components := b.catalogView(skins, 0)
		sendEmbed(s, i, embed, components)
	}

	return cmd, handler
}

// catalogView renders one catalog page with skin buttons and nav controls
func (b *Bot) catalogView(skins []domain.Skin, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	pageSkins, page, totalPages := catalog.Paginate(skins, page)

	embed := createEmbed("🛍️ Catalog", renderSkinList(pageSkins), ColorInfo, pageFooter(page, totalPages))

	var skinButtons []discordgo.MessageComponent
	for idx, skin := range pageSkins {
		skinButtons = append(skinButtons, discordgo.Button{
			Label:    fmt.Sprintf("%d", page*catalog.PageSize+idx+1),
			Style:    discordgo.SecondaryButton,
			CustomID: Command{Action: ActionSkinView, SkinID: skin.ID, Page: page}.CustomID(),
		})
	}

	nav := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "◀",
			Style:    discordgo.PrimaryButton,
			Disabled: page == 0,
			CustomID: Command{Action: ActionCatalogPage, Page: page - 1}.CustomID(),
		},
		discordgo.Button{
			Label:    "▶",
			Style:    discordgo.PrimaryButton,
			Disabled: page >= totalPages-1,
			CustomID: Command{Action: ActionCatalogPage, Page: page + 1}.CustomID(),
		},
		discordgo.Button{
			Label:    "🛒 Cart",
			Style:    discordgo.SuccessButton,
			CustomID: Command{Action: ActionCartView}.CustomID(),
		},
	}

	components := []discordgo.MessageComponent{}
	if len(skinButtons) > 0 {
		components = append(components, discordgo.ActionsRow{Components: skinButtons})
	}
	components = append(components, discordgo.ActionsRow{Components: nav})
	return embed, components
}

// skinCommand shows a single skin in detail
func (b *Bot) skinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "skin",
		Description: "View one skin in detail",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Skin id from the catalog",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()

		skinID := getOptions(i)[0].IntValue()
		skin, err := b.deps.Catalog.GetSkin(ctx, skinID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		embed, components := b.skinDetailView(*skin, 0)
		sendEmbed(s, i, embed, components)
	}

	return cmd, handler
}

// skinDetailView renders the skin card with purchase controls
func (b *Bot) skinDetailView(skin domain.Skin, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := createEmbed("🎨 "+skin.Name, renderSkinDetail(skin), ColorInfo, "")
	if skin.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: skin.ImageURL}
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Buy now",
				Style:    discordgo.SuccessButton,
				Disabled: !skin.Available(),
				CustomID: Command{Action: ActionBuy, SkinID: skin.ID, Page: page}.CustomID(),
			},
			discordgo.Button{
				Label:    "Add to cart",
				Style:    discordgo.PrimaryButton,
				Disabled: !skin.Available(),
				CustomID: Command{Action: ActionCartAdd, SkinID: skin.ID, Page: page}.CustomID(),
			},
			discordgo.Button{
				Label:    "Withdraw",
				Style:    discordgo.SecondaryButton,
				CustomID: Command{Action: ActionWithdraw, SkinID: skin.ID}.CustomID(),
			},
			discordgo.Button{
				Label:    "Back to catalog",
				Style:    discordgo.SecondaryButton,
				CustomID: Command{Action: ActionCatalogPage, Page: page}.CustomID(),
			},
		}},
	}
	return embed, components
}

// photoCommand shows just the image of a skin
func (b *Bot) photoCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "photo",
		Description: "View a skin's image",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "id",
				Description: "Skin id from the catalog",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()

		skinID := getOptions(i)[0].IntValue()
		skin, err := b.deps.Catalog.GetSkin(ctx, skinID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		if skin.ImageURL == "" {
			respondError(s, i, "No image for this skin.")
			return
		}

		embed := createEmbed(skin.Name, "", ColorInfo, "")
		embed.Image = &discordgo.MessageEmbedImage{URL: skin.ImageURL}
		sendEmbed(s, i, embed, nil)
	}

	return cmd, handler
}
