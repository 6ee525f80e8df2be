package bot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/catalog"
	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// inventoryCommand shows the skins the user owns
func (b *Bot) inventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show the skins you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()

		userID, err := interactionUserID(i)
		if err != nil {
			respondError(s, i, MsgGenericError)
			return
		}

		owned, err := b.deps.Users.ListInventory(ctx, userID)
		if err != nil {
			slog.Error("Failed to load inventory", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed, components := b.inventoryView(owned, 0)
		sendEmbed(s, i, embed, components)
	}

	return cmd, handler
}

// inventoryView renders one inventory page with withdraw buttons
func (b *Bot) inventoryView(owned []domain.OwnedSkin, page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	pageOwned, page, totalPages := catalog.Paginate(owned, page)

	var sb strings.Builder
	if len(pageOwned) == 0 {
		sb.WriteString("You don't own any skins yet. Check out /catalog!")
	} else {
		for _, o := range pageOwned {
			fmt.Fprintf(&sb, "%s **%s** — bought %s\n", rarityEmoji(o.Skin.Rarity), o.Skin.Name, o.PurchasedAt.Format("2006-01-02"))
		}
		sb.WriteString("\nUse the buttons to withdraw a skin to the game.")
	}

	embed := createEmbed("🎒 Inventory", sb.String(), ColorInfo, pageFooter(page, totalPages))

	var withdrawButtons []discordgo.MessageComponent
	for idx, o := range pageOwned {
		withdrawButtons = append(withdrawButtons, discordgo.Button{
			Label:    fmt.Sprintf("Withdraw %d", page*catalog.PageSize+idx+1),
			Style:    discordgo.SecondaryButton,
			CustomID: Command{Action: ActionWithdraw, SkinID: o.SkinID, Page: page}.CustomID(),
		})
	}

	nav := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "◀",
			Style:    discordgo.PrimaryButton,
			Disabled: page == 0,
			CustomID: Command{Action: ActionInventoryPage, Page: page - 1}.CustomID(),
		},
		discordgo.Button{
			Label:    "▶",
			Style:    discordgo.PrimaryButton,
			Disabled: page >= totalPages-1,
			CustomID: Command{Action: ActionInventoryPage, Page: page + 1}.CustomID(),
		},
	}

	components := []discordgo.MessageComponent{}
	if len(withdrawButtons) > 0 {
		components = append(components, discordgo.ActionsRow{Components: withdrawButtons})
	}
	components = append(components, discordgo.ActionsRow{Components: nav})
	return embed, components
}
