package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleComponent decodes the component's custom_id once and dispatches on
// the resulting Command
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cmd, err := ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		slog.Warn("Ignoring unknown component", "error", err)
		return
	}

	ctx := requestContext()

	switch cmd.Action {
	case ActionCatalogPage:
		b.showCatalogPage(ctx, s, i, cmd.Page)
	case ActionSkinView:
		b.showSkinView(ctx, s, i, cmd)
	case ActionInventoryPage:
		b.showInventoryPage(ctx, s, i, cmd.Page)
	case ActionBuy:
		b.buyNow(ctx, s, i, cmd.SkinID)
	case ActionCartAdd:
		b.addToCart(ctx, s, i, cmd.SkinID)
	case ActionCartRemove:
		b.removeFromCart(ctx, s, i, cmd.SkinID)
	case ActionCartView:
		b.showCart(ctx, s, i)
	case ActionCartClear:
		b.clearCart(ctx, s, i)
	case ActionCheckout:
		b.checkout(ctx, s, i)
	case ActionWithdraw:
		b.withdrawRequest(ctx, s, i, cmd.SkinID)
	case ActionWithdrawConfirm:
		b.withdrawConfirm(ctx, s, i, cmd.SkinID)
	case ActionAdminAddItem, ActionAdminDeleteItem, ActionAdminEditBalance,
		ActionAdminListUsers, ActionAdminStats, ActionAdminSearch:
		b.handleAdminComponent(ctx, s, i, cmd)
	}
}

// deferUpdate acknowledges a component interaction so the original message
// can be edited in place
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error("Failed to defer message update", "error", err)
		return false
	}
	return true
}

func (b *Bot) showCatalogPage(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, page int) {
	if !deferUpdate(s, i) {
		return
	}

	skins, err := b.deps.Catalog.ListAvailable(ctx)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	embed, components := b.catalogView(skins, page)
	sendEmbed(s, i, embed, components)
}

func (b *Bot) showSkinView(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cmd Command) {
	if !deferUpdate(s, i) {
		return
	}

	skin, err := b.deps.Catalog.GetSkin(ctx, cmd.SkinID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	embed, components := b.skinDetailView(*skin, cmd.Page)
	sendEmbed(s, i, embed, components)
}

func (b *Bot) showInventoryPage(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, page int) {
	if !deferUpdate(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}

	owned, err := b.deps.Users.ListInventory(ctx, userID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	embed, components := b.inventoryView(owned, page)
	sendEmbed(s, i, embed, components)
}

// buyNow purchases a single skin directly, skipping the cart
func (b *Bot) buyNow(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, skinID int64) {
	if !deferResponse(s, i) {
		return
	}

	u, err := b.registerInteractionUser(ctx, i)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	receipt, err := b.deps.Shop.PurchaseOne(ctx, u.ID, skinID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	desc := fmt.Sprintf("%s **%s** is yours!\n\nCharged: **%s**\nBalance: **%s**",
		rarityEmoji(receipt.Skin.Rarity), receipt.Skin.Name,
		formatMoney(receipt.Price), formatMoney(receipt.Balance))
	sendEmbed(s, i, createEmbed("✅ Purchase Complete", desc, ColorSuccess, ""), []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Inventory", Style: discordgo.PrimaryButton, CustomID: Command{Action: ActionInventoryPage}.CustomID()},
			discordgo.Button{Label: "Keep browsing", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionCatalogPage}.CustomID()},
		}},
	})
}

func (b *Bot) addToCart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, skinID int64) {
	if !deferResponse(s, i) {
		return
	}

	u, err := b.registerInteractionUser(ctx, i)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	if err := b.deps.Cart.Add(ctx, u.ID, skinID); err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	count, _ := b.deps.Cart.Count(ctx, u.ID)
	desc := fmt.Sprintf("Added to cart. You now have **%d** item(s).", count)
	sendEmbed(s, i, createEmbed("🛒 Cart", desc, ColorSuccess, ""), []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "View cart", Style: discordgo.PrimaryButton, CustomID: Command{Action: ActionCartView}.CustomID()},
			discordgo.Button{Label: "Keep browsing", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionCatalogPage}.CustomID()},
		}},
	})
}

func (b *Bot) removeFromCart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, skinID int64) {
	if !deferUpdate(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}

	if err := b.deps.Cart.Remove(ctx, userID, skinID); err != nil {
		respondFriendlyError(s, i, err)
		return
	}
	b.renderCart(ctx, s, i, userID)
}

func (b *Bot) showCart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferUpdate(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}
	b.renderCart(ctx, s, i, userID)
}

// renderCart edits the interaction response into the cart view
func (b *Bot) renderCart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	items, err := b.deps.Cart.List(ctx, userID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	embed := createEmbed("🛒 Your Cart", renderCartItems(items), ColorInfo, "")

	var removeButtons []discordgo.MessageComponent
	for idx, item := range items {
		if idx == 5 {
			break
		}
		removeButtons = append(removeButtons, discordgo.Button{
			Label:    fmt.Sprintf("Remove %d", idx+1),
			Style:    discordgo.DangerButton,
			CustomID: Command{Action: ActionCartRemove, SkinID: item.SkinID}.CustomID(),
		})
	}

	actions := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Checkout",
			Style:    discordgo.SuccessButton,
			Disabled: len(items) == 0,
			CustomID: Command{Action: ActionCheckout}.CustomID(),
		},
		discordgo.Button{
			Label:    "Clear",
			Style:    discordgo.DangerButton,
			Disabled: len(items) == 0,
			CustomID: Command{Action: ActionCartClear}.CustomID(),
		},
		discordgo.Button{
			Label:    "Catalog",
			Style:    discordgo.SecondaryButton,
			CustomID: Command{Action: ActionCatalogPage}.CustomID(),
		},
	}

	components := []discordgo.MessageComponent{}
	if len(removeButtons) > 0 {
		components = append(components, discordgo.ActionsRow{Components: removeButtons})
	}
	components = append(components, discordgo.ActionsRow{Components: actions})
	sendEmbed(s, i, embed, components)
}

func (b *Bot) clearCart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferUpdate(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}

	if err := b.deps.Cart.Clear(ctx, userID); err != nil {
		respondFriendlyError(s, i, err)
		return
	}
	b.renderCart(ctx, s, i, userID)
}

func (b *Bot) checkout(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !deferResponse(s, i) {
		return
	}

	u, err := b.registerInteractionUser(ctx, i)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	result, err := b.deps.Shop.CheckoutCart(ctx, u.ID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	var sb strings.Builder
	if len(result.Purchased) > 0 {
		sb.WriteString("You bought:\n")
		for _, skin := range result.Purchased {
			fmt.Fprintf(&sb, "• %s %s\n", rarityEmoji(skin.Rarity), skin.Name)
		}
	}
	for _, skin := range result.Skipped {
		fmt.Fprintf(&sb, "• %s — skipped, already owned\n", skin.Name)
	}
	fmt.Fprintf(&sb, "\nCharged: **%s**\nBalance: **%s**", formatMoney(result.Total), formatMoney(result.Balance))

	sendEmbed(s, i, createEmbed("✅ Checkout Complete", sb.String(), ColorSuccess, ""), nil)
}

func (b *Bot) withdrawRequest(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, skinID int64) {
	if !deferResponse(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}

	skin, err := b.deps.Withdrawal.Request(ctx, userID, skinID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	desc := fmt.Sprintf(
		"You are withdrawing %s **%s** to the game.\n\n"+
			"The admin will trade it to you in-game. Once you receive it, press Confirm. "+
			"The skin leaves your shop inventory permanently.",
		rarityEmoji(skin.Rarity), skin.Name)

	sendEmbed(s, i, createEmbed("📤 Withdrawal", desc, ColorWarning, ""), []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Confirm received",
				Style:    discordgo.SuccessButton,
				CustomID: Command{Action: ActionWithdrawConfirm, SkinID: skinID}.CustomID(),
			},
		}},
	})
}

func (b *Bot) withdrawConfirm(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, skinID int64) {
	if !deferResponse(s, i) {
		return
	}

	userID, err := interactionUserID(i)
	if err != nil {
		respondError(s, i, MsgGenericError)
		return
	}

	skin, err := b.deps.Withdrawal.Confirm(ctx, userID, skinID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	desc := fmt.Sprintf("%s **%s** has been handed off. Enjoy!", rarityEmoji(skin.Rarity), skin.Name)
	sendEmbed(s, i, createEmbed("✅ Withdrawal Complete", desc, ColorSuccess, ""), nil)
}
