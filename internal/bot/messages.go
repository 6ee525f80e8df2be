package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "⚠️ **Not Enough Balance!**\nTop up your balance to complete this purchase."
	MsgItemNotFound      = "❓ **Skin Not Found**\nIt may have been removed from the catalog."
	MsgOutOfStock        = "📦 **Out of Stock**\nThat skin is sold out."
	MsgAlreadyInCart     = "🛒 **Already in Cart**\nThat skin is in your cart already."
	MsgAlreadyOwned      = "🎒 **Already Owned**\nYou already own that skin."
	MsgEmptyCart         = "🛒 **Cart is Empty**\nAdd some skins from the catalog first."
	MsgNotOwned          = "🎒 **Not in Inventory**\nYou don't own that skin."
	MsgUserNotFound      = "👤 **User Not Found**\nTry /start first."
	MsgInvalidInput      = "✏️ **Invalid Input**\nCheck the format and try again."
	MsgGenericError      = "❌ Something went wrong. Please try again later."

	MsgStockChangedFmt = "📦 **Stock Changed**\n**%s** ran out of stock. Remove it from the cart and try again."
)

// MsgTopUpInstructions is shown for balance top-ups; deposits are handled
// manually by the operator, off-platform.
const MsgTopUpInstructions = "To top up your balance, contact the shop admin. " +
	"Your balance is updated manually after the payment is confirmed."

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorAdmin   = 0x95a5a6
)

// rarityEmoji maps a rarity tier to its catalog marker
func rarityEmoji(r domain.Rarity) string {
	switch r {
	case domain.RarityLegendary:
		return "🌟"
	case domain.RarityGodly:
		return "🔥"
	case domain.RarityAncient:
		return "💎"
	default:
		return "⚪"
	}
}

// formatMoney renders a balance or price with two decimals
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// renderSkinLine is the one-line catalog listing of a skin
func renderSkinLine(skin domain.Skin) string {
	return fmt.Sprintf("%s **%s** — %s (%d left)", rarityEmoji(skin.Rarity), skin.Name, formatMoney(skin.Price), skin.Quantity)
}

// renderSkinDetail is the full card shown by /skin and the skin view button
func renderSkinDetail(skin domain.Skin) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s **%s**\n", rarityEmoji(skin.Rarity), skin.Name)
	if skin.Description != "" {
		fmt.Fprintf(&sb, "%s\n", skin.Description)
	}
	fmt.Fprintf(&sb, "\nRarity: **%s**\n", skin.Rarity)
	fmt.Fprintf(&sb, "Price: **%s**\n", formatMoney(skin.Price))
	fmt.Fprintf(&sb, "In stock: **%d**", skin.Quantity)
	return sb.String()
}

// renderSkinList renders one page of skins as embed text
func renderSkinList(skins []domain.Skin) string {
	if len(skins) == 0 {
		return "Nothing here yet."
	}
	var sb strings.Builder
	for _, skin := range skins {
		sb.WriteString(renderSkinLine(skin))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderCartItems renders the cart view with its live total
func renderCartItems(items []domain.CartItem) string {
	if len(items) == 0 {
		return MsgEmptyCart
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(renderSkinLine(item.Skin))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\nTotal: **%s**", formatMoney(domain.CartTotal(items)))
	return sb.String()
}

// pageFooter renders the "page x of y" suffix
func pageFooter(page, totalPages int) string {
	return fmt.Sprintf("Page %d of %d", page+1, totalPages)
}
