package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/notify"
)

// AdminNotifier DMs the configured admin about purchases and withdrawals,
// mirroring the operator's fulfillment workflow: every sale and every
// hand-off needs a human follow-up.
type AdminNotifier struct {
	session *discordgo.Session
	adminID string
}

// NewAdminNotifier creates a notifier that DMs the given admin
func NewAdminNotifier(session *discordgo.Session, adminUserID int64) *AdminNotifier {
	return &AdminNotifier{
		session: session,
		adminID: strconv.FormatInt(adminUserID, 10),
	}
}

var _ notify.Notifier = (*AdminNotifier)(nil)

// PurchaseCompleted notifies the admin of a completed purchase
func (n *AdminNotifier) PurchaseCompleted(ctx context.Context, user domain.User, skins []domain.Skin, total decimal.Decimal, at time.Time) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** (`%d`) bought:\n", user.DisplayName(), user.ID)
	for _, skin := range skins {
		fmt.Fprintf(&sb, "• %s %s — %s\n", rarityEmoji(skin.Rarity), skin.Name, formatMoney(skin.Price))
	}
	fmt.Fprintf(&sb, "\nTotal: **%s**\nAt: %s", formatMoney(total), at.Format(time.RFC1123))

	go n.dm(createEmbed("💸 New Purchase", sb.String(), ColorSuccess, FooterSkinShopAdmin))
}

// WithdrawalConfirmed notifies the admin of a confirmed withdrawal
func (n *AdminNotifier) WithdrawalConfirmed(ctx context.Context, user domain.User, skin domain.Skin, at time.Time) {
	desc := fmt.Sprintf("**%s** (`%d`) confirmed receiving %s **%s**.\nAt: %s",
		user.DisplayName(), user.ID, rarityEmoji(skin.Rarity), skin.Name, at.Format(time.RFC1123))

	go n.dm(createEmbed("📤 Withdrawal Confirmed", desc, ColorWarning, FooterSkinShopAdmin))
}

func (n *AdminNotifier) dm(embed *discordgo.MessageEmbed) {
	channel, err := n.session.UserChannelCreate(n.adminID)
	if err != nil {
		slog.Error("Failed to open admin DM channel", "error", err)
		return
	}
	if _, err := n.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		slog.Error("Failed to send admin notification", "error", err)
	}
}
