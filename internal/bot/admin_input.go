package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/adminflow"
)

// MsgNotAdmin is shown when a non-admin touches admin controls
const MsgNotAdmin = "🚫 This is for the shop admin only."

// messageCreate feeds the admin's free-form messages into the armed
// pending action. Everyone else's messages are ignored.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	authorID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil || authorID != b.adminUserID {
		return
	}

	state := b.sessions.Get(b.adminUserID)
	if state == adminflow.StateIdle {
		return
	}
	// One message per armed action, success or not
	b.sessions.Clear(b.adminUserID)

	ctx := requestContext()
	reply := b.runAdminInput(ctx, state, m.Content)

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, createEmbed("🛠️ Admin", reply, ColorAdmin, FooterSkinShopAdmin)); err != nil {
		slog.Error("Failed to send admin reply", "error", err)
	}
}

// runAdminInput executes the armed action against the message text and
// returns the reply to show the admin
func (b *Bot) runAdminInput(ctx context.Context, state adminflow.State, text string) string {
	switch state {
	case adminflow.StateAwaitingNewItem:
		input, err := adminflow.ParseSkinInput(text)
		if err != nil {
			return formatFriendlyError(err)
		}
		skin, err := b.deps.Admin.AddSkin(ctx, input)
		if err != nil {
			return formatFriendlyError(err)
		}
		return fmt.Sprintf("Added %s **%s** (id `%d`) at %s, stock %d.",
			rarityEmoji(skin.Rarity), skin.Name, skin.ID, formatMoney(skin.Price), skin.Quantity)

	case adminflow.StateAwaitingDeletion:
		skinID, err := adminflow.ParseSkinID(text)
		if err != nil {
			return formatFriendlyError(err)
		}
		if err := b.deps.Admin.DeleteSkin(ctx, skinID); err != nil {
			return formatFriendlyError(err)
		}
		return fmt.Sprintf("Skin `%d` deleted. Owners keep their copies.", skinID)

	case adminflow.StateAwaitingBalanceEdit:
		userID, balance, err := adminflow.ParseBalanceEdit(text)
		if err != nil {
			return formatFriendlyError(err)
		}
		u, err := b.deps.Admin.SetBalance(ctx, userID, balance)
		if err != nil {
			return formatFriendlyError(err)
		}
		return fmt.Sprintf("Balance of **%s** set to %s.", u.DisplayName(), formatMoney(u.Balance))

	case adminflow.StateAwaitingSearch:
		skins, err := b.deps.Catalog.Search(ctx, text)
		if err != nil {
			return formatFriendlyError(err)
		}
		if len(skins) == 0 {
			return "No skins match."
		}
		var sb strings.Builder
		for _, skin := range skins {
			fmt.Fprintf(&sb, "`%d` %s\n", skin.ID, renderSkinLine(skin))
		}
		return sb.String()

	default:
		return MsgGenericError
	}
}
