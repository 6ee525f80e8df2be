package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/user"
)

// startCommand registers the user and shows the entry menu
func (b *Bot) startCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Register and open the shop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()

		u, err := b.registerInteractionUser(ctx, i)
		if err != nil {
			slog.Error("Failed to register user", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		desc := fmt.Sprintf("Welcome, **%s**!\nYour balance: **%s**\n\nBrowse the catalog and build your collection.", u.DisplayName(), formatMoney(u.Balance))
		embed := createEmbed("👋 SkinShop", desc, ColorInfo, "")
		sendEmbed(s, i, embed, []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Catalog", Style: discordgo.PrimaryButton, CustomID: Command{Action: ActionCatalogPage}.CustomID()},
				discordgo.Button{Label: "Cart", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionCartView}.CustomID()},
			}},
		})
	}

	return cmd, handler
}

// helpCommand lists the available commands
func (b *Bot) helpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "How to use the shop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		var sb strings.Builder
		sb.WriteString("**/start** — register and open the shop\n")
		sb.WriteString("**/catalog** — browse available skins\n")
		sb.WriteString("**/skin** — view one skin in detail\n")
		sb.WriteString("**/photo** — view a skin's image\n")
		sb.WriteString("**/balance** — balance and purchase history\n")
		sb.WriteString("**/inventory** — skins you own\n")
		sb.WriteString("**/myid** — your numeric id\n\n")
		sb.WriteString(MsgTopUpInstructions)

		sendEmbed(s, i, createEmbed("ℹ️ Help", sb.String(), ColorInfo, ""), nil)
	}

	return cmd, handler
}

// balanceCommand shows the balance with recent purchases
func (b *Bot) balanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show your balance and recent purchases",
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

		// Balance is a read: someone who never registered gets pointed at
		// /start instead of being silently created with an empty account.
		u, err := b.deps.Users.Get(ctx, userID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		purchases, err := b.deps.Users.PurchaseHistory(ctx, u.ID)
		if err != nil {
			slog.Error("Failed to load purchase history", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Balance: **%s**\n\n", formatMoney(u.Balance))
		if len(purchases) == 0 {
			sb.WriteString("No purchases yet.\n")
		} else {
			sb.WriteString("Recent purchases:\n")
			for idx, p := range purchases {
				if idx == 5 {
					break
				}
				fmt.Fprintf(&sb, "• %s — %s\n", p.Description, formatMoney(p.Amount.Abs()))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(MsgTopUpInstructions)

		sendEmbed(s, i, createEmbed("💰 Balance", sb.String(), ColorInfo, ""), nil)
	}

	return cmd, handler
}

// myIDCommand shows the caller's numeric id, used for manual top-ups
func (b *Bot) myIDCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "myid",
		Description: "Show your numeric user id",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		userID, err := interactionUserID(i)
		if err != nil {
			respondError(s, i, MsgGenericError)
			return
		}
		sendEmbed(s, i, createEmbed("🆔 Your ID", fmt.Sprintf("`%d`", userID), ColorInfo, ""), nil)
	}

	return cmd, handler
}

// registerInteractionUser upserts the interaction's author and returns the
// stored user. Every entry point goes through this so first contact never
// needs an explicit /start.
func (b *Bot) registerInteractionUser(ctx context.Context, i *discordgo.InteractionCreate) (*domain.User, error) {
	userID, err := interactionUserID(i)
	if err != nil {
		return nil, err
	}

	du := getInteractionUser(i)
	return b.deps.Users.Register(ctx, user.Identity{
		ID:        userID,
		Username:  du.Username,
		FirstName: du.GlobalName,
	})
}
