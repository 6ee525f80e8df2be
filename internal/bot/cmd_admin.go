package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/adminflow"
	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

// isAdmin reports whether the interaction comes from the configured admin
func (b *Bot) isAdmin(i *discordgo.InteractionCreate) bool {
	userID, err := interactionUserID(i)
	if err != nil {
		return false
	}
	return userID == b.adminUserID
}

// adminCommand opens the admin menu
func (b *Bot) adminCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "admin",
		Description: "Shop administration",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}
		if !b.isAdmin(i) {
			respondError(s, i, MsgNotAdmin)
			return
		}

		desc := "Manage the catalog and user balances.\n" +
			"Add, delete and balance actions expect your next message as input."
		sendEmbed(s, i, createEmbed("🛠️ Admin Panel", desc, ColorAdmin, FooterSkinShopAdmin), adminMenuComponents())
	}

	return cmd, handler
}

func adminMenuComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Add skin", Style: discordgo.SuccessButton, CustomID: Command{Action: ActionAdminAddItem}.CustomID()},
			discordgo.Button{Label: "Delete skin", Style: discordgo.DangerButton, CustomID: Command{Action: ActionAdminDeleteItem}.CustomID()},
			discordgo.Button{Label: "Set balance", Style: discordgo.PrimaryButton, CustomID: Command{Action: ActionAdminEditBalance}.CustomID()},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Users", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionAdminListUsers}.CustomID()},
			discordgo.Button{Label: "Stats", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionAdminStats}.CustomID()},
			discordgo.Button{Label: "Find skin", Style: discordgo.SecondaryButton, CustomID: Command{Action: ActionAdminSearch}.CustomID()},
		}},
	}
}

// handleAdminComponent runs the admin menu actions. Prompting actions arm
// the pending-action session; the admin's next message completes them.
func (b *Bot) handleAdminComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cmd Command) {
	if !deferResponse(s, i) {
		return
	}
	if !b.isAdmin(i) {
		respondError(s, i, MsgNotAdmin)
		return
	}

	switch cmd.Action {
	case ActionAdminAddItem:
		b.sessions.Begin(b.adminUserID, adminflow.StateAwaitingNewItem)
		respondError(s, i, "Send the new skin as:\n`name|description|price|rarity|external_ref|image_url|quantity`\nRarity: Legendary, Godly or Ancient.")
	case ActionAdminDeleteItem:
		b.sessions.Begin(b.adminUserID, adminflow.StateAwaitingDeletion)
		respondError(s, i, "Send the skin id to delete.")
	case ActionAdminEditBalance:
		b.sessions.Begin(b.adminUserID, adminflow.StateAwaitingBalanceEdit)
		respondError(s, i, "Send the new balance as:\n`user_id|amount`")
	case ActionAdminSearch:
		b.sessions.Begin(b.adminUserID, adminflow.StateAwaitingSearch)
		respondError(s, i, "Send a search term.")
	case ActionAdminListUsers:
		b.adminListUsers(ctx, s, i)
	case ActionAdminStats:
		b.adminStats(ctx, s, i)
	}
}

func (b *Bot) adminListUsers(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	users, err := b.deps.Admin.ListUsers(ctx)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	var sb strings.Builder
	for idx, u := range users {
		if idx == 20 {
			fmt.Fprintf(&sb, "… and %d more\n", len(users)-idx)
			break
		}
		fmt.Fprintf(&sb, "`%d` **%s** — %s\n", u.ID, u.DisplayName(), formatMoney(u.Balance))
	}
	if sb.Len() == 0 {
		sb.WriteString("No users yet.")
	}

	sendEmbed(s, i, createEmbed("👥 Users", sb.String(), ColorAdmin, FooterSkinShopAdmin), nil)
}

func (b *Bot) adminStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	stats, err := b.deps.Stats.Detailed(ctx)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	sendEmbed(s, i, createEmbed("📊 Shop Stats", renderDetailedStats(stats), ColorAdmin, FooterSkinShopAdmin), nil)
}

func renderDetailedStats(stats *domain.DetailedStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Users: **%d**\nSkins: **%d**\nPurchases: **%d**\nRevenue: **%s**\n",
		stats.TotalUsers, stats.TotalSkins, stats.TotalPurchases, formatMoney(stats.TotalRevenue))

	if len(stats.RarityBreakdown) > 0 {
		sb.WriteString("\n**By rarity**\n")
		for _, r := range stats.RarityBreakdown {
			fmt.Fprintf(&sb, "%s %s: %d (%s)\n", rarityEmoji(r.Rarity), r.Rarity, r.Count, formatMoney(r.TotalValue))
		}
	}

	if len(stats.TopUsers) > 0 {
		sb.WriteString("\n**Top balances**\n")
		for _, u := range stats.TopUsers {
			fmt.Fprintf(&sb, "• %s — %s\n", u.DisplayName(), formatMoney(u.Balance))
		}
	}

	if len(stats.BestSellers) > 0 {
		sb.WriteString("\n**Best sellers**\n")
		for _, sk := range stats.BestSellers {
			fmt.Fprintf(&sb, "• %s — %d sold\n", sk.Name, sk.Sales)
		}
	}
	return sb.String()
}
