package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes a slash command interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	if h, ok := r.Handlers[name]; ok {
		metrics.CommandsTotal.WithLabelValues(name).Inc()
		h(s, i)
	}
}

// RegisterCommands registers/updates commands with Discord. Skips the bulk
// overwrite when nothing changed to stay clear of rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok {
			return false
		}
		if !commandEqual(have, want) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		o, p := a.Options[i], b.Options[i]
		if o.Type != p.Type || o.Name != p.Name || o.Description != p.Description || o.Required != p.Required {
			return false
		}
	}
	return true
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before anything that might outlive Discord's 3 second window.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// interactionUserID parses the Discord snowflake into the numeric user id
// the store keys on
func interactionUserID(i *discordgo.InteractionCreate) (int64, error) {
	u := getInteractionUser(i)
	if u == nil {
		return 0, errors.New("interaction has no user")
	}
	return strconv.ParseInt(u.ID, 10, 64)
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondError sends a plain error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps a business error to a readable message before
// responding. Storage failures stay generic so internals never leak.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps domain errors to user-facing messages
func formatFriendlyError(err error) string {
	var stockChanged *domain.StockChangedError
	switch {
	case errors.As(err, &stockChanged):
		return fmt.Sprintf(MsgStockChangedFmt, stockChanged.SkinName)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, domain.ErrItemUnavailable), errors.Is(err, domain.ErrOutOfStock):
		return MsgOutOfStock
	case errors.Is(err, domain.ErrAlreadyInCart):
		return MsgAlreadyInCart
	case errors.Is(err, domain.ErrDuplicateOwnership):
		return MsgAlreadyOwned
	case errors.Is(err, domain.ErrEmptyCart):
		return MsgEmptyCart
	case errors.Is(err, domain.ErrNotOwned):
		return MsgNotOwned
	case errors.Is(err, domain.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, domain.ErrStorage):
		return MsgGenericError
	default:
		return MsgGenericError
	}
}

// sendEmbed sends an embed message with standardized error handling
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	edit := &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}
	if components != nil {
		edit.Components = &components
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// Footer constants for standardized embed footers
const (
	FooterSkinShop      = "SkinShop"
	FooterSkinShopAdmin = "SkinShop Admin"
)

// createEmbed creates a standard embed. An empty footerText defaults to
// FooterSkinShop.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterSkinShop
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// requestContext returns a fresh context carrying a request id, so every
// interaction's log lines can be correlated
func requestContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}
