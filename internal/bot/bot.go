package bot

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/m1kellaa/SkinShopBot_Go/internal/adminflow"
	"github.com/m1kellaa/SkinShopBot_Go/internal/cart"
	"github.com/m1kellaa/SkinShopBot_Go/internal/catalog"
	"github.com/m1kellaa/SkinShopBot_Go/internal/shop"
	"github.com/m1kellaa/SkinShopBot_Go/internal/stats"
	"github.com/m1kellaa/SkinShopBot_Go/internal/user"
	"github.com/m1kellaa/SkinShopBot_Go/internal/withdrawal"
)

// Config holds the bot configuration
type Config struct {
	Token       string
	AppID       string
	AdminUserID int64
}

// Deps are the services the bot presents
type Deps struct {
	Users      user.Service
	Catalog    catalog.Service
	Cart       cart.Service
	Shop       shop.Service
	Withdrawal withdrawal.Service
	Admin      adminflow.Service
	Stats      stats.Service
}

// Bot is the Discord presentation layer of the shop
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry

	adminUserID int64
	sessions    *adminflow.SessionStore
	deps        Deps
}

// New creates a new Discord bot. Services are wired afterwards with
// SetDeps; the notifier needs the session this call creates.
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents |= discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b := &Bot{
		Session:     s,
		AppID:       cfg.AppID,
		Registry:    NewCommandRegistry(),
		adminUserID: cfg.AdminUserID,
		sessions:    adminflow.NewSessionStore(),
	}
	b.registerAll()
	return b, nil
}

// SetDeps wires the services the handlers call. Must happen before Start.
func (b *Bot) SetDeps(deps Deps) {
	b.deps = deps
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	b.Session.Close()
}

// Wait blocks until a termination signal is received
func (b *Bot) Wait() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}
