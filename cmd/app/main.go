package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/m1kellaa/SkinShopBot_Go/internal/adminflow"
	"github.com/m1kellaa/SkinShopBot_Go/internal/bot"
	"github.com/m1kellaa/SkinShopBot_Go/internal/cart"
	"github.com/m1kellaa/SkinShopBot_Go/internal/catalog"
	"github.com/m1kellaa/SkinShopBot_Go/internal/config"
	"github.com/m1kellaa/SkinShopBot_Go/internal/database"
	"github.com/m1kellaa/SkinShopBot_Go/internal/database/postgres"
	"github.com/m1kellaa/SkinShopBot_Go/internal/logger"
	"github.com/m1kellaa/SkinShopBot_Go/internal/server"
	"github.com/m1kellaa/SkinShopBot_Go/internal/shop"
	"github.com/m1kellaa/SkinShopBot_Go/internal/stats"
	"github.com/m1kellaa/SkinShopBot_Go/internal/user"
	"github.com/m1kellaa/SkinShopBot_Go/internal/withdrawal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Source locations only in dev; production logs stay lean
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev" || cfg.Environment == "development",
	))

	pool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)

	// Services
	userService := user.NewService(userRepo, inventoryRepo, ledgerRepo)
	catalogService := catalog.NewService(catalogRepo)
	cartService := cart.NewService(cartRepo, catalogRepo)
	statsService := stats.NewService(statsRepo)
	adminService := adminflow.NewService(catalogRepo, userRepo, ledgerRepo)

	// Bot (the notifier needs the session, so services that notify are
	// wired after the bot exists)
	discordBot, err := bot.New(bot.Config{
		Token:       cfg.BotToken,
		AppID:       cfg.AppID,
		AdminUserID: cfg.AdminID(),
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	notifier := bot.NewAdminNotifier(discordBot.Session, cfg.AdminID())
	shopService := shop.NewService(shopRepo, cartRepo, userRepo, notifier)
	withdrawalService := withdrawal.NewService(inventoryRepo, catalogRepo, userRepo, notifier)

	discordBot.SetDeps(bot.Deps{
		Users:      userService,
		Catalog:    catalogService,
		Cart:       cartService,
		Shop:       shopService,
		Withdrawal: withdrawalService,
		Admin:      adminService,
		Stats:      statsService,
	})

	// Ops server
	srv := server.NewServer(cfg.Port, pool, statsService)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	if err := discordBot.Start(); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}
	defer discordBot.Stop()

	if err := discordBot.RegisterCommands(false); err != nil {
		slog.Error("Failed to register commands", "error", err)
	}

	// Block until a signal arrives, then shut everything down
	discordBot.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
