package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/bootstrap"
	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/discord"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(config.SurfaceDiscord); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		closeStore()
		return err
	}
	bootstrap.RegisterEventHandlers(bus)

	svcs, err := bootstrap.InitializeServices(cfg, store, publisher)
	if err != nil {
		closeStore()
		return err
	}

	pool, sched := bootstrap.StartWorkers(cfg, svcs.Duels)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, &discord.Services{
		Casino:  svcs.Casino,
		Economy: svcs.Economy,
		Duels:   svcs.Duels,
	})
	if err != nil {
		closeStore()
		return err
	}

	health := discord.NewHTTPServer(cfg.Port, bot, svcs.Store)
	health.Start()

	discord.RegisterAll(bot.Registry)
	if cfg.DiscordForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		// Don't exit - bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	runErr := bot.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Servers:            []bootstrap.Stopper{health},
		Scheduler:          sched,
		Pool:               pool,
		ResilientPublisher: publisher,
		CloseStore:         closeStore,
	})
	return runErr
}
