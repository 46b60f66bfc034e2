package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/HypixelVerify_Go/internal/bootstrap"
	"github.com/osse101/HypixelVerify_Go/internal/concurrency"
	"github.com/osse101/HypixelVerify_Go/internal/config"
	"github.com/osse101/HypixelVerify_Go/internal/cooldown"
	"github.com/osse101/HypixelVerify_Go/internal/discord"
	"github.com/osse101/HypixelVerify_Go/internal/hypixel"
	"github.com/osse101/HypixelVerify_Go/internal/render"
	"github.com/osse101/HypixelVerify_Go/internal/server"
	"github.com/osse101/HypixelVerify_Go/internal/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range config.Warnings(cfg) {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Bot failed", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	resolver := hypixel.NewClient(cfg.MojangAPIURL, cfg.HypixelAPIURL, cfg.HypixelAPIKey, cfg.HTTPTimeout)
	compositor, err := render.NewCompositor(cfg.SkinServiceURL, cfg.BackgroundPath, cfg.HTTPTimeout)
	if err != nil {
		store.Close()
		return err
	}

	bot, err := discord.New(discord.Config{
		Token:            cfg.DiscordToken,
		AppID:            cfg.DiscordAppID,
		ForceCommandSync: cfg.ForceCommandSync,
	})
	if err != nil {
		store.Close()
		return err
	}
	roles := discord.NewRoleService(bot.Session)

	guildName := ""
	if cfg.GuildRoleEnabled() {
		guildName = cfg.GuildName
	}
	svc := verification.NewService(verification.Deps{
		Resolver: resolver,
		Roles:    roles,
		Renderer: compositor,
		Store:    store.Verification,
		Cooldown: cooldown.NewPolicy(cooldown.Config{Duration: cfg.Cooldown, AdminBypass: true}),
		Locks:    concurrency.NewLockManager(),
	}, verification.Config{
		VerifiedRole:   cfg.VerifiedRole,
		UnverifiedRole: cfg.UnverifiedRole,
		GuildName:      guildName,
		GuildRole:      cfg.GuildRole,
	})

	bot.Use(discord.NewRouter(discord.RouterDeps{
		Verification: svc,
		Resolver:     resolver,
		Poser:        compositor,
		Roles:        roles,
	}, discord.RouterConfig{
		VerifyChannelName: cfg.VerifyChannelName,
		StaffRoleName:     cfg.StaffRoleName,
		AnnounceChannelID: cfg.AnnounceChannelID,
		WelcomeChannelID:  cfg.WelcomeChannelID,
		NoticeTTL:         cfg.NoticeTTL,
	}))

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Checks: map[string]server.HealthChecker{
			"discord":     bot,
			store.Backend: store.Check,
		},
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error { return bot.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Store: store})
		return nil
	})

	return g.Wait()
}
