package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// ErrNotReady is reported by CheckHealth until the gateway session is ready
var ErrNotReady = errors.New("discord gateway not ready")

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Router   *Router

	forceCommandSync bool
}

// Config holds the bot configuration
type Config struct {
	Token string
	// AppID enables slash command registration when set
	AppID            string
	ForceCommandSync bool
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	return &Bot{
		Session:          s,
		AppID:            cfg.AppID,
		forceCommandSync: cfg.ForceCommandSync,
	}, nil
}

// Use attaches the router whose handlers and slash commands the bot serves
func (b *Bot) Use(router *Router) {
	b.Router = router
	b.Registry = router.Registry()
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if b.Router == nil {
		return errors.New("no router attached")
	}
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.AppID != "" {
		if err := b.RegisterCommands(b.Registry, b.forceCommandSync); err != nil {
			slog.Error("Failed to register slash commands", "error", err)
		}
	} else {
		slog.Info("DISCORD_APP_ID not set, skipping slash command registration")
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	return b.Session.Close()
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	<-ctx.Done()

	slog.Info("Closing Discord session")
	return b.Stop()
}

// CheckHealth reports whether the gateway session is usable
func (b *Bot) CheckHealth(_ context.Context) error {
	if b.Session == nil || !b.Session.DataReady {
		return ErrNotReady
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Router.HandleInteraction(s, i)
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.Router.HandleMessage(s, m)
}
