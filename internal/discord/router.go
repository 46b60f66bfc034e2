package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
	"github.com/osse101/HypixelVerify_Go/internal/verification"
)

// IdentityResolver looks up a Minecraft name
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, name string) (domain.PlayerIdentity, error)
}

// PoseRenderer draws the walking skin render
type PoseRenderer interface {
	RenderPose(ctx context.Context, name, stableID string) ([]byte, error)
}

// RoleChecker answers staff checks for text commands
type RoleChecker interface {
	MemberHasRole(ctx context.Context, guildID string, member *discordgo.Member, roleName string) bool
}

// RouterConfig holds the channel and role names the router gates on
type RouterConfig struct {
	VerifyChannelName string
	StaffRoleName     string
	// AnnounceChannelID receives !ha relays; empty relays into the invoking channel
	AnnounceChannelID string
	// WelcomeChannelID receives a public copy of the welcome banner when set
	WelcomeChannelID string
	NoticeTTL        time.Duration
}

// RouterDeps are the services the router dispatches to
type RouterDeps struct {
	Verification verification.Service
	Resolver     IdentityResolver
	Poser        PoseRenderer
	Roles        RoleChecker
}

// Router dispatches gateway messages and interactions to their handlers.
type Router struct {
	verification verification.Service
	resolver     IdentityResolver
	poser        PoseRenderer
	roles        RoleChecker
	cfg          RouterConfig
	registry     *CommandRegistry

	// afterFunc schedules the cooldown notice removal; swapped in tests
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// NewRouter creates a router and registers its slash commands
func NewRouter(deps RouterDeps, cfg RouterConfig) *Router {
	if cfg.NoticeTTL <= 0 {
		cfg.NoticeTTL = DefaultNoticeTTL
	}
	r := &Router{
		verification: deps.Verification,
		resolver:     deps.Resolver,
		poser:        deps.Poser,
		roles:        deps.Roles,
		cfg:          cfg,
		registry:     NewCommandRegistry(),
		afterFunc:    time.AfterFunc,
	}
	r.registerSlashCommands()
	return r
}

// Registry exposes the slash commands for registration with Discord
func (r *Router) Registry() *CommandRegistry {
	return r.registry
}

// HandleInteraction routes slash commands, button clicks and modal submissions.
func (r *Router) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer recoverHandler("interaction")

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.registry.Handle(s, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch customID {
		case CustomIDVerifyStart:
			metrics.CommandsReceived.WithLabelValues(customID).Inc()
			r.handleVerifyStart(s, i)
		case CustomIDVerifyUnverify:
			metrics.CommandsReceived.WithLabelValues(customID).Inc()
			r.handleUnverify(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == CustomIDVerifyModal {
			metrics.CommandsReceived.WithLabelValues(CustomIDVerifyModal).Inc()
			r.handleVerifySubmit(s, i)
		}
	}
}

// HandleMessage routes the text commands.
func (r *Router) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer recoverHandler("message")

	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	content := strings.TrimSpace(m.Content)
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return
	}

	cmd := strings.ToLower(fields[0])
	args := strings.TrimSpace(content[len(fields[0]):])
	switch cmd {
	case TextCmdVerify, TextCmdVerifyButton:
		metrics.CommandsReceived.WithLabelValues(cmd).Inc()
		r.handleVerifyPanel(s, m)
	case TextCmdAnnounce:
		metrics.CommandsReceived.WithLabelValues(cmd).Inc()
		r.handleAnnounce(s, m, args)
	case TextCmdSkin:
		metrics.CommandsReceived.WithLabelValues(cmd).Inc()
		r.handleSkinMessage(s, m, args)
	}
}

// handlerContext tags one inbound event with a request id and bounds its upstream calls.
func handlerContext() (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	return context.WithTimeout(ctx, handlerTimeout)
}

func recoverHandler(kind string) {
	if rec := recover(); rec != nil {
		slog.Error(LogMsgInteractionFailed, "kind", kind, "panic", rec)
	}
}

// channelName looks the channel up in the gateway cache before asking Discord.
func channelName(s *discordgo.Session, channelID string) string {
	if s.State != nil {
		if ch, err := s.State.Channel(channelID); err == nil {
			return ch.Name
		}
	}
	ch, err := s.Channel(channelID)
	if err != nil {
		slog.Warn("Failed to look up channel", "channel_id", channelID, "error", err)
		return ""
	}
	return ch.Name
}
