package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HypixelVerify_Go/internal/concurrency"
	"github.com/osse101/HypixelVerify_Go/internal/cooldown"
	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
	"github.com/osse101/HypixelVerify_Go/internal/rank"
	"github.com/osse101/HypixelVerify_Go/internal/render"
	"github.com/osse101/HypixelVerify_Go/internal/repository"
)

// Config names the roles the service hands out
type Config struct {
	VerifiedRole   string
	UnverifiedRole string
	// GuildRole is granted only when the player's Hypixel guild is GuildName
	GuildName string
	GuildRole string

	PendingTTL      time.Duration
	PendingCapacity int
}

// Deps are the collaborators the service drives
type Deps struct {
	Resolver Resolver
	Roles    RoleManager
	Renderer Renderer
	Store    repository.Verification
	Cooldown *cooldown.Policy
	Locks    *concurrency.LockManager
	// Clock defaults to time.Now
	Clock func() time.Time
}

type service struct {
	resolver Resolver
	roles    RoleManager
	renderer Renderer
	store    repository.Verification
	cooldown *cooldown.Policy
	locks    *concurrency.LockManager
	pending  *pendingTracker
	now      func() time.Time
	cfg      Config
}

// NewService creates a new verification service
func NewService(deps Deps, cfg Config) Service {
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = DefaultPendingTTL
	}
	if cfg.PendingCapacity <= 0 {
		cfg.PendingCapacity = DefaultPendingCapacity
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Locks == nil {
		deps.Locks = concurrency.NewLockManager()
	}
	if deps.Cooldown == nil {
		deps.Cooldown = cooldown.NewPolicy(cooldown.DefaultConfig())
	}

	return &service{
		resolver: deps.Resolver,
		roles:    deps.Roles,
		renderer: deps.Renderer,
		store:    deps.Store,
		cooldown: deps.Cooldown,
		locks:    deps.Locks,
		pending:  newPendingTracker(cfg.PendingCapacity, cfg.PendingTTL),
		now:      deps.Clock,
		cfg:      cfg,
	}
}

// Start answers a verify click. Start does not take the user lock: the router
// must reply with a modal straight away and Start only reads the store.
func (s *service) Start(ctx context.Context, actor domain.Actor) (StartResult, error) {
	rec, found, err := s.store.Get(ctx, actor.UserID)
	if err != nil {
		return StartResult{}, fmt.Errorf("failed to load verification record: %w", err)
	}

	if !found || !rec.Verified {
		s.pending.Open(actor.UserID, s.now())
		return StartResult{Kind: PromptName}, nil
	}

	var onCooldown cooldown.ErrOnCooldown
	if err := s.cooldown.Check(s.now(), rec.CooldownUntil, actor.IsAdmin); errors.As(err, &onCooldown) {
		return StartResult{Kind: CooldownNotice, Hours: onCooldown.Hours()}, nil
	}

	return StartResult{Kind: ConfirmUnverify}, nil
}

// Submit verifies actor as the Minecraft player name. Any abort leaves the
// store and roles untouched and keeps the prompt open for another try.
func (s *service) Submit(ctx context.Context, actor domain.Actor, name string) (*Outcome, error) {
	log := logger.FromContext(ctx).With(logger.AttrKeyUserID, actor.UserID, logger.AttrKeyGuildID, actor.GuildID)

	defer s.locks.Lock(actor.UserID)()

	rec, found, err := s.store.Get(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification record: %w", err)
	}
	if found && rec.Verified {
		s.pending.Close(actor.UserID)
		recordAttempt(OutcomeAlreadyVerified)
		return nil, domain.ErrAlreadyVerified
	}
	if !s.pending.IsOpen(actor.UserID) {
		recordAttempt(OutcomeSessionExpired)
		return nil, domain.ErrSessionExpired
	}

	identity, err := s.resolver.ResolveIdentity(ctx, name)
	if err != nil {
		recordAttempt(OutcomeNotFound)
		return nil, err
	}

	attrs, err := s.resolver.FetchAttributes(ctx, identity.StableID)
	if err != nil {
		recordAttempt(OutcomeUnavailable)
		return nil, err
	}

	linked, ok := attrs.DiscordLink()
	if !ok || linked != actor.Handle {
		recordAttempt(OutcomeNotLinked)
		log.Info("Discord link mismatch", "player", identity.DisplayName, "linked", linked, "handle", actor.Handle)
		return nil, fmt.Errorf("%w: %s", domain.ErrNotLinked, identity.DisplayName)
	}

	outcome := &Outcome{
		Identity:   identity,
		Rank:       rank.ClassifyRank(attrs),
		Level:      rank.ClassifyLevel(attrs.NetworkExp),
		NetworkExp: attrs.NetworkExp,
	}

	guild, err := s.resolver.FetchGuild(ctx, identity.StableID)
	if err != nil {
		log.Warn(LogMsgGuildFetchFailed, "error", err)
	} else {
		outcome.Guild = guild
	}

	if s.renderer != nil {
		img, err := s.renderer.RenderWelcome(ctx, render.WelcomeCard{
			Name:     identity.DisplayName,
			Rank:     outcome.Rank,
			Level:    outcome.Level,
			Guild:    outcome.Guild,
			StableID: identity.StableID,
		})
		if err != nil {
			log.Warn(LogMsgRenderFailed, "error", err)
		} else {
			outcome.Image = img
		}
	}

	outcome.RoleFailures += s.mutateRole(ctx, actor, metrics.OpGrant, s.cfg.VerifiedRole)
	outcome.RoleFailures += s.mutateRole(ctx, actor, metrics.OpRevoke, s.cfg.UnverifiedRole)
	if s.guildRoleEnabled() && outcome.Guild != nil && outcome.Guild.Name == s.cfg.GuildName {
		outcome.RoleFailures += s.mutateRole(ctx, actor, metrics.OpGrant, s.cfg.GuildRole)
	}

	outcome.CooldownUntil = s.cooldown.ExpiryFor(s.now(), actor.IsAdmin)
	record := domain.VerificationRecord{
		UserID:        actor.UserID,
		Verified:      true,
		CooldownUntil: outcome.CooldownUntil,
	}
	if err := s.store.Put(ctx, record); err != nil {
		recordAttempt(OutcomeStoreError)
		return nil, fmt.Errorf("failed to save verification record: %w", err)
	}

	s.pending.Close(actor.UserID)
	recordAttempt(OutcomeVerified)
	log.Info(LogMsgVerified, "player", identity.DisplayName, "uuid", identity.StableID,
		"rank", outcome.Rank.Label, "level", outcome.Level, "role_failures", outcome.RoleFailures)
	return outcome, nil
}

// Unverify is allowed at any time, cooldown or not
func (s *service) Unverify(ctx context.Context, actor domain.Actor) error {
	log := logger.FromContext(ctx).With(logger.AttrKeyUserID, actor.UserID, logger.AttrKeyGuildID, actor.GuildID)

	defer s.locks.Lock(actor.UserID)()

	if err := s.store.Delete(ctx, actor.UserID); err != nil {
		return fmt.Errorf("failed to delete verification record: %w", err)
	}

	failures := s.mutateRole(ctx, actor, metrics.OpRevoke, s.cfg.VerifiedRole)
	if s.guildRoleEnabled() {
		failures += s.mutateRole(ctx, actor, metrics.OpRevoke, s.cfg.GuildRole)
	}
	failures += s.mutateRole(ctx, actor, metrics.OpGrant, s.cfg.UnverifiedRole)

	s.pending.Close(actor.UserID)
	recordAttempt(OutcomeUnverified)
	log.Info(LogMsgUnverified, "role_failures", failures)
	return nil
}

func (s *service) State(ctx context.Context, userID string, isAdmin bool) (State, error) {
	rec, found, err := s.store.Get(ctx, userID)
	if err != nil {
		return StateUnverified, fmt.Errorf("failed to load verification record: %w", err)
	}

	if found && rec.Verified {
		if s.cooldown.Check(s.now(), rec.CooldownUntil, isAdmin) != nil {
			return StateCooldownLocked, nil
		}
		return StateVerified, nil
	}
	if s.pending.IsOpen(userID) {
		return StateAwaitingInput, nil
	}
	return StateUnverified, nil
}

func (s *service) guildRoleEnabled() bool {
	return s.cfg.GuildName != "" && s.cfg.GuildRole != ""
}

// mutateRole applies one grant or revoke and returns 1 if it failed. Failures
// are logged and counted but never abort the flow.
func (s *service) mutateRole(ctx context.Context, actor domain.Actor, op, roleName string) int {
	if roleName == "" || s.roles == nil {
		return 0
	}

	var err error
	switch op {
	case metrics.OpGrant:
		err = s.roles.GrantRole(ctx, actor.GuildID, actor.UserID, roleName)
	case metrics.OpRevoke:
		err = s.roles.RevokeRole(ctx, actor.GuildID, actor.UserID, roleName)
	default:
		return 0
	}

	metrics.RoleMutations.WithLabelValues(op, metrics.Result(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRoleMutationFailed,
			"op", op, "role", roleName, logger.AttrKeyUserID, actor.UserID, "error", err)
		return 1
	}
	return 0
}

func recordAttempt(outcome string) {
	metrics.VerificationAttempts.WithLabelValues(outcome).Inc()
}
