package cooldown

import (
	"fmt"
	"time"
)

// Policy decides cooldown expiry for re-verification.
type Policy struct {
	cfg Config
}

// NewPolicy creates a policy from config, applying defaults for zero values.
func NewPolicy(cfg Config) *Policy {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultCooldownDuration
	}
	return &Policy{cfg: cfg}
}

// ExpiryFor returns the cooldown to store for a fresh verification at now.
// Administrators get no cooldown when AdminBypass is set.
func (p *Policy) ExpiryFor(now time.Time, isAdmin bool) *time.Time {
	if isAdmin && p.cfg.AdminBypass {
		return nil
	}
	until := now.Add(p.cfg.Duration)
	return &until
}

// Check returns ErrOnCooldown when until lies strictly after now and the actor
// is not exempt. A nil until never blocks.
func (p *Policy) Check(now time.Time, until *time.Time, isAdmin bool) error {
	if isAdmin && p.cfg.AdminBypass {
		return nil
	}
	if until == nil || !now.Before(*until) {
		return nil
	}
	return ErrOnCooldown{Remaining: until.Sub(now)}
}

// ErrOnCooldown is returned when re-verification is still blocked
type ErrOnCooldown struct {
	Remaining time.Duration
}

// Hours rounds the remaining time up to whole hours, as shown to users.
// Any positive remainder counts as at least one hour.
func (e ErrOnCooldown) Hours() int64 {
	if e.Remaining <= 0 {
		return 0
	}
	return int64((e.Remaining + time.Hour - 1) / time.Hour)
}

func (e ErrOnCooldown) Error() string {
	hours := e.Hours()
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	return fmt.Sprintf(ErrFmtCooldownHours, hours, unit)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}
