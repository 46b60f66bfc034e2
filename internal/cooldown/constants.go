package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultCooldownDuration is the re-verification lockout after a successful verification
	DefaultCooldownDuration = 6 * time.Hour
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrFmtCooldownHours formats the remaining whole hours of a cooldown
	ErrFmtCooldownHours = "verification on cooldown: %d %s remaining"
)
