package cooldown

import "time"

// Config holds re-verification cooldown configuration
type Config struct {
	// Duration is how long a non-admin must wait before verifying again
	Duration time.Duration

	// AdminBypass exempts administrators from the cooldown entirely
	AdminBypass bool
}

// DefaultConfig returns the production cooldown settings
func DefaultConfig() Config {
	return Config{
		Duration:    DefaultCooldownDuration,
		AdminBypass: true,
	}
}
