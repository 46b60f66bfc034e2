package cooldown_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HypixelVerify_Go/internal/cooldown"
)

// TestErrOnCooldown_Error tests the error message formatting
func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name string
		err  cooldown.ErrOnCooldown
		want string
	}{
		{"several hours", cooldown.ErrOnCooldown{Remaining: 5*time.Hour + time.Minute}, fmt.Sprintf(cooldown.ErrFmtCooldownHours, 6, "hours")},
		{"exact hours", cooldown.ErrOnCooldown{Remaining: 2 * time.Hour}, fmt.Sprintf(cooldown.ErrFmtCooldownHours, 2, "hours")},
		{"under an hour", cooldown.ErrOnCooldown{Remaining: time.Millisecond}, fmt.Sprintf(cooldown.ErrFmtCooldownHours, 1, "hour")},
		{"under a millisecond", cooldown.ErrOnCooldown{Remaining: time.Nanosecond}, fmt.Sprintf(cooldown.ErrFmtCooldownHours, 1, "hour")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

// TestErrOnCooldown_Is tests the errors.Is() compatibility
func TestErrOnCooldown_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", cooldown.ErrOnCooldown{Remaining: time.Minute})

	assert.True(t, errors.Is(err, cooldown.ErrOnCooldown{}))
	assert.False(t, errors.Is(errors.New("other error"), cooldown.ErrOnCooldown{}))
}

func TestErrOnCooldown_ZeroRemaining(t *testing.T) {
	assert.Equal(t, int64(0), cooldown.ErrOnCooldown{}.Hours())
}

func TestPolicy_ExpiryFor(t *testing.T) {
	p := cooldown.NewPolicy(cooldown.DefaultConfig())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	until := p.ExpiryFor(now, false)
	require.NotNil(t, until)
	assert.Equal(t, now.Add(6*time.Hour), *until)

	assert.Nil(t, p.ExpiryFor(now, true), "admins are not put on cooldown")
}

func TestPolicy_ZeroDurationUsesDefault(t *testing.T) {
	p := cooldown.NewPolicy(cooldown.Config{})
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	until := p.ExpiryFor(now, false)
	require.NotNil(t, until)
	assert.Equal(t, now.Add(cooldown.DefaultCooldownDuration), *until)
}

func TestPolicy_Check(t *testing.T) {
	p := cooldown.NewPolicy(cooldown.DefaultConfig())
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name      string
		until     *time.Time
		isAdmin   bool
		wantHours int64
		wantErr   bool
	}{
		{name: "no cooldown", until: nil},
		{name: "active cooldown", until: at(3*time.Hour + time.Second), wantErr: true, wantHours: 4},
		{name: "admin bypass", until: at(3 * time.Hour), isAdmin: true},
		{name: "exact boundary", until: at(0)},
		{name: "expired cooldown", until: at(-time.Minute)},
		{name: "just before expiry", until: at(time.Millisecond), wantErr: true, wantHours: 1},
		{name: "sub-millisecond remainder", until: at(500 * time.Microsecond), wantErr: true, wantHours: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(now, tt.until, tt.isAdmin)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var cd cooldown.ErrOnCooldown
			require.ErrorAs(t, err, &cd)
			assert.Equal(t, tt.wantHours, cd.Hours())
		})
	}
}
