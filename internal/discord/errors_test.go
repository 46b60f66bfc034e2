package discord

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HypixelVerify_Go/internal/cooldown"
	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("resolve: %w", domain.ErrNotFound), MsgNotFound},
		{"invalid name wins over not found", fmt.Errorf("%w: %w", domain.ErrNotFound, domain.ErrInvalidName), MsgInvalidName},
		{"service unavailable", domain.ErrServiceUnavailable, MsgServiceUnavailable},
		{"not linked quotes the handle", fmt.Errorf("%w: Notch", domain.ErrNotLinked), fmt.Sprintf(MsgNotLinked, "steve")},
		{"asset unavailable", domain.ErrAssetUnavailable, MsgAssetUnavailable},
		{"session expired", domain.ErrSessionExpired, MsgSessionExpired},
		{"already verified", domain.ErrAlreadyVerified, MsgAlreadyVerified},
		{"cooldown", cooldown.ErrOnCooldown{Remaining: 90 * time.Minute}, fmt.Sprintf(MsgCooldownActive, 2, "hours")},
		{"anything else", errors.New("disk full"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, friendlyMessage(tt.err, "steve"))
		})
	}
}

func TestCooldownMessage_Singular(t *testing.T) {
	assert.Equal(t, fmt.Sprintf(MsgCooldownActive, 1, "hour"), cooldownMessage(1))
	assert.Equal(t, fmt.Sprintf(MsgCooldownActive, 6, "hours"), cooldownMessage(6))
}
