package discord

import (
	"errors"
	"fmt"

	"github.com/osse101/HypixelVerify_Go/internal/cooldown"
	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

// friendlyMessage maps a service error onto the short message shown to the member.
// handle is the requester's Discord handle, quoted back for ErrNotLinked.
func friendlyMessage(err error, handle string) string {
	var cd cooldown.ErrOnCooldown
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cd):
		return cooldownMessage(cd.Hours())
	// ErrInvalidName is wrapped inside ErrNotFound, so it has to be checked first
	case errors.Is(err, domain.ErrInvalidName):
		return MsgInvalidName
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrServiceUnavailable):
		return MsgServiceUnavailable
	case errors.Is(err, domain.ErrNotLinked):
		return fmt.Sprintf(MsgNotLinked, handle)
	case errors.Is(err, domain.ErrAssetUnavailable):
		return MsgAssetUnavailable
	case errors.Is(err, domain.ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, domain.ErrAlreadyVerified):
		return MsgAlreadyVerified
	default:
		return MsgGenericError
	}
}

func cooldownMessage(hours int64) string {
	return fmt.Sprintf(MsgCooldownActive, hours, hourUnit(hours))
}

func hourUnit(hours int64) string {
	if hours == 1 {
		return "hour"
	}
	return "hours"
}
