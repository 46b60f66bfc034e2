package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile lookup errors
	ErrMsgNotFound           = "player not found"
	ErrMsgServiceUnavailable = "profile service unavailable"
	ErrMsgNotLinked          = "discord account not linked"
	ErrMsgInvalidName        = "invalid player name"

	// Rendering errors
	ErrMsgAssetUnavailable = "render asset unavailable"

	// Storage errors
	ErrMsgStorageCorrupt = "verification store corrupt"

	// Flow errors
	ErrMsgSessionExpired  = "verification session expired"
	ErrMsgAlreadyVerified = "already verified"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is a user-correctable identity lookup miss.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrServiceUnavailable is a transient upstream failure; the user should retry later.
	ErrServiceUnavailable = errors.New(ErrMsgServiceUnavailable)

	// ErrNotLinked means the profile's DISCORD social link does not match the requester.
	ErrNotLinked = errors.New(ErrMsgNotLinked)

	// ErrInvalidName is returned for names Mojang would never accept.
	ErrInvalidName = errors.New(ErrMsgInvalidName)

	// ErrAssetUnavailable is cosmetic only and degrades rendering.
	ErrAssetUnavailable = errors.New(ErrMsgAssetUnavailable)

	// ErrStorageCorrupt is logged when the backing file cannot be decoded.
	ErrStorageCorrupt = errors.New(ErrMsgStorageCorrupt)

	ErrSessionExpired  = errors.New(ErrMsgSessionExpired)
	ErrAlreadyVerified = errors.New(ErrMsgAlreadyVerified)
)
