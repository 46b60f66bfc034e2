package verification

import "time"

// Pending session settings
const (
	// DefaultPendingTTL matches how long Discord keeps a modal submittable
	DefaultPendingTTL = 15 * time.Minute

	// DefaultPendingCapacity bounds the number of open verification prompts
	DefaultPendingCapacity = 4096
)

// Outcome labels for the verification_attempts_total metric
const (
	OutcomeVerified        = "verified"
	OutcomeNotFound        = "not_found"
	OutcomeUnavailable     = "unavailable"
	OutcomeNotLinked       = "not_linked"
	OutcomeSessionExpired  = "session_expired"
	OutcomeAlreadyVerified = "already_verified"
	OutcomeStoreError      = "store_error"
	OutcomeUnverified      = "unverified"
)

// Log Messages
const (
	LogMsgRoleMutationFailed = "Role mutation failed"
	LogMsgVerified           = "User verified"
	LogMsgUnverified         = "User unverified"
	LogMsgRenderFailed       = "Welcome render failed, continuing without image"
	LogMsgGuildFetchFailed   = "Guild lookup failed, continuing without guild"
)
