package verification

import (
	"time"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

// State is where a user sits in the verification flow.
type State int

const (
	StateUnverified State = iota
	StateAwaitingInput
	StateVerified
	StateCooldownLocked
)

func (s State) String() string {
	switch s {
	case StateUnverified:
		return "Unverified"
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateVerified:
		return "Verified"
	case StateCooldownLocked:
		return "CooldownLocked"
	default:
		return "Unknown"
	}
}

// StartKind tells the router which prompt to show after a verify click.
type StartKind int

const (
	// PromptName opens the name modal
	PromptName StartKind = iota
	// CooldownNotice shows a self-deleting notice with the remaining hours
	CooldownNotice
	// ConfirmUnverify offers only the unverify button
	ConfirmUnverify
)

// StartResult is returned by Service.Start.
type StartResult struct {
	Kind StartKind
	// Hours is set for CooldownNotice
	Hours int64
}

// Outcome describes a successful verification.
type Outcome struct {
	Identity      domain.PlayerIdentity
	Rank          domain.RankDisplay
	Level         int
	NetworkExp    float64
	Guild         *domain.GuildInfo
	Image         []byte
	CooldownUntil *time.Time
	// RoleFailures counts grants or revokes Discord rejected
	RoleFailures int
}
