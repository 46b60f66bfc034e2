package domain

import "time"

// VerificationRecord is the persisted verification state of one Discord user.
// A record with Verified == false never carries a cooldown.
type VerificationRecord struct {
	UserID        string     `json:"user_id"`
	Verified      bool       `json:"verified"`
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
}
