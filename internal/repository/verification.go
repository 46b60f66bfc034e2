package repository

import (
	"context"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

// Verification defines data access for verification records.
// Implementations flush every Put and Delete before returning.
type Verification interface {
	// Get returns the record for userID; found is false when none exists.
	Get(ctx context.Context, userID string) (record domain.VerificationRecord, found bool, err error)
	Put(ctx context.Context, record domain.VerificationRecord) error
	Delete(ctx context.Context, userID string) error
	// LoadAll reads the whole backing store into memory and returns a snapshot.
	LoadAll(ctx context.Context) (map[string]domain.VerificationRecord, error)
	// PersistAll writes the full in-memory snapshot to the backing store.
	PersistAll(ctx context.Context) error
}
