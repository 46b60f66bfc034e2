// Package filestore keeps verification records in a single JSON file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
	"github.com/osse101/HypixelVerify_Go/internal/repository"
)

// BackendName labels this store in metrics.
const BackendName = "file"

// document is the on-disk layout. Cooldowns are [userID, epochMillis] pairs.
type document struct {
	VerifiedUsers []string         `json:"verifiedUsers"`
	Cooldowns     [][2]interface{} `json:"cooldowns"`
}

// Store is a repository.Verification over one JSON file. All reads are served
// from memory; every Put and Delete rewrites the file before returning.
type Store struct {
	path    string
	mu      sync.Mutex
	records map[string]domain.VerificationRecord
}

var _ repository.Verification = (*Store)(nil)

// New creates a file-backed store for path. Nothing is read until LoadAll.
func New(path string) *Store {
	return &Store{path: path, records: make(map[string]domain.VerificationRecord)}
}

// Get returns the record for userID.
func (s *Store) Get(_ context.Context, userID string) (domain.VerificationRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	return rec, ok, nil
}

// Put stores record and flushes the file.
func (s *Store) Put(ctx context.Context, record domain.VerificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.records[record.UserID]
	s.records[record.UserID] = record
	if err := s.flushLocked(ctx); err != nil {
		if existed {
			s.records[record.UserID] = prev
		} else {
			delete(s.records, record.UserID)
		}
		return err
	}
	return nil
}

// Delete removes userID and flushes the file. Deleting a missing user is not an error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.records[userID]
	if !existed {
		return nil
	}
	delete(s.records, userID)
	if err := s.flushLocked(ctx); err != nil {
		s.records[userID] = prev
		return err
	}
	return nil
}

// LoadAll replaces the in-memory map with the file contents. A missing file is
// created empty; a malformed one is reset and overwritten.
func (s *Store) LoadAll(ctx context.Context) (map[string]domain.VerificationRecord, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var doc document
	err := loadJSON(s.path, &doc)
	switch {
	case err == nil:
		records, decodeErr := decode(doc)
		if decodeErr != nil {
			log.Warn("Verification store unreadable, resetting", "path", s.path, "error", decodeErr)
			s.records = make(map[string]domain.VerificationRecord)
			if err := s.flushLocked(ctx); err != nil {
				return nil, err
			}
			break
		}
		s.records = records
	case errors.Is(err, fs.ErrNotExist):
		log.Info("Verification store not found, creating", "path", s.path)
		s.records = make(map[string]domain.VerificationRecord)
		if err := s.flushLocked(ctx); err != nil {
			return nil, err
		}
	default:
		log.Warn("Verification store unreadable, resetting", "path", s.path,
			"error", fmt.Errorf("%w: %w", domain.ErrStorageCorrupt, err))
		s.records = make(map[string]domain.VerificationRecord)
		if err := s.flushLocked(ctx); err != nil {
			return nil, err
		}
	}

	return s.snapshotLocked(), nil
}

// PersistAll writes the in-memory map to disk.
func (s *Store) PersistAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx)
}

func (s *Store) snapshotLocked() map[string]domain.VerificationRecord {
	out := make(map[string]domain.VerificationRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}

func (s *Store) flushLocked(ctx context.Context) error {
	if err := saveJSON(s.path, encode(s.records)); err != nil {
		metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultFailure).Inc()
		logger.FromContext(ctx).Error("Failed to persist verification store", "path", s.path, "error", err)
		return err
	}
	metrics.StoreWrites.WithLabelValues(BackendName, metrics.ResultSuccess).Inc()
	return nil
}

// encode produces a stable ordering so the file diffs cleanly.
func encode(records map[string]domain.VerificationRecord) document {
	doc := document{VerifiedUsers: []string{}, Cooldowns: [][2]interface{}{}}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rec := records[id]
		if !rec.Verified {
			continue
		}
		doc.VerifiedUsers = append(doc.VerifiedUsers, id)
		if rec.CooldownUntil != nil {
			doc.Cooldowns = append(doc.Cooldowns, [2]interface{}{id, rec.CooldownUntil.UnixMilli()})
		}
	}
	return doc
}

func decode(doc document) (map[string]domain.VerificationRecord, error) {
	records := make(map[string]domain.VerificationRecord, len(doc.VerifiedUsers))
	for _, id := range doc.VerifiedUsers {
		records[id] = domain.VerificationRecord{UserID: id, Verified: true}
	}

	for i, pair := range doc.Cooldowns {
		id, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: cooldown %d has non-string user id", domain.ErrStorageCorrupt, i)
		}
		ms, ok := pair[1].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: cooldown %d has non-numeric expiry", domain.ErrStorageCorrupt, i)
		}
		rec, verified := records[id]
		if !verified {
			// A cooldown without a verified user is dropped; unverified records carry none.
			continue
		}
		until := time.UnixMilli(int64(ms))
		rec.CooldownUntil = &until
		records[id] = rec
	}
	return records, nil
}
