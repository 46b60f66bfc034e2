// Package redisstore keeps verification records in Redis: one hash per user
// plus a set indexing every stored user id.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
	"github.com/osse101/HypixelVerify_Go/internal/repository"
)

// BackendName labels this store in metrics.
const BackendName = "redis"

const (
	keyPrefix     = "hypixelverify:user:"
	keyIndex      = "hypixelverify:users"
	fieldVerified = "verified"
	fieldCooldown = "cooldown_until_ms"
)

// Store implements repository.Verification on Redis.
type Store struct {
	client *redis.Client

	mu    sync.Mutex
	cache map[string]domain.VerificationRecord
}

var _ repository.Verification = (*Store)(nil)

// NewClient configures a Redis client and verifies connectivity.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client, cache: make(map[string]domain.VerificationRecord)}
}

func userKey(userID string) string { return keyPrefix + userID }

func (s *Store) Get(ctx context.Context, userID string) (domain.VerificationRecord, bool, error) {
	fields, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return domain.VerificationRecord{}, false, fmt.Errorf("get verification record: %w", err)
	}
	if len(fields) == 0 {
		return domain.VerificationRecord{}, false, nil
	}
	rec, err := decode(userID, fields)
	if err != nil {
		return domain.VerificationRecord{}, false, err
	}
	return rec, true, nil
}

func (s *Store) Put(ctx context.Context, record domain.VerificationRecord) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		queuePut(ctx, pipe, record)
		return nil
	})
	s.recordWrite(err)
	if err != nil {
		return fmt.Errorf("put verification record: %w", err)
	}

	s.mu.Lock()
	s.cache[record.UserID] = record
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(ctx context.Context, userID string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, userKey(userID))
		pipe.SRem(ctx, keyIndex, userID)
		return nil
	})
	s.recordWrite(err)
	if err != nil {
		return fmt.Errorf("delete verification record: %w", err)
	}

	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
	return nil
}

func (s *Store) LoadAll(ctx context.Context) (map[string]domain.VerificationRecord, error) {
	ids, err := s.client.SMembers(ctx, keyIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("load verification index: %w", err)
	}

	pipe := s.client.Pipeline()
	cmds := make(map[string]*redis.MapStringStringCmd, len(ids))
	for _, id := range ids {
		cmds[id] = pipe.HGetAll(ctx, userKey(id))
	}
	if len(ids) > 0 {
		if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("load verification records: %w", err)
		}
	}

	records := make(map[string]domain.VerificationRecord, len(ids))
	for id, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Index entry without a hash; skip it rather than fail the load.
			continue
		}
		rec, err := decode(id, fields)
		if err != nil {
			return nil, err
		}
		records[id] = rec
	}

	s.mu.Lock()
	s.cache = records
	out := make(map[string]domain.VerificationRecord, len(records))
	for k, v := range records {
		out[k] = v
	}
	s.mu.Unlock()
	return out, nil
}

// PersistAll rewrites Redis to match the cached snapshot in one MULTI/EXEC.
func (s *Store) PersistAll(ctx context.Context) error {
	s.mu.Lock()
	snapshot := make([]domain.VerificationRecord, 0, len(s.cache))
	for _, rec := range s.cache {
		snapshot = append(snapshot, rec)
	}
	s.mu.Unlock()

	existing, err := s.client.SMembers(ctx, keyIndex).Result()
	if err != nil {
		return fmt.Errorf("load verification index: %w", err)
	}

	keep := make(map[string]struct{}, len(snapshot))
	for _, rec := range snapshot {
		keep[rec.UserID] = struct{}{}
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range existing {
			if _, ok := keep[id]; !ok {
				pipe.Del(ctx, userKey(id))
				pipe.SRem(ctx, keyIndex, id)
			}
		}
		for _, rec := range snapshot {
			queuePut(ctx, pipe, rec)
		}
		return nil
	})
	s.recordWrite(err)
	if err != nil {
		return fmt.Errorf("persist verification snapshot: %w", err)
	}
	return nil
}

func (s *Store) recordWrite(err error) {
	metrics.StoreWrites.WithLabelValues(BackendName, metrics.Result(err)).Inc()
}

func queuePut(ctx context.Context, pipe redis.Pipeliner, rec domain.VerificationRecord) {
	key := userKey(rec.UserID)
	pipe.HSet(ctx, key, fieldVerified, strconv.FormatBool(rec.Verified))
	if rec.CooldownUntil != nil {
		pipe.HSet(ctx, key, fieldCooldown, strconv.FormatInt(rec.CooldownUntil.UnixMilli(), 10))
	} else {
		pipe.HDel(ctx, key, fieldCooldown)
	}
	pipe.SAdd(ctx, keyIndex, rec.UserID)
}

func decode(userID string, fields map[string]string) (domain.VerificationRecord, error) {
	verified, err := strconv.ParseBool(fields[fieldVerified])
	if err != nil {
		return domain.VerificationRecord{}, fmt.Errorf("%w: user %s verified flag: %w", domain.ErrStorageCorrupt, userID, err)
	}
	rec := domain.VerificationRecord{UserID: userID, Verified: verified}

	if raw, ok := fields[fieldCooldown]; ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.VerificationRecord{}, fmt.Errorf("%w: user %s cooldown: %w", domain.ErrStorageCorrupt, userID, err)
		}
		until := time.UnixMilli(ms)
		rec.CooldownUntil = &until
	}
	return rec, nil
}
