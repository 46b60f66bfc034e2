package verification

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// pendingTracker remembers users who have an open name prompt. Entries expire
// on their own so an abandoned modal never unlocks a later submission.
type pendingTracker struct {
	lru *expirable.LRU[string, time.Time]
}

func newPendingTracker(size int, ttl time.Duration) *pendingTracker {
	return &pendingTracker{
		lru: expirable.NewLRU[string, time.Time](size, nil, ttl),
	}
}

func (p *pendingTracker) Open(userID string, at time.Time) {
	p.lru.Add(userID, at)
}

func (p *pendingTracker) IsOpen(userID string) bool {
	_, ok := p.lru.Get(userID)
	return ok
}

func (p *pendingTracker) Close(userID string) {
	p.lru.Remove(userID)
}
