package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRevoker keeps revoked token ids until the token would have expired.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if until.After(r.now()) {
		r.revoked[tokenID] = until
	}
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	until, ok := r.revoked[tokenID]
	return ok && until.After(r.now()), nil
}

// Sweep drops entries whose token has expired and returns how many went.
func (r *MemoryRevoker) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	n := 0
	for id, until := range r.revoked {
		if !until.After(now) {
			delete(r.revoked, id)
			n++
		}
	}
	return n
}
