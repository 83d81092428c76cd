// pkg/memcache/token_denylist.go
package mem

import (
	"context"
	"sync"
	"time"
)

// TokenDenylist remembers revoked token ids until they would have expired
// anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	// piggyback cleanup on writes
	for id, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, id)
		}
	}
	s.data[tokenID] = now.Add(ttl)
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[tokenID]
	if !ok {
		return false, nil
	}
	return !s.now().After(expiresAt), nil
}
