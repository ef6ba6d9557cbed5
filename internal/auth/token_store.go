package auth

import (
	"context"
	"time"

	"humanatlas/internal/cache"
)

const sessionDenylistKeyPrefix = "denylist:session:"

// TokenStoreInterface defines the interface for session invalidation storage.
type TokenStoreInterface interface {
	DenylistSession(ctx context.Context, tokenID string, ttl time.Duration) error
	IsSessionDenylisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore records signed-out session token IDs in Redis until their
// natural expiry. Tokens stay self-contained; only revocation needs state.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// DenylistSession marks a session token ID as revoked for ttl. Sign-out must
// be synchronous, so a failed write is surfaced rather than swallowed.
func (s *TokenStore) DenylistSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	key := sessionDenylistKeyPrefix + tokenID
	if _, err := s.cache.SetNX(ctx, key, []byte("1"), ttl); err != nil {
		return err
	}
	return nil
}

// IsSessionDenylisted checks whether a session token ID has been revoked.
func (s *TokenStore) IsSessionDenylisted(ctx context.Context, tokenID string) (bool, error) {
	key := sessionDenylistKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // fail safe, same as a cache miss
	}
	return data != nil, nil
}
