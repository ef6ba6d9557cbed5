package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"humanatlas/internal/cache"
	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/repository"
)

const rateLimitKeyPrefix = "ratelimit:post:"

// RateLimiter enforces the one-post-per-window rule per username. The entry
// table is the source of truth: the single most recent created_at fully
// determines the decision. A short-lived Redis reservation serializes
// concurrent submitters so two requests inside the same window cannot both
// pass the read check and insert.
type RateLimiter struct {
	entries repository.EntryRepository
	cache   *cache.Client
	window  time.Duration
}

// NewRateLimiter creates a rate limiter over the given window.
func NewRateLimiter(entries repository.EntryRepository, cache *cache.Client, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: entries,
		cache:   cache,
		window:  window,
	}
}

// Window returns the configured cooldown window.
func (l *RateLimiter) Window() time.Duration {
	return l.window
}

// CanSubmit reports whether username may post now. A failed store query is
// surfaced as an upstream error, never treated as an allow.
func (l *RateLimiter) CanSubmit(ctx context.Context, username string) (bool, error) {
	latest, err := l.entries.LatestCreatedAt(ctx, username)
	if err != nil {
		return false, fmt.Errorf("%w: rate limit check: %v", apperrors.ErrUpstream, err)
	}
	if latest == nil {
		return true, nil
	}
	return time.Since(*latest) > l.window, nil
}

// Reserve claims the submission slot for username for the rest of the
// window. When Redis is unreachable the limiter degrades to the store check
// alone, which stays authoritative.
func (l *RateLimiter) Reserve(ctx context.Context, username string) bool {
	ok, err := l.cache.SetNX(ctx, rateLimitKeyPrefix+username, []byte("1"), l.window)
	if err != nil {
		log.Printf("rate limit reservation for %s degraded: %v", username, err)
		return true
	}
	return ok
}

// Release frees a reservation after a failed insert so the user is not
// locked out of a slot they never used.
func (l *RateLimiter) Release(ctx context.Context, username string) {
	_ = l.cache.Delete(ctx, rateLimitKeyPrefix+username)
}
