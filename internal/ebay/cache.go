package ebay

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SafetyMargin is how long before its real expiry a token stops being used.
const SafetyMargin = 300 * time.Second

// AppScopeKey is the cache key of the application (client-credentials) token.
const AppScopeKey = "app"

// TokenRecord is an access token together with the instant it expires.
type TokenRecord struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Usable reports whether the token can still be sent at now.
func (r TokenRecord) Usable(now time.Time) bool {
	return r.AccessToken != "" && now.Before(r.ExpiresAt.Add(-SafetyMargin))
}

// UserScopeKey derives the cache key for a user token from the refresh token
// it was minted from. Refresh tokens are hashed so raw secrets never sit in
// the cache index.
func UserScopeKey(refreshToken string) string {
	sum := sha256.Sum256([]byte(refreshToken))
	return "user:" + hex.EncodeToString(sum[:16])
}

// RefreshFunc performs a grant and returns a fresh token.
type RefreshFunc func(ctx context.Context) (TokenRecord, error)

// TokenCache holds one TokenRecord per scope key. Staleness is checked on
// read; refreshes for the same key are collapsed into a single upstream call
// while different keys refresh independently.
type TokenCache struct {
	mu      sync.RWMutex
	slots   map[string]TokenRecord
	flights singleflight.Group
	nowFunc func() time.Time
}

// NewTokenCache creates an empty cache using now as its clock.
func NewTokenCache(now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}
	return &TokenCache{
		slots:   make(map[string]TokenRecord),
		nowFunc: now,
	}
}

// GetValid returns the record for key if it is still usable.
func (c *TokenCache) GetValid(key string) (TokenRecord, bool) {
	c.mu.RLock()
	rec, ok := c.slots[key]
	c.mu.RUnlock()

	if !ok || !rec.Usable(c.nowFunc()) {
		return TokenRecord{}, false
	}
	return rec, true
}

// Store replaces the record for key. Other slots that are no longer usable
// are dropped on the way, so the cache stays bounded by the tokens that are
// actually live.
func (c *TokenCache) Store(key string, rec TokenRecord) {
	now := c.nowFunc()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, old := range c.slots {
		if k != key && !old.Usable(now) {
			delete(c.slots, k)
		}
	}
	c.slots[key] = rec
}

// Invalidate drops the record for key.
func (c *TokenCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.slots, key)
	c.mu.Unlock()
}

// Len returns the number of slots, usable or not.
func (c *TokenCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

// Get returns a usable record for key, calling refresh at most once for all
// concurrent callers that find the slot stale. The refresh runs detached from
// the first caller's cancellation so one caller giving up does not fail the
// others waiting on the same flight.
func (c *TokenCache) Get(
	ctx context.Context,
	key string,
	refresh RefreshFunc,
) (TokenRecord, bool, error) {
	if rec, ok := c.GetValid(key); ok {
		return rec, true, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := c.flights.Do(key, func() (any, error) {
		// A flight that finished between our miss and Do may already have
		// filled the slot.
		if rec, ok := c.GetValid(key); ok {
			return rec, nil
		}

		rec, err := refresh(flightCtx)
		if err != nil {
			return TokenRecord{}, err
		}
		c.Store(key, rec)
		return rec, nil
	})
	if err != nil {
		return TokenRecord{}, false, err
	}

	rec, _ := v.(TokenRecord)
	return rec, false, nil
}
