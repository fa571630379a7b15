package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

// QuotaSnapshot is the last upstream quota reading.
type QuotaSnapshot struct {
	State    ebay.QuotaState
	SyncedAt time.Time
}

// QuotaSyncer aligns the local Browse rate limiter with eBay's own view of
// the daily quota.
type QuotaSyncer struct {
	quota   ebay.QuotaClient
	limiter *ebay.RateLimiter
	log     *slog.Logger
	nowFunc func() time.Time

	mu   sync.RWMutex
	last *QuotaSnapshot
}

// NewQuotaSyncer creates a QuotaSyncer. limiter may be nil, in which case
// only metrics and the snapshot are updated.
func NewQuotaSyncer(quota ebay.QuotaClient, limiter *ebay.RateLimiter, log *slog.Logger) *QuotaSyncer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &QuotaSyncer{
		quota:   quota,
		limiter: limiter,
		log:     log,
		nowFunc: time.Now,
	}
}

// Sync fetches the Browse quota, publishes it as metrics, and syncs the
// rate limiter.
func (q *QuotaSyncer) Sync(ctx context.Context) error {
	if q.quota == nil {
		return errors.New("no quota client configured")
	}

	state, err := q.quota.GetBrowseQuota(ctx)
	if err != nil {
		metrics.QuotaSyncFailuresTotal.Inc()
		return fmt.Errorf("fetching browse quota: %w", err)
	}

	metrics.EbayRateLimit.Set(float64(state.Limit))
	metrics.EbayRateRemaining.Set(float64(state.Remaining))
	if !state.ResetAt.IsZero() {
		metrics.EbayRateResetTimestamp.Set(float64(state.ResetAt.Unix()))
	}

	if q.limiter != nil {
		q.limiter.Sync(state.Count, state.Limit, state.ResetAt)
		metrics.EbayDailyUsage.Set(float64(q.limiter.DailyCount()))
	}

	q.mu.Lock()
	q.last = &QuotaSnapshot{State: *state, SyncedAt: q.nowFunc()}
	q.mu.Unlock()

	q.log.Debug("browse quota synced",
		"count", state.Count,
		"limit", state.Limit,
		"remaining", state.Remaining,
		"reset_at", state.ResetAt,
	)
	return nil
}

// Last returns the most recent snapshot, or nil before the first
// successful sync.
func (q *QuotaSyncer) Last() *QuotaSnapshot {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.last == nil {
		return nil
	}
	s := *q.last
	return &s
}
