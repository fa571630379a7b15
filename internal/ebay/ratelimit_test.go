package ebay_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 5000,
			calls: 3,
		},
		{
			name:  "allows burst",
			rate:  100,
			burst: 5,
			daily: 5000,
			calls: 5,
		},
		{
			name:    "rejects when daily limit reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := ebay.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.Contains(t, lastErr.Error(), "daily API limit reached")
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_DailyCount(t *testing.T) {
	t.Parallel()

	rl := ebay.NewRateLimiter(100, 10, 5000)

	assert.Equal(t, int64(0), rl.DailyCount())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.DailyCount())
}

func TestRateLimiter_DailyReset(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		sync    func(rl *ebay.RateLimiter)
		advance time.Duration
		want    int64
	}{
		{
			name:    "within rolling window",
			advance: 2 * time.Minute,
			want:    3,
		},
		{
			name:    "past rolling window",
			advance: 24*time.Hour + time.Minute,
			want:    1,
		},
		{
			name: "past window set by sync",
			sync: func(rl *ebay.RateLimiter) {
				rl.Sync(40, 5000, start.Add(time.Hour))
			},
			advance: time.Hour + time.Minute,
			want:    1,
		},
		{
			name: "before window set by sync",
			sync: func(rl *ebay.RateLimiter) {
				rl.Sync(40, 5000, start.Add(time.Hour))
			},
			advance: 30 * time.Minute,
			want:    41,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mu sync.Mutex
			currentTime := start

			rl := ebay.NewRateLimiter(
				100, 10, 5000,
				ebay.WithRateLimiterNowFunc(func() time.Time {
					mu.Lock()
					defer mu.Unlock()
					return currentTime
				}),
			)

			require.NoError(t, rl.Wait(context.Background()))
			require.NoError(t, rl.Wait(context.Background()))
			assert.Equal(t, int64(2), rl.DailyCount())

			if tt.sync != nil {
				tt.sync(rl)
			}

			// The window is rolling: it resets once the clock passes ResetAt,
			// not at midnight.
			mu.Lock()
			currentTime = start.Add(tt.advance)
			mu.Unlock()

			require.NoError(t, rl.Wait(context.Background()))
			assert.Equal(t, tt.want, rl.DailyCount())
		})
	}
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// Very slow rate limiter: 1 per 10 seconds, burst 1.
	rl := ebay.NewRateLimiter(0.1, 1, 5000)

	// First call should succeed (uses burst).
	require.NoError(t, rl.Wait(context.Background()))

	// Second call with canceled context should fail.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}

func TestRateLimiter_Sync(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC)
	rl := ebay.NewRateLimiter(100, 10, 5000,
		ebay.WithRateLimiterNowFunc(func() time.Time { return now }))

	require.NoError(t, rl.Wait(context.Background()))

	reset := time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)
	rl.Sync(4999, 5000, reset)

	assert.Equal(t, int64(4999), rl.DailyCount())
	assert.Equal(t, int64(1), rl.Remaining())
	assert.Equal(t, reset, rl.ResetAt())

	require.NoError(t, rl.Wait(context.Background()))
	err := rl.Wait(context.Background())
	require.ErrorIs(t, err, ebay.ErrDailyLimitReached)

	// A zero limit and reset leave the configured values alone.
	rl.Sync(10, 0, time.Time{})
	assert.Equal(t, int64(5000), rl.MaxDaily())
	assert.Equal(t, reset, rl.ResetAt())
}
