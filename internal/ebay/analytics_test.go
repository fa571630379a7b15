package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/ebay/mocks"
)

// rateLimits builds an Analytics response for the buy context with the
// given resources JSON.
func rateLimits(resources string) string {
	return `{"rateLimits":[{"apiContext":"buy","apiName":"Browse","apiVersion":"v1","resources":[` + resources + `]}]}`
}

const (
	searchDaily = `{"name":"buy.browse","rates":[` +
		`{"count":1200,"limit":5000,"remaining":3800,"reset":"2026-10-18T07:00:00.000Z","timeWindow":86400}]}`
	searchTwoWindows = `{"name":"buy.browse","rates":[` +
		`{"count":1200,"limit":5000,"remaining":3800,"reset":"2026-10-18T07:00:00.000Z","timeWindow":86400},` +
		`{"count":480,"limit":500,"remaining":20,"reset":"2026-10-17T15:00:00.000Z","timeWindow":3600}]}`
	itemBulk = `{"name":"buy.browse.item.bulk","rates":[` +
		`{"count":0,"limit":5000,"remaining":5000,"reset":"2026-10-18T07:00:00.000Z","timeWindow":86400}]}`
)

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestAnalyticsClient_GetBrowseQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		tokenErr   error
		errContain string
		wantQuota  *ebay.QuotaState
	}{
		{
			name:    "search resource among others",
			handler: serveJSON(rateLimits(itemBulk + "," + searchDaily)),
			wantQuota: &ebay.QuotaState{
				Count:      1200,
				Limit:      5000,
				Remaining:  3800,
				ResetAt:    time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC),
				TimeWindow: 24 * time.Hour,
			},
		},
		{
			name:    "tightest window wins",
			handler: serveJSON(rateLimits(searchTwoWindows)),
			wantQuota: &ebay.QuotaState{
				Count:      480,
				Limit:      500,
				Remaining:  20,
				ResetAt:    time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC),
				TimeWindow: time.Hour,
			},
		},
		{
			name:       "search resource missing",
			handler:    serveJSON(rateLimits(itemBulk)),
			errContain: `"buy.browse" not found`,
		},
		{
			name:       "no rates for search",
			handler:    serveJSON(rateLimits(`{"name":"buy.browse","rates":[]}`)),
			errContain: "no rates found",
		},
		{
			name: "bad reset timestamp",
			handler: serveJSON(rateLimits(`{"name":"buy.browse","rates":[` +
				`{"count":1,"limit":5000,"remaining":4999,"reset":"tomorrow","timeWindow":86400}]}`)),
			errContain: "parsing reset time",
		},
		{
			name: "rejected app token",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			errContain: "status 401",
		},
		{
			name:       "token unavailable",
			handler:    func(http.ResponseWriter, *http.Request) {},
			tokenErr:   ebay.ErrUpstreamAuth,
			errContain: "getting auth token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
				assert.Equal(t, "buy", r.URL.Query().Get("api_context"))
				assert.Equal(t, "browse", r.URL.Query().Get("api_name"))
				tt.handler(w, r)
			}))
			defer srv.Close()

			tokens := mocks.NewMockTokenProvider(t)
			if tt.tokenErr != nil {
				tokens.EXPECT().Token(mock.Anything).Return("", tt.tokenErr)
			} else {
				tokens.EXPECT().Token(mock.Anything).Return("app-token", nil)
			}

			client := ebay.NewAnalyticsClient(tokens, ebay.WithAnalyticsURL(srv.URL))
			quota, err := client.GetBrowseQuota(context.Background())

			if tt.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuota.Count, quota.Count)
			assert.Equal(t, tt.wantQuota.Limit, quota.Limit)
			assert.Equal(t, tt.wantQuota.Remaining, quota.Remaining)
			assert.True(t, tt.wantQuota.ResetAt.Equal(quota.ResetAt), "ResetAt: want %v, got %v", tt.wantQuota.ResetAt, quota.ResetAt)
			assert.Equal(t, tt.wantQuota.TimeWindow, quota.TimeWindow)
		})
	}
}

func TestAnalyticsClient_QuotaAlignsLimiter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(serveJSON(rateLimits(searchTwoWindows)))
	defer srv.Close()

	tokens := mocks.NewMockTokenProvider(t)
	tokens.EXPECT().Token(mock.Anything).Return("app-token", nil)

	now := time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)
	rl := ebay.NewRateLimiter(100, 10, 5000,
		ebay.WithRateLimiterNowFunc(func() time.Time { return now }))

	quota, err := ebay.NewAnalyticsClient(tokens, ebay.WithAnalyticsURL(srv.URL)).
		GetBrowseQuota(context.Background())
	require.NoError(t, err)

	rl.Sync(quota.Count, quota.Limit, quota.ResetAt)

	assert.Equal(t, int64(500), rl.MaxDaily())
	assert.Equal(t, int64(20), rl.Remaining())
	assert.True(t, quota.ResetAt.Equal(rl.ResetAt()))

	for range 20 {
		require.NoError(t, rl.Wait(context.Background()))
	}
	require.ErrorIs(t, rl.Wait(context.Background()), ebay.ErrDailyLimitReached)
}
