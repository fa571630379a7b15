package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionsniper/ebay-relay/internal/auth"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/oauthstate"
	"github.com/auctionsniper/ebay-relay/internal/store"
	"github.com/auctionsniper/ebay-relay/pkg/logger"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &ebay.ValidationError{Field: "limit", Reason: "must be between 0 and 200"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid limit: must be between 0 and 200",
		},
		{
			name:       "missing bearer",
			err:        auth.ErrMissingToken,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    msgUnauthorized,
		},
		{
			name:       "wrapped invalid bearer",
			err:        fmt.Errorf("%w: token is expired", auth.ErrInvalidToken),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    msgUnauthorized,
		},
		{
			name:       "expired state",
			err:        oauthstate.ErrExpired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidState,
		},
		{
			name:       "invalid grant",
			err:        &ebay.OAuthError{Kind: ebay.ErrInvalidGrant, Grant: "authorization_code"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidGrant,
		},
		{
			name:       "revoked refresh token",
			err:        &ebay.OAuthError{Kind: ebay.ErrRefreshTokenInvalid, Grant: "refresh_token"},
			wantStatus: http.StatusPreconditionFailed,
			wantMsg:    msgReauthorize,
		},
		{
			name:       "scope",
			err:        fmt.Errorf("%w: buy.order.readonly", ebay.ErrInsufficientScope),
			wantStatus: http.StatusForbidden,
			wantMsg:    msgScope,
		},
		{
			name:       "not connected",
			err:        store.ErrNotConnected,
			wantStatus: http.StatusNotFound,
			wantMsg:    msgNotConnected,
		},
		{
			name:       "unknown user",
			err:        fmt.Errorf("getting refresh token: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    msgNotConnected,
		},
		{
			name:       "daily limit",
			err:        fmt.Errorf("%w (5000/5000)", ebay.ErrDailyLimitReached),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    msgQuotaExhausted,
		},
		{
			name:       "upstream auth with transport cause",
			err:        &ebay.OAuthError{Kind: ebay.ErrUpstreamAuth, Grant: "client_credentials", Err: errors.New("dial tcp: i/o timeout")},
			wantStatus: http.StatusBadGateway,
			wantMsg:    msgUpstreamAuth,
		},
		{
			name:       "browse throttled",
			err:        &ebay.APIError{StatusCode: http.StatusTooManyRequests},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    msgUpstreamThrottle,
		},
		{
			name:       "browse server error",
			err:        fmt.Errorf("browse search: %w", &ebay.APIError{StatusCode: http.StatusInternalServerError, Body: "{}"}),
			wantStatus: http.StatusBadGateway,
			wantMsg:    msgUpstream,
		},
		{
			name:       "anything else",
			err:        errors.New("pool closed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, msg := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapError_HidesDetail(t *testing.T) {
	t.Parallel()

	err := mapError(context.Background(), logger.Discard(), "search", &ebay.APIError{
		StatusCode: http.StatusInternalServerError,
		Body:       "internal stack trace",
	})

	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.GetStatus())
	assert.NotContains(t, err.Error(), "stack trace")
}
