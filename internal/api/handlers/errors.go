package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/auctionsniper/ebay-relay/internal/auth"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/oauthstate"
	"github.com/auctionsniper/ebay-relay/internal/store"
	"github.com/auctionsniper/ebay-relay/internal/telemetry"
)

// StatusReauthorize tells the caller the stored eBay authorization
// is gone and the consent flow must be restarted.
const StatusReauthorize = http.StatusPreconditionFailed

// Client-facing messages. Upstream detail is logged, never returned.
const (
	msgUnauthorized     = "unauthorized"
	msgNotConnected     = "ebay account not connected"
	msgReauthorize      = "ebay re-authorization required"
	msgInvalidGrant     = "authorization code is invalid or expired"
	msgInvalidState     = "invalid or expired state"
	msgScope            = "this eBay endpoint is not available with the current authorization"
	msgUpstreamAuth     = "ebay authorization failed"
	msgUpstream         = "ebay request failed"
	msgUpstreamThrottle = "ebay is rate limiting requests, try again later"
	msgQuotaExhausted   = "ebay daily quota exhausted, try again later"
	msgInternal         = "internal server error"
)

// mapError turns a domain error into a huma status error. Server-side
// failures are logged with full detail and reported to Sentry.
func mapError(ctx context.Context, log *slog.Logger, op string, err error) error {
	status, msg := classify(err)

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "op", op, "status", status, "error", err)
		telemetry.CaptureError(ctx, err, map[string]string{"op": op})
	} else {
		log.Debug("request rejected", "op", op, "status", status, "error", err)
	}

	return huma.NewError(status, msg)
}

func classify(err error) (int, string) {
	var (
		validation *ebay.ValidationError
		apiErr     *ebay.APIError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error()
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, oauthstate.ErrMalformed),
		errors.Is(err, oauthstate.ErrExpired),
		errors.Is(err, oauthstate.ErrUnknown):
		return http.StatusBadRequest, msgInvalidState
	case errors.Is(err, ebay.ErrInvalidGrant):
		return http.StatusBadRequest, msgInvalidGrant
	case errors.Is(err, ebay.ErrRefreshTokenInvalid):
		return StatusReauthorize, msgReauthorize
	case errors.Is(err, ebay.ErrInsufficientScope):
		return http.StatusForbidden, msgScope
	case errors.Is(err, store.ErrNotConnected), errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, msgNotConnected
	case errors.Is(err, ebay.ErrDailyLimitReached):
		return http.StatusServiceUnavailable, msgQuotaExhausted
	case errors.Is(err, ebay.ErrUpstreamAuth):
		return http.StatusBadGateway, msgUpstreamAuth
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return http.StatusServiceUnavailable, msgUpstreamThrottle
		}
		return http.StatusBadGateway, msgUpstream
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
