package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/scheduler"
)

// QuotaSource reports the last upstream quota snapshot, if any.
type QuotaSource interface {
	Last() *scheduler.QuotaSnapshot
}

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	rl       *ebay.RateLimiter
	upstream QuotaSource
}

// NewQuotaHandler creates a new QuotaHandler. Either argument may be nil.
func NewQuotaHandler(rl *ebay.RateLimiter, upstream QuotaSource) *QuotaHandler {
	return &QuotaHandler{rl: rl, upstream: upstream}
}

// UpstreamQuota is the Browse quota as last reported by the Analytics API.
type UpstreamQuota struct {
	Count     int64     `json:"count"      example:"142"                  doc:"Calls counted by eBay in the current window"`
	Limit     int64     `json:"limit"      example:"5000"                 doc:"eBay's daily call limit"`
	Remaining int64     `json:"remaining"  example:"4858"                 doc:"Calls remaining according to eBay"`
	ResetAt   time.Time `json:"reset_at"   example:"2026-06-16T07:00:00Z" doc:"When eBay resets the window"`
	SyncedAt  time.Time `json:"synced_at"  example:"2026-06-15T14:30:00Z" doc:"When the snapshot was taken"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64          `json:"daily_limit"        example:"5000"                 doc:"Configured daily API call limit"`
		DailyUsed  int64          `json:"daily_used"         example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining  int64          `json:"remaining"          example:"4858"                 doc:"API calls remaining in the current window"`
		ResetAt    time.Time      `json:"reset_at"           example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
		Upstream   *UpstreamQuota `json:"upstream,omitempty"                                doc:"Last quota snapshot from eBay, absent until the first sync"`
	}
}

// GetQuota returns the current eBay API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}

	if h.rl != nil {
		resp.Body.DailyLimit = h.rl.MaxDaily()
		resp.Body.DailyUsed = h.rl.DailyCount()
		resp.Body.Remaining = h.rl.Remaining()
		resp.Body.ResetAt = h.rl.ResetAt()
	}

	if h.upstream != nil {
		if snap := h.upstream.Last(); snap != nil {
			resp.Body.Upstream = &UpstreamQuota{
				Count:     snap.State.Count,
				Limit:     snap.State.Limit,
				Remaining: snap.State.Remaining,
				ResetAt:   snap.State.ResetAt,
				SyncedAt:  snap.SyncedAt,
			}
		}
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the local daily call usage and window reset time, plus the last quota snapshot reported by eBay.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
