package client

import (
	"context"
	"time"
)

// AuthURL returns the eBay consent URL. With a bearer token configured the
// resulting authorization is bound to that user.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	var resp struct {
		AuthURL string `json:"authUrl"`
	}
	if err := c.get(ctx, "/api/ebay/auth/auth-url", &resp); err != nil {
		return "", err
	}
	return resp.AuthURL, nil
}

// ConnectionStatus reports whether the caller has a linked eBay account.
func (c *Client) ConnectionStatus(ctx context.Context) (bool, error) {
	var resp struct {
		Connected bool `json:"connected"`
	}
	if err := c.get(ctx, "/api/ebay/auth/connection-status", &resp); err != nil {
		return false, err
	}
	return resp.Connected, nil
}

// Disconnect removes the caller's linked eBay account.
func (c *Client) Disconnect(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/ebay/auth/disconnect", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpstreamQuota is eBay's last reported Browse quota.
type UpstreamQuota struct {
	Count     int64     `json:"count"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
	SyncedAt  time.Time `json:"synced_at"`
}

// QuotaStatus is the relay's view of the eBay call budget.
type QuotaStatus struct {
	DailyLimit int64          `json:"daily_limit"`
	DailyUsed  int64          `json:"daily_used"`
	Remaining  int64          `json:"remaining"`
	ResetAt    time.Time      `json:"reset_at"`
	Upstream   *UpstreamQuota `json:"upstream,omitempty"`
}

// Quota returns the current eBay API quota status.
func (c *Client) Quota(ctx context.Context) (*QuotaStatus, error) {
	var resp QuotaStatus
	if err := c.get(ctx, "/api/v1/quota", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
