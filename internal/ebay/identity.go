package ebay

import (
	"context"
	"fmt"
	"net/http"
)

const (
	defaultIdentityURL      = "https://apiz.ebay.com/commerce/identity/v1/user/"
	defaultPurchaseOrderURL = "https://api.ebay.com/buy/order/v2/purchase_order"
)

// IdentityClient makes user-scoped eBay calls. Each call resolves a user
// access token from the refresh token it is given.
type IdentityClient struct {
	tokens           UserTokenSource
	identityURL      string
	purchaseOrderURL string
	marketplace      string
	client           *http.Client
}

// IdentityOption configures the IdentityClient.
type IdentityOption func(*IdentityClient)

// WithIdentityURL overrides the default Identity API endpoint.
func WithIdentityURL(u string) IdentityOption {
	return func(c *IdentityClient) {
		c.identityURL = u
	}
}

// WithPurchaseOrderURL overrides the default Order API endpoint.
func WithPurchaseOrderURL(u string) IdentityOption {
	return func(c *IdentityClient) {
		c.purchaseOrderURL = u
	}
}

// WithIdentityMarketplace overrides the default marketplace.
func WithIdentityMarketplace(m string) IdentityOption {
	return func(c *IdentityClient) {
		c.marketplace = m
	}
}

// WithIdentityHTTPClient overrides the default HTTP client.
func WithIdentityHTTPClient(hc *http.Client) IdentityOption {
	return func(c *IdentityClient) {
		c.client = hc
	}
}

// NewIdentityClient creates a client for user-scoped eBay calls.
func NewIdentityClient(tokens UserTokenSource, opts ...IdentityOption) *IdentityClient {
	c := &IdentityClient{
		tokens:           tokens,
		identityURL:      defaultIdentityURL,
		purchaseOrderURL: defaultPurchaseOrderURL,
		marketplace:      defaultMarketplace,
		client:           NewHTTPClient(defaultRequestTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserInfo returns the eBay identity of the user behind refreshToken.
func (c *IdentityClient) UserInfo(ctx context.Context, refreshToken string) (*UserInfo, error) {
	var info UserInfo
	if err := c.userGet(ctx, "identity", ScopeIdentityRead, c.identityURL, refreshToken, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// PurchaseHistory returns the user's recent purchase orders. It needs the
// buy.order.readonly scope, which is not part of the default grant.
func (c *IdentityClient) PurchaseHistory(
	ctx context.Context,
	refreshToken string,
) (*PurchaseHistory, error) {
	var history PurchaseHistory
	if err := c.userGet(ctx, "purchase_order", ScopeBuyOrderRead, c.purchaseOrderURL, refreshToken, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// userGet checks the scope before touching the token endpoint so a call that
// cannot succeed costs no round trip.
func (c *IdentityClient) userGet(
	ctx context.Context,
	api string,
	scope string,
	rawURL string,
	refreshToken string,
	dst any,
) error {
	if !c.tokens.HasUserScope(scope) {
		return scopeError(scope)
	}

	rec, err := c.tokens.UserAccessToken(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("getting user token: %w", err)
	}

	return getJSON(ctx, c.client, api, rawURL, rec.AccessToken,
		map[string]string{"X-EBAY-C-MARKETPLACE-ID": c.marketplace}, dst)
}
