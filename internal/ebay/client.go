// Package ebay talks to the eBay Browse, Identity and Analytics APIs. It
// owns the OAuth token lifecycle for both the application token and per-user
// tokens, and encodes search criteria into eBay's filter syntax.
package ebay

import (
	"context"
)

// EbayClient defines the interface for searching eBay listings.
type EbayClient interface {
	Search(ctx context.Context, criteria SearchCriteria) (*SearchResult, error)
}

// TokenProvider defines the interface for obtaining application tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// UserTokenSource mints user access tokens from a stored refresh token.
type UserTokenSource interface {
	UserAccessToken(ctx context.Context, refreshToken string) (TokenRecord, error)
	HasUserScope(scope string) bool
}

// Authorizer drives the authorization-code flow.
type Authorizer interface {
	AuthorizationURL(state string) string
	ExchangeAuthorizationCode(ctx context.Context, code string) (*UserGrant, error)
	Forget(refreshToken string)
}

// UserClient makes calls on behalf of an eBay user.
type UserClient interface {
	UserInfo(ctx context.Context, refreshToken string) (*UserInfo, error)
	PurchaseHistory(ctx context.Context, refreshToken string) (*PurchaseHistory, error)
}

// QuotaClient reports the upstream Browse API quota.
type QuotaClient interface {
	GetBrowseQuota(ctx context.Context) (*QuotaState, error)
}

var (
	_ EbayClient      = (*BrowseClient)(nil)
	_ TokenProvider   = (*OAuthTokenProvider)(nil)
	_ UserTokenSource = (*OAuthTokenProvider)(nil)
	_ Authorizer      = (*OAuthTokenProvider)(nil)
	_ UserClient      = (*IdentityClient)(nil)
	_ QuotaClient     = (*AnalyticsClient)(nil)
)
