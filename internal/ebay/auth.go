package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

const (
	defaultTokenURL     = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthorizeURL = "https://auth.ebay.com/oauth2/authorize"
)

// OAuth scopes used by the relay.
const (
	ScopePublic       = "https://api.ebay.com/oauth/api_scope"
	ScopeIdentityRead = "https://api.ebay.com/oauth/api_scope/commerce.identity.readonly"
	ScopeBuyOrderRead = "https://api.ebay.com/oauth/api_scope/buy.order.readonly"
)

const (
	grantClientCredentials = "client_credentials"
	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

// Credential identifies the application to eBay.
type Credential struct {
	ClientID     string
	ClientSecret string
	// RedirectURI is the eBay RuName registered for the consent redirect.
	RedirectURI string
}

// UserGrant is the result of redeeming an authorization code.
type UserGrant struct {
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Access                TokenRecord
}

// OAuthTokenProvider performs the eBay client-credentials, authorization-code
// and refresh-token grants, and keeps the resulting access tokens in a
// TokenCache. Application and user tokens share the cache under different
// keys.
type OAuthTokenProvider struct {
	cred         Credential
	tokenURL     string
	authorizeURL string
	appScopes    []string
	userScopes   []string
	client       *http.Client
	cache        *TokenCache
	log          *slog.Logger
	nowFunc      func() time.Time
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.tokenURL = u
	}
}

// WithAuthorizeURL overrides the default eBay consent page.
func WithAuthorizeURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.authorizeURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.nowFunc = f
	}
}

// WithAppScopes sets the scopes requested for the application token.
func WithAppScopes(scopes ...string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.appScopes = scopes
	}
}

// WithUserScopes sets the scopes requested on the consent page and when
// refreshing user tokens.
func WithUserScopes(scopes ...string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.userScopes = scopes
	}
}

// WithTokenCache shares an existing cache.
func WithTokenCache(c *TokenCache) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.cache = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.log = l
	}
}

// NewOAuthTokenProvider creates a new eBay OAuth2 token provider.
func NewOAuthTokenProvider(cred Credential, opts ...OAuthOption) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		cred:         cred,
		tokenURL:     defaultTokenURL,
		authorizeURL: defaultAuthorizeURL,
		appScopes:    []string{ScopePublic},
		userScopes:   []string{ScopePublic, ScopeIdentityRead},
		client:       NewHTTPClient(defaultRequestTimeout),
		log:          slog.New(slog.DiscardHandler),
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = NewTokenCache(p.nowFunc)
	}
	return p
}

type tokenResponse struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int    `json:"expires_in"`
	TokenType             string `json:"token_type"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid application access token, refreshing if necessary.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	rec, err := p.ApplicationToken(ctx)
	if err != nil {
		return "", err
	}
	return rec.AccessToken, nil
}

// ApplicationToken returns the cached application token, or performs one
// client-credentials grant when it is missing or within SafetyMargin of
// expiry. Failures are not retried.
func (p *OAuthTokenProvider) ApplicationToken(ctx context.Context) (TokenRecord, error) {
	rec, hit, err := p.cache.Get(ctx, AppScopeKey, p.fetchApplicationToken)
	if err != nil {
		return TokenRecord{}, err
	}
	if hit {
		metrics.TokenCacheHitsTotal.WithLabelValues("app").Inc()
	}
	return rec, nil
}

func (p *OAuthTokenProvider) fetchApplicationToken(ctx context.Context) (TokenRecord, error) {
	resp, err := p.grant(ctx, grantClientCredentials, url.Values{
		"grant_type": {grantClientCredentials},
		"scope":      {strings.Join(p.appScopes, " ")},
	}, nil)
	if err != nil {
		return TokenRecord{}, err
	}

	p.log.Debug("application token refreshed", "expires_in", resp.ExpiresIn)
	return p.record(resp), nil
}

// AuthorizationURL builds the consent page URL. The state value is passed
// through untouched and must be checked by the caller on the callback.
func (p *OAuthTokenProvider) AuthorizationURL(state string) string {
	v := url.Values{
		"client_id":     {p.cred.ClientID},
		"redirect_uri":  {p.cred.RedirectURI},
		"response_type": {"code"},
		"scope":         {strings.Join(p.userScopes, " ")},
		"state":         {state},
		"prompt":        {"login"},
	}
	return p.authorizeURL + "?" + v.Encode()
}

// ExchangeAuthorizationCode redeems a single-use authorization code. The
// access token that comes back seeds the user cache slot so the first
// user-scoped call does not need another grant.
func (p *OAuthTokenProvider) ExchangeAuthorizationCode(
	ctx context.Context,
	code string,
) (*UserGrant, error) {
	resp, err := p.grant(ctx, grantAuthorizationCode, url.Values{
		"grant_type":   {grantAuthorizationCode},
		"code":         {code},
		"redirect_uri": {p.cred.RedirectURI},
	}, ErrInvalidGrant)
	if err != nil {
		return nil, err
	}

	if resp.RefreshToken == "" {
		return nil, &OAuthError{
			Kind:        ErrUpstreamAuth,
			Grant:       grantAuthorizationCode,
			StatusCode:  http.StatusOK,
			Description: "response did not include a refresh token",
		}
	}

	g := &UserGrant{
		RefreshToken: resp.RefreshToken,
		Access:       p.record(resp),
	}
	if resp.RefreshTokenExpiresIn > 0 {
		g.RefreshTokenExpiresAt = p.nowFunc().Add(time.Duration(resp.RefreshTokenExpiresIn) * time.Second)
	}

	p.cache.Store(UserScopeKey(g.RefreshToken), g.Access)
	return g, nil
}

// UserAccessToken returns a user access token minted from refreshToken,
// cached per refresh token. A revoked or expired refresh token yields
// ErrRefreshTokenInvalid so the caller can ask the user to re-authorize.
func (p *OAuthTokenProvider) UserAccessToken(
	ctx context.Context,
	refreshToken string,
) (TokenRecord, error) {
	if refreshToken == "" {
		return TokenRecord{}, fmt.Errorf("empty refresh token: %w", ErrRefreshTokenInvalid)
	}

	key := UserScopeKey(refreshToken)
	rec, hit, err := p.cache.Get(ctx, key, func(ctx context.Context) (TokenRecord, error) {
		resp, err := p.grant(ctx, grantRefreshToken, url.Values{
			"grant_type":    {grantRefreshToken},
			"refresh_token": {refreshToken},
			"scope":         {strings.Join(p.userScopes, " ")},
		}, ErrRefreshTokenInvalid)
		if err != nil {
			return TokenRecord{}, err
		}
		return p.record(resp), nil
	})
	if err != nil {
		p.cache.Invalidate(key)
		return TokenRecord{}, err
	}
	if hit {
		metrics.TokenCacheHitsTotal.WithLabelValues("user").Inc()
	}
	return rec, nil
}

// Forget drops the cached user token for refreshToken.
func (p *OAuthTokenProvider) Forget(refreshToken string) {
	p.cache.Invalidate(UserScopeKey(refreshToken))
}

// HasUserScope reports whether scope is part of the configured user grant.
func (p *OAuthTokenProvider) HasUserScope(scope string) bool {
	return slices.Contains(p.userScopes, scope)
}

// GrantedUserScopes returns a copy of the configured user scopes.
func (p *OAuthTokenProvider) GrantedUserScopes() []string {
	return slices.Clone(p.userScopes)
}

func (p *OAuthTokenProvider) record(resp *tokenResponse) TokenRecord {
	return TokenRecord{
		AccessToken: resp.AccessToken,
		ExpiresAt:   p.nowFunc().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
}

// grant posts form to the token endpoint. When eBay answers invalid_grant
// and invalidGrant is non-nil, the failure is classified as invalidGrant
// instead of ErrUpstreamAuth.
func (p *OAuthTokenProvider) grant(
	ctx context.Context,
	grantType string,
	form url.Values,
	invalidGrant error,
) (*tokenResponse, error) {
	kind := grantKind(grantType)

	ctx, span := tracer.Start(ctx, "ebay.oauth."+grantType,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("oauth.grant_type", grantType)),
	)
	defer span.End()

	start := time.Now()
	resp, err := p.postForm(ctx, grantType, form, invalidGrant)
	metrics.TokenRefreshDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues(kind, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "token grant failed")
		p.log.Warn("token grant failed", "grant", grantType, "err", err)
		return nil, err
	}

	metrics.TokenRefreshTotal.WithLabelValues(kind, "success").Inc()
	return resp, nil
}

func (p *OAuthTokenProvider) postForm(
	ctx context.Context,
	grantType string,
	form url.Values,
	invalidGrant error,
) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, &OAuthError{Kind: ErrUpstreamAuth, Grant: grantType, Err: fmt.Errorf("creating token request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(p.cred.ClientID + ":" + p.cred.ClientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &OAuthError{Kind: ErrUpstreamAuth, Grant: grantType, Err: fmt.Errorf("executing token request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OAuthError{Kind: ErrUpstreamAuth, Grant: grantType, Err: fmt.Errorf("reading token response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing

		kind := ErrUpstreamAuth
		if invalidGrant != nil && errResp.Error == "invalid_grant" {
			kind = invalidGrant
		}
		return nil, &OAuthError{
			Kind:        kind,
			Grant:       grantType,
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &OAuthError{Kind: ErrUpstreamAuth, Grant: grantType, Err: fmt.Errorf("parsing token response: %w", err)}
	}
	if tokenResp.AccessToken == "" {
		return nil, &OAuthError{
			Kind:        ErrUpstreamAuth,
			Grant:       grantType,
			StatusCode:  resp.StatusCode,
			Description: "response did not include an access token",
		}
	}

	return &tokenResp, nil
}

func grantKind(grantType string) string {
	switch grantType {
	case grantClientCredentials:
		return "app"
	case grantAuthorizationCode:
		return "code"
	default:
		return "user"
	}
}
