package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/metrics"
	"github.com/auctionsniper/ebay-relay/internal/store"
)

// Authenticator resolves the Authorization header to a relay user id.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (string, error)
	Optional(ctx context.Context, header string) (string, error)
}

// StateManager issues and consumes consent-flow state values.
type StateManager interface {
	Issue(ctx context.Context, userID string) (string, error)
	Consume(ctx context.Context, state string) (string, error)
}

// AuthHandler serves the eBay account-linking endpoints.
type AuthHandler struct {
	authorizer ebay.Authorizer
	users      ebay.UserClient
	tokens     store.UserTokenStore
	states     StateManager
	authn      Authenticator
	log        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authorizer ebay.Authorizer,
	users ebay.UserClient,
	tokens store.UserTokenStore,
	states StateManager,
	authn Authenticator,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AuthHandler{
		authorizer: authorizer,
		users:      users,
		tokens:     tokens,
		states:     states,
		authn:      authn,
		log:        log,
	}
}

// BearerInput carries the caller's identity token.
type BearerInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token issued by the identity provider"`
}

// AuthURLOutput is the response body for the auth-url endpoint.
type AuthURLOutput struct {
	Body struct {
		AuthURL string `json:"authUrl" doc:"eBay consent page URL" example:"https://auth.ebay.com/oauth2/authorize?client_id=..."`
	}
}

// GetAuthURL returns the eBay consent URL with a fresh state bound to the
// caller, if authenticated.
func (h *AuthHandler) GetAuthURL(ctx context.Context, input *BearerInput) (*AuthURLOutput, error) {
	userID, err := h.authn.Optional(ctx, input.Authorization)
	if err != nil {
		return nil, mapError(ctx, h.log, "auth-url", err)
	}

	state, err := h.states.Issue(ctx, userID)
	if err != nil {
		return nil, mapError(ctx, h.log, "auth-url", err)
	}

	out := &AuthURLOutput{}
	out.Body.AuthURL = h.authorizer.AuthorizationURL(state)
	return out, nil
}

// CallbackInput is the eBay consent redirect.
type CallbackInput struct {
	Code  string `query:"code"  required:"true" minLength:"1" doc:"Authorization code issued by eBay"`
	State string `query:"state" required:"true" minLength:"1" doc:"State returned by the auth-url endpoint"`
}

// CallbackOutput is the response body for the callback endpoint.
type CallbackOutput struct {
	Body struct {
		Success   bool `json:"success"   doc:"Whether the code exchange succeeded"`
		Connected bool `json:"connected" doc:"Whether a refresh token was stored for a relay user"`
	}
}

// Callback exchanges the authorization code and stores the refresh token
// for the user the state was issued to.
func (h *AuthHandler) Callback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error) {
	userID, err := h.states.Consume(ctx, input.State)
	if err != nil {
		metrics.OAuthCallbacksTotal.WithLabelValues("rejected").Inc()
		return nil, mapError(ctx, h.log, "callback", err)
	}

	grant, err := h.authorizer.ExchangeAuthorizationCode(ctx, input.Code)
	if err != nil {
		metrics.OAuthCallbacksTotal.WithLabelValues("failed").Inc()
		return nil, mapError(ctx, h.log, "callback", err)
	}

	out := &CallbackOutput{}
	out.Body.Success = true

	if userID == "" {
		metrics.OAuthCallbacksTotal.WithLabelValues("anonymous").Inc()
		h.log.Info("consent completed without a bound user")
		return out, nil
	}

	// A lookup failure only means there is no previous slot to drop.
	previous, prevErr := h.tokens.GetRefreshToken(ctx, userID)

	if err := h.tokens.SetRefreshToken(ctx, userID, &grant.RefreshToken); err != nil {
		metrics.OAuthCallbacksTotal.WithLabelValues("failed").Inc()
		return nil, mapError(ctx, h.log, "callback", err)
	}

	if prevErr == nil && previous != grant.RefreshToken {
		h.authorizer.Forget(previous)
	}

	h.recordIdentity(ctx, userID, grant.RefreshToken)

	metrics.OAuthCallbacksTotal.WithLabelValues("connected").Inc()
	h.log.Info("ebay account connected", "user_id", userID)

	out.Body.Connected = true
	return out, nil
}

// recordIdentity links the eBay user id to the profile so account-deletion
// notifications can find it. Failures only cost that linkage.
func (h *AuthHandler) recordIdentity(ctx context.Context, userID, refreshToken string) {
	info, err := h.users.UserInfo(ctx, refreshToken)
	if err != nil {
		h.log.Warn("fetching ebay identity after connect", "user_id", userID, "error", err)
		return
	}

	if err := h.tokens.SetEbayIdentity(ctx, userID, info.UserID, info.Username); err != nil {
		h.log.Warn("storing ebay identity", "user_id", userID, "error", err)
	}
}

// ConnectionStatusOutput is the response body for connection-status.
type ConnectionStatusOutput struct {
	Body struct {
		Connected    bool   `json:"connected" doc:"Whether an eBay refresh token is stored"`
		EbayUsername string `json:"ebayUsername,omitempty" doc:"Linked eBay username, when known"`
	}
}

// ConnectionStatus reports whether the caller has linked an eBay account.
func (h *AuthHandler) ConnectionStatus(ctx context.Context, input *BearerInput) (*ConnectionStatusOutput, error) {
	userID, err := h.authn.Authenticate(ctx, input.Authorization)
	if err != nil {
		return nil, mapError(ctx, h.log, "connection-status", err)
	}

	out := &ConnectionStatusOutput{}

	_, err = h.tokens.GetRefreshToken(ctx, userID)
	switch {
	case err == nil:
		out.Body.Connected = true
	case errors.Is(err, store.ErrNotConnected), errors.Is(err, store.ErrUserNotFound):
		return out, nil
	default:
		return nil, mapError(ctx, h.log, "connection-status", err)
	}

	profile, err := h.tokens.GetProfile(ctx, userID)
	if err != nil {
		h.log.Debug("loading profile for connection status", "user_id", userID, "error", err)
		return out, nil
	}
	if profile.EbayUsername != nil {
		out.Body.EbayUsername = *profile.EbayUsername
	}

	return out, nil
}

// DisconnectOutput is the response body for disconnect.
type DisconnectOutput struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message" example:"Successfully disconnected from eBay"`
	}
}

// Disconnect clears the caller's stored refresh token and drops its cached
// access token. Disconnecting twice is not an error.
func (h *AuthHandler) Disconnect(ctx context.Context, input *BearerInput) (*DisconnectOutput, error) {
	userID, err := h.authn.Authenticate(ctx, input.Authorization)
	if err != nil {
		return nil, mapError(ctx, h.log, "disconnect", err)
	}

	token, err := h.tokens.GetRefreshToken(ctx, userID)
	switch {
	case err == nil:
		h.authorizer.Forget(token)
	case errors.Is(err, store.ErrNotConnected), errors.Is(err, store.ErrUserNotFound):
	default:
		return nil, mapError(ctx, h.log, "disconnect", err)
	}

	if err := h.tokens.SetRefreshToken(ctx, userID, nil); err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return nil, mapError(ctx, h.log, "disconnect", err)
	}

	metrics.AccountDisconnectsTotal.Inc()
	h.log.Info("ebay account disconnected", "user_id", userID)

	out := &DisconnectOutput{}
	out.Body.Success = true
	out.Body.Message = "Successfully disconnected from eBay"
	return out, nil
}

// UserInfoOutput is the response body for user-info.
type UserInfoOutput struct {
	Body *ebay.UserInfo
}

// UserInfo returns the caller's eBay identity.
func (h *AuthHandler) UserInfo(ctx context.Context, input *BearerInput) (*UserInfoOutput, error) {
	refreshToken, err := h.refreshTokenFor(ctx, "user-info", input.Authorization)
	if err != nil {
		return nil, err
	}

	info, err := h.users.UserInfo(ctx, refreshToken)
	if err != nil {
		return nil, mapError(ctx, h.log, "user-info", err)
	}

	return &UserInfoOutput{Body: info}, nil
}

// UserHistoryOutput is the response body for user-history.
type UserHistoryOutput struct {
	Body *ebay.PurchaseHistory
}

// UserHistory returns the caller's eBay purchase history when the
// application holds the order scope.
func (h *AuthHandler) UserHistory(ctx context.Context, input *BearerInput) (*UserHistoryOutput, error) {
	refreshToken, err := h.refreshTokenFor(ctx, "user-history", input.Authorization)
	if err != nil {
		return nil, err
	}

	history, err := h.users.PurchaseHistory(ctx, refreshToken)
	if err != nil {
		return nil, mapError(ctx, h.log, "user-history", err)
	}

	return &UserHistoryOutput{Body: history}, nil
}

func (h *AuthHandler) refreshTokenFor(ctx context.Context, op, header string) (string, error) {
	userID, err := h.authn.Authenticate(ctx, header)
	if err != nil {
		return "", mapError(ctx, h.log, op, err)
	}

	token, err := h.tokens.GetRefreshToken(ctx, userID)
	if err != nil {
		return "", mapError(ctx, h.log, op, err)
	}
	return token, nil
}

// RegisterAuthRoutes registers the eBay account-linking endpoints.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-auth-url",
		Method:      http.MethodGet,
		Path:        "/api/ebay/auth/auth-url",
		Summary:     "Get eBay consent URL",
		Description: "Returns the eBay consent page URL. When called with a bearer token the resulting authorization is stored for that user.",
		Tags:        []string{"ebay-auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.GetAuthURL)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-auth-callback",
		Method:      http.MethodGet,
		Path:        "/api/ebay/auth/callback",
		Summary:     "eBay consent callback",
		Description: "Exchanges the authorization code returned by eBay and stores the refresh token.",
		Tags:        []string{"ebay-auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "get-connection-status",
		Method:      http.MethodGet,
		Path:        "/api/ebay/auth/connection-status",
		Summary:     "Get eBay connection status",
		Tags:        []string{"ebay-auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.ConnectionStatus)

	huma.Register(api, huma.Operation{
		OperationID: "disconnect-ebay",
		Method:      http.MethodPost,
		Path:        "/api/ebay/auth/disconnect",
		Summary:     "Disconnect eBay account",
		Tags:        []string{"ebay-auth"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.Disconnect)

	huma.Register(api, huma.Operation{
		OperationID: "get-ebay-user-info",
		Method:      http.MethodGet,
		Path:        "/api/ebay/auth/user-info",
		Summary:     "Get eBay identity",
		Tags:        []string{"ebay-auth"},
		Errors: []int{
			http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound,
			StatusReauthorize, http.StatusBadGateway,
		},
	}, h.UserInfo)

	huma.Register(api, huma.Operation{
		OperationID: "get-ebay-user-history",
		Method:      http.MethodGet,
		Path:        "/api/ebay/auth/user-history",
		Summary:     "Get eBay purchase history",
		Description: "Requires the buy.order.readonly scope, which the default grant does not include.",
		Tags:        []string{"ebay-auth"},
		Errors: []int{
			http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound,
			StatusReauthorize, http.StatusBadGateway,
		},
	}, h.UserHistory)
}
