package ebay

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamAuth is returned when eBay rejects a credential or token
	// exchange, or the token endpoint cannot be reached.
	ErrUpstreamAuth = errors.New("ebay token exchange failed")

	// ErrInvalidGrant is returned when an authorization code is expired or
	// has already been redeemed.
	ErrInvalidGrant = errors.New("authorization code invalid or already used")

	// ErrRefreshTokenInvalid is returned when a stored refresh token has been
	// revoked or has expired on the eBay side. The user must re-authorize.
	ErrRefreshTokenInvalid = errors.New("refresh token revoked or expired")

	// ErrInsufficientScope is returned before any network work when a call
	// needs an OAuth scope the application was not configured to request.
	ErrInsufficientScope = errors.New("required oauth scope not granted")
)

// OAuthError describes a failed call to the eBay token endpoint. Kind is one
// of ErrUpstreamAuth, ErrInvalidGrant or ErrRefreshTokenInvalid, so callers
// match it with errors.Is.
type OAuthError struct {
	Kind        error
	Grant       string
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *OAuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s grant: %v: %v", e.Grant, e.Kind, e.Err)
	}
	return fmt.Sprintf(
		"%s grant: %v (status %d): %s - %s",
		e.Grant, e.Kind, e.StatusCode, e.Code, e.Description,
	)
}

// Unwrap exposes both the classification and the transport cause.
func (e *OAuthError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// APIError is returned for non-2xx responses from eBay data endpoints.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eBay API error (status %d): %s", e.StatusCode, e.Body)
}

// ValidationError reports malformed caller input. It is raised before any
// token or network work happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func scopeError(scope string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientScope, scope)
}
