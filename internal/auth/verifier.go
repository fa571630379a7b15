// Package auth verifies the identity provider's bearer tokens and resolves
// them to relay user ids.
package auth

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultIssuer is the issuer claim of Privy access tokens.
const DefaultIssuer = "privy.io"

const clockLeeway = 30 * time.Second

var (
	// ErrMissingToken means no bearer credential was presented.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken means the credential failed verification.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Verifier resolves a bearer token to a user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// UserCreator creates a profile on first sight of a user.
type UserCreator interface {
	CreateIfAbsent(ctx context.Context, userID string, email, wallet *string) error
}

// ES256Verifier validates tokens signed with the identity provider's ECDSA
// P-256 key. The subject claim is the user id.
type ES256Verifier struct {
	key      *ecdsa.PublicKey
	issuer   string
	audience string
	nowFunc  func() time.Time
}

var _ Verifier = (*ES256Verifier)(nil)

// VerifierOption configures an ES256Verifier.
type VerifierOption func(*ES256Verifier)

// WithIssuer overrides DefaultIssuer.
func WithIssuer(issuer string) VerifierOption {
	return func(v *ES256Verifier) {
		if issuer != "" {
			v.issuer = issuer
		}
	}
}

// WithNowFunc sets a custom time function (for testing).
func WithNowFunc(fn func() time.Time) VerifierOption {
	return func(v *ES256Verifier) {
		v.nowFunc = fn
	}
}

// NewES256Verifier builds a verifier from a PEM-encoded public key. audience
// is the identity provider's app id.
func NewES256Verifier(pemKey, audience string, opts ...VerifierOption) (*ES256Verifier, error) {
	// Keys pasted into env vars often carry literal \n sequences.
	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")

	key, err := jwt.ParseECPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("parsing verification key: %w", err)
	}
	if audience == "" {
		return nil, errors.New("audience is required")
	}

	v := &ES256Verifier{
		key:      key,
		issuer:   DefaultIssuer,
		audience: audience,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Verify checks signature, issuer, audience, and expiry, and returns the
// token subject.
func (v *ES256Verifier) Verify(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockLeeway),
		jwt.WithTimeFunc(v.nowFunc),
	)

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims.Subject, nil
}
