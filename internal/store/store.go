// Package store defines the persistence abstraction for ebay-relay.
// Handlers depend on the UserTokenStore interface, never on the Postgres
// implementation, so they can be tested with mocks.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUserNotFound means no profile row exists for the user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotConnected means the profile exists but holds no eBay refresh token.
	ErrNotConnected = errors.New("ebay account not connected")
)

// Profile is a relay user and the eBay account linked to it.
type Profile struct {
	UserID          string
	Email           *string
	WalletAddress   *string
	EbayUserID      *string
	EbayUsername    *string
	EbayConnectedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Connected reports whether an eBay account has been linked.
func (p *Profile) Connected() bool {
	return p.EbayConnectedAt != nil
}

// UserTokenStore persists eBay refresh tokens per relay user.
type UserTokenStore interface {
	// GetRefreshToken returns ErrUserNotFound or ErrNotConnected when no
	// token is stored. Any other error is a storage failure.
	GetRefreshToken(ctx context.Context, userID string) (string, error)
	// SetRefreshToken stores token for userID. A nil token clears it along
	// with the linked eBay identity.
	SetRefreshToken(ctx context.Context, userID string, token *string) error
	// CreateIfAbsent inserts a profile when none exists. Existing rows are
	// left untouched.
	CreateIfAbsent(ctx context.Context, userID string, email, wallet *string) error
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	SetEbayIdentity(ctx context.Context, userID, ebayUserID, ebayUsername string) error
	// ClearByEbayUserID drops tokens for every profile linked to the eBay
	// user and returns how many were cleared.
	ClearByEbayUserID(ctx context.Context, ebayUserID string) (int64, error)

	Ping(ctx context.Context) error
	Close()
}
