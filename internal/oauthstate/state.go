// Package oauthstate issues and consumes the opaque state parameter carried
// through the eBay consent redirect. A state is a base64url JSON document
// holding the issue time and a single-use nonce. The nonce is bound to the
// relay user that started the flow so the callback knows whose refresh token
// it is receiving.
package oauthstate

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a consent flow may take before its state is rejected.
const DefaultTTL = 10 * time.Minute

var (
	// ErrMalformed means the state could not be decoded.
	ErrMalformed = errors.New("malformed oauth state")
	// ErrExpired means the state is older than the configured TTL.
	ErrExpired = errors.New("oauth state expired")
	// ErrUnknown means the nonce was never issued or was already consumed.
	ErrUnknown = errors.New("oauth state not recognized")
)

// Store holds outstanding nonces. Take must be atomic so a nonce can be
// consumed at most once.
type Store interface {
	Put(ctx context.Context, nonce, userID string, ttl time.Duration) error
	Take(ctx context.Context, nonce string) (userID string, ok bool, err error)
}

type payload struct {
	Timestamp int64  `json:"ts"`
	Nonce     string `json:"nonce"`
}

// Manager issues and validates consent-flow states.
type Manager struct {
	store   Store
	ttl     time.Duration
	nowFunc func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithNowFunc sets a custom time function (for testing).
func WithNowFunc(fn func() time.Time) Option {
	return func(m *Manager) {
		m.nowFunc = fn
	}
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		ttl:     DefaultTTL,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the state lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a new state bound to userID. An empty userID starts an
// anonymous flow.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	p := payload{
		Timestamp: m.nowFunc().UnixMilli(),
		Nonce:     uuid.NewString(),
	}

	if err := m.store.Put(ctx, p.Nonce, userID, m.ttl); err != nil {
		return "", fmt.Errorf("storing oauth state: %w", err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Consume validates state and returns the user id it was issued for. A state
// can be consumed once.
func (m *Manager) Consume(ctx context.Context, state string) (string, error) {
	p, err := decode(state)
	if err != nil {
		return "", err
	}

	issued := time.UnixMilli(p.Timestamp)
	if m.nowFunc().Sub(issued) > m.ttl {
		// Drop the nonce; the result does not matter.
		_, _, _ = m.store.Take(ctx, p.Nonce)
		return "", ErrExpired
	}

	userID, ok, err := m.store.Take(ctx, p.Nonce)
	if err != nil {
		return "", fmt.Errorf("consuming oauth state: %w", err)
	}
	if !ok {
		return "", ErrUnknown
	}
	return userID, nil
}

func decode(state string) (payload, error) {
	var p payload
	if state == "" {
		return p, ErrMalformed
	}

	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		// Tolerate padded encodings.
		raw, err = base64.URLEncoding.DecodeString(state)
		if err != nil {
			return p, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.Nonce == "" || p.Timestamp <= 0 {
		return p, ErrMalformed
	}
	return p, nil
}
