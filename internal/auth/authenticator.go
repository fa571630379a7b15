package auth

import (
	"context"
	"log/slog"
	"strings"
)

// Authenticator turns an Authorization header into a user id and makes sure
// a profile exists for it.
type Authenticator struct {
	verifier Verifier
	users    UserCreator
	log      *slog.Logger
}

// NewAuthenticator creates an Authenticator. users may be nil to skip
// profile creation.
func NewAuthenticator(verifier Verifier, users UserCreator, log *slog.Logger) *Authenticator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Authenticator{verifier: verifier, users: users, log: log}
}

// Authenticate requires a valid bearer credential in header.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (string, error) {
	token := BearerToken(header)
	if token == "" {
		return "", ErrMissingToken
	}

	userID, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return "", err
	}

	if a.users != nil {
		if err := a.users.CreateIfAbsent(ctx, userID, nil, nil); err != nil {
			a.log.Warn("creating profile on authenticate", "user_id", userID, "error", err)
		}
	}

	return userID, nil
}

// Optional is Authenticate for routes that also serve anonymous callers. An
// absent header yields an empty user id; a present but invalid one fails.
func (a *Authenticator) Optional(ctx context.Context, header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", nil
	}
	return a.Authenticate(ctx, header)
}

// BearerToken extracts the token from an "Authorization: Bearer x" value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
