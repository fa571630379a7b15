//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/auctionsniper/ebay-relay/internal/store"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("relay_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func strPtr(s string) *string { return &s }

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_RefreshTokenLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	const user = "did:privy:lifecycle"

	_, err := s.GetRefreshToken(ctx, user)
	require.ErrorIs(t, err, store.ErrUserNotFound)

	require.NoError(t, s.CreateIfAbsent(ctx, user, strPtr("ash@example.com"), nil))

	_, err = s.GetRefreshToken(ctx, user)
	require.ErrorIs(t, err, store.ErrNotConnected)

	require.NoError(t, s.SetRefreshToken(ctx, user, strPtr("v^1.1#refresh")))

	token, err := s.GetRefreshToken(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "v^1.1#refresh", token)

	p, err := s.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.True(t, p.Connected())
	require.NotNil(t, p.Email)
	assert.Equal(t, "ash@example.com", *p.Email)

	require.NoError(t, s.SetRefreshToken(ctx, user, nil))

	_, err = s.GetRefreshToken(ctx, user)
	require.ErrorIs(t, err, store.ErrNotConnected)

	p, err = s.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.False(t, p.Connected())
}

func TestPostgresStore_CreateIfAbsentKeepsExisting(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	const user = "did:privy:keep"

	require.NoError(t, s.CreateIfAbsent(ctx, user, strPtr("first@example.com"), nil))
	require.NoError(t, s.CreateIfAbsent(ctx, user, strPtr("second@example.com"), strPtr("0xabc")))

	p, err := s.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", *p.Email)
	assert.Nil(t, p.WalletAddress)
}

func TestPostgresStore_SetRefreshTokenCreatesProfile(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.SetRefreshToken(ctx, "did:privy:new", strPtr("tok")))

	token, err := s.GetRefreshToken(ctx, "did:privy:new")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestPostgresStore_ClearUnknownUser(t *testing.T) {
	s := setupPostgres(t)

	err := s.SetRefreshToken(context.Background(), "did:privy:ghost", nil)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostgresStore_ClearByEbayUserID(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.SetRefreshToken(ctx, "did:privy:a", strPtr("tok-a")))
	require.NoError(t, s.SetEbayIdentity(ctx, "did:privy:a", "ebay-1", "collector"))
	require.NoError(t, s.SetRefreshToken(ctx, "did:privy:b", strPtr("tok-b")))
	require.NoError(t, s.SetEbayIdentity(ctx, "did:privy:b", "ebay-2", "other"))

	n, err := s.ClearByEbayUserID(ctx, "ebay-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.GetRefreshToken(ctx, "did:privy:a")
	require.ErrorIs(t, err, store.ErrNotConnected)

	token, err := s.GetRefreshToken(ctx, "did:privy:b")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", token)

	n, err = s.ClearByEbayUserID(ctx, "ebay-unknown")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostgresStore_SetEbayIdentityUnknownUser(t *testing.T) {
	s := setupPostgres(t)

	err := s.SetEbayIdentity(context.Background(), "did:privy:ghost", "ebay-1", "x")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}
