package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPoolSize = 10

// PostgresStore implements UserTokenStore using pgxpool.
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ UserTokenStore = (*PostgresStore)(nil)

// Option configures the PostgresStore pool.
type Option func(*pgxpool.Config)

// WithPoolSize caps the number of pooled connections.
func WithPoolSize(n int) Option {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // bounded by config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetRefreshToken returns the stored eBay refresh token for userID.
func (s *PostgresStore) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	var token *string
	err := s.pool.QueryRow(ctx, queryGetRefreshToken, userID).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting refresh token: %w", err)
	}
	if token == nil || *token == "" {
		return "", ErrNotConnected
	}
	return *token, nil
}

// SetRefreshToken stores or clears the refresh token for userID. Storing a
// token for an unknown user creates the profile.
func (s *PostgresStore) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	if token == nil {
		tag, err := s.pool.Exec(ctx, queryClearRefreshToken, userID)
		if err != nil {
			return fmt.Errorf("clearing refresh token: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrUserNotFound
		}
		return nil
	}

	if _, err := s.pool.Exec(ctx, querySetRefreshToken, userID, *token); err != nil {
		return fmt.Errorf("storing refresh token: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts a profile for userID unless one exists.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, userID string, email, wallet *string) error {
	if _, err := s.pool.Exec(ctx, queryCreateProfileIfAbsent, userID, email, wallet); err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the profile for userID.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	p := &Profile{}
	err := s.pool.QueryRow(ctx, queryGetProfile, userID).Scan(
		&p.UserID, &p.Email, &p.WalletAddress, &p.EbayUserID, &p.EbayUsername,
		&p.EbayConnectedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return p, nil
}

// SetEbayIdentity records which eBay account userID is linked to.
func (s *PostgresStore) SetEbayIdentity(ctx context.Context, userID, ebayUserID, ebayUsername string) error {
	tag, err := s.pool.Exec(ctx, querySetEbayIdentity, userID, ebayUserID, ebayUsername)
	if err != nil {
		return fmt.Errorf("setting ebay identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ClearByEbayUserID clears tokens for all profiles linked to ebayUserID.
func (s *PostgresStore) ClearByEbayUserID(ctx context.Context, ebayUserID string) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryClearByEbayUserID, ebayUserID)
	if err != nil {
		return 0, fmt.Errorf("clearing tokens for ebay user: %w", err)
	}
	return tag.RowsAffected(), nil
}
