// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Identity      IdentityConfig      `yaml:"identity"`
	OAuthState    OAuthStateConfig    `yaml:"oauth_state"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	// RedirectURI is the RuName registered with eBay for the consent flow.
	RedirectURI string `yaml:"redirect_uri"`

	// VerificationToken and DeletionEndpointURL answer the marketplace
	// account-deletion challenge. Both must match what is registered with
	// eBay byte for byte.
	VerificationToken   string `yaml:"verification_token"`
	DeletionEndpointURL string `yaml:"deletion_endpoint_url"`

	TokenURL         string `yaml:"token_url"`
	AuthorizeURL     string `yaml:"authorize_url"`
	BrowseURL        string `yaml:"browse_url"`
	IdentityURL      string `yaml:"identity_url"`
	PurchaseOrderURL string `yaml:"purchase_order_url"`
	AnalyticsURL     string `yaml:"analytics_url"`

	Marketplace    string          `yaml:"marketplace"`
	CategoryID     string          `yaml:"category_id"`
	Currency       string          `yaml:"currency"`
	FallbackQuery  string          `yaml:"fallback_query"`
	AppScopes      []string        `yaml:"app_scopes"`
	UserScopes     []string        `yaml:"user_scopes"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// IdentityConfig defines how end-user bearer tokens are verified.
type IdentityConfig struct {
	// VerificationKey is the PEM-encoded ES256 public key of the identity
	// provider.
	VerificationKey string `yaml:"verification_key"`
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
}

// OAuthStateConfig defines where consent-flow state nonces live.
type OAuthStateConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Backend string        `yaml:"backend"` // memory, redis
	Redis   RedisConfig   `yaml:"redis"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	QuotaSyncInterval time.Duration `yaml:"quota_sync_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines tracing, metrics export and error reporting.
type TelemetryConfig struct {
	ServiceName  string  `yaml:"service_name"`
	Environment  string  `yaml:"environment"`
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	OTLPInsecure bool    `yaml:"otlp_insecure"`
	SampleRatio  float64 `yaml:"sample_ratio"`
	SentryDSN    string  `yaml:"sentry_dsn"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyIdentityDefaults(&cfg.Identity)
	applyOAuthStateDefaults(&cfg.OAuthState)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.AuthorizeURL == "" {
		e.AuthorizeURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	}
	if e.IdentityURL == "" {
		e.IdentityURL = "https://apiz.ebay.com/commerce/identity/v1/user/"
	}
	if e.PurchaseOrderURL == "" {
		e.PurchaseOrderURL = "https://api.ebay.com/buy/order/v2/purchase_order"
	}
	if e.AnalyticsURL == "" {
		e.AnalyticsURL = "https://api.ebay.com/developer/analytics/v1_beta/rate_limit/"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.CategoryID == "" {
		e.CategoryID = "183454"
	}
	if e.Currency == "" {
		e.Currency = "USD"
	}
	if e.FallbackQuery == "" {
		e.FallbackQuery = "pokemon card"
	}
	if len(e.AppScopes) == 0 {
		e.AppScopes = []string{"https://api.ebay.com/oauth/api_scope"}
	}
	if len(e.UserScopes) == 0 {
		e.UserScopes = []string{
			"https://api.ebay.com/oauth/api_scope",
			"https://api.ebay.com/oauth/api_scope/commerce.identity.readonly",
		}
	}
	if e.RequestTimeout == 0 {
		e.RequestTimeout = 10 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyIdentityDefaults(i *IdentityConfig) {
	if i.Issuer == "" {
		i.Issuer = "privy.io"
	}
}

func applyOAuthStateDefaults(o *OAuthStateConfig) {
	if o.TTL == 0 {
		o.TTL = 10 * time.Minute
	}
	if o.Backend == "" {
		o.Backend = "memory"
	}
	if o.Redis.KeyPrefix == "" {
		o.Redis.KeyPrefix = "ebay-relay:oauth-state:"
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.QuotaSyncInterval == 0 {
		s.QuotaSyncInterval = 15 * time.Minute
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "ebay-relay"
	}
	if t.Environment == "" {
		t.Environment = "development"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"ebay.client_id", cfg.Ebay.ClientID},
		{"ebay.client_secret", cfg.Ebay.ClientSecret},
		{"ebay.redirect_uri", cfg.Ebay.RedirectURI},
		{"ebay.verification_token", cfg.Ebay.VerificationToken},
		{"ebay.deletion_endpoint_url", cfg.Ebay.DeletionEndpointURL},
		{"identity.verification_key", cfg.Identity.VerificationKey},
		{"identity.audience", cfg.Identity.Audience},
		{"database.host", cfg.Database.Host},
		{"database.name", cfg.Database.Name},
		{"database.user", cfg.Database.User},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}

	if cfg.Ebay.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("ebay.request_timeout must be positive"))
	}

	switch cfg.OAuthState.Backend {
	case "memory":
	case "redis":
		if cfg.OAuthState.Redis.Addr == "" {
			errs = append(
				errs,
				fmt.Errorf("oauth_state.redis.addr is required when backend is redis"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"oauth_state.backend must be one of: memory, redis (got %q)",
				cfg.OAuthState.Backend,
			),
		)
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if r := cfg.Telemetry.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1 (got %v)", r))
	}

	return errors.Join(errs...)
}
