package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredYAML carries every key validate insists on.
const requiredYAML = `
database:
  host: localhost
  name: testdb
  user: testuser
ebay:
  client_id: test-client
  client_secret: test-secret
  redirect_uri: Test-RuName
  verification_token: verification-token-0123456789abcdef
  deletion_endpoint_url: https://relay.example.com/api/users/ebay-account-deletion
identity:
  verification_key: test-key
  audience: test-app
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: requiredYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "test-client", cfg.Ebay.ClientID)
				assert.Equal(t, "test-secret", cfg.Ebay.ClientSecret)
				assert.Equal(t, "Test-RuName", cfg.Ebay.RedirectURI)
				assert.Equal(t, "test-app", cfg.Identity.Audience)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: requiredYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "https://auth.ebay.com/oauth2/authorize", cfg.Ebay.AuthorizeURL)
				assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
				assert.Equal(t, "183454", cfg.Ebay.CategoryID)
				assert.Equal(t, "USD", cfg.Ebay.Currency)
				assert.Equal(t, "pokemon card", cfg.Ebay.FallbackQuery)
				assert.Equal(t, []string{"https://api.ebay.com/oauth/api_scope"}, cfg.Ebay.AppScopes)
				assert.Len(t, cfg.Ebay.UserScopes, 2)
				assert.Equal(t, 10*time.Second, cfg.Ebay.RequestTimeout)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "privy.io", cfg.Identity.Issuer)
				assert.Equal(t, 10*time.Minute, cfg.OAuthState.TTL)
				assert.Equal(t, "memory", cfg.OAuthState.Backend)
				assert.Equal(t, 15*time.Minute, cfg.Schedule.QuotaSyncInterval)
				assert.Equal(t, "ebay-relay", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0.001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: requiredYAML + `
telemetry:
  sentry_dsn: "${TEST_SENTRY_DSN}"
`,
			envVars: map[string]string{
				"TEST_SENTRY_DSN": "https://key@sentry.example.com/1",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://key@sentry.example.com/1", cfg.Telemetry.SentryDSN)
			},
		},
		{
			name: "missing ebay credentials are all reported",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
identity:
  verification_key: k
  audience: a
`,
			wantErr: "ebay.client_id is required\nebay.client_secret is required\nebay.redirect_uri is required\nebay.verification_token is required\nebay.deletion_endpoint_url is required",
		},
		{
			name:    "missing everything",
			yaml:    "server:\n  port: 9000\n",
			wantErr: "database.user is required",
		},
		{
			name: "missing identity key",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
ebay:
  client_id: c
  client_secret: s
  redirect_uri: r
  verification_token: v
  deletion_endpoint_url: https://x
identity:
  audience: a
`,
			wantErr: "identity.verification_key is required",
		},
		{
			name: "redis backend without addr",
			yaml: requiredYAML + `
oauth_state:
  backend: redis
`,
			wantErr: "oauth_state.redis.addr is required when backend is redis",
		},
		{
			name: "unknown state backend",
			yaml: requiredYAML + `
oauth_state:
  backend: etcd
`,
			wantErr: `oauth_state.backend must be one of: memory, redis (got "etcd")`,
		},
		{
			name: "discord enabled without webhook",
			yaml: requiredYAML + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "sample ratio out of range",
			yaml: requiredYAML + `
telemetry:
  sample_ratio: 1.5
`,
			wantErr: "telemetry.sample_ratio must be between 0 and 1",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
  allowed_origins: ["https://app.example.com"]
database:
  host: db.example.com
  port: 5433
  name: relay_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
ebay:
  client_id: my-app-id
  client_secret: my-cert-id
  redirect_uri: My-RuName
  verification_token: tok
  deletion_endpoint_url: https://relay.example.com/api/users/ebay-account-deletion
  marketplace: EBAY_GB
  currency: GBP
  fallback_query: graded pokemon
  user_scopes:
    - https://api.ebay.com/oauth/api_scope
    - https://api.ebay.com/oauth/api_scope/buy.order.readonly
  request_timeout: 5s
  rate_limit:
    per_second: 2
    burst: 4
    daily_limit: 1000
identity:
  verification_key: key
  issuer: custom-issuer
  audience: app
oauth_state:
  ttl: 5m
  backend: redis
  redis:
    addr: redis:6379
    db: 2
schedule:
  quota_sync_interval: 1h
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
telemetry:
  otlp_endpoint: otel-collector:4317
  otlp_insecure: true
  sentry_dsn: https://key@sentry.example.com/1
  environment: production
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "EBAY_GB", cfg.Ebay.Marketplace)
				assert.Equal(t, "GBP", cfg.Ebay.Currency)
				assert.Equal(t, "graded pokemon", cfg.Ebay.FallbackQuery)
				assert.Contains(t, cfg.Ebay.UserScopes, "https://api.ebay.com/oauth/api_scope/buy.order.readonly")
				assert.Equal(t, 5*time.Second, cfg.Ebay.RequestTimeout)
				assert.Equal(t, int64(1000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "custom-issuer", cfg.Identity.Issuer)
				assert.Equal(t, 5*time.Minute, cfg.OAuthState.TTL)
				assert.Equal(t, "redis:6379", cfg.OAuthState.Redis.Addr)
				assert.Equal(t, 2, cfg.OAuthState.Redis.DB)
				assert.Equal(t, "ebay-relay:oauth-state:", cfg.OAuthState.Redis.KeyPrefix)
				assert.Equal(t, time.Hour, cfg.Schedule.QuotaSyncInterval)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.OTLPInsecure)
				assert.Equal(t, "production", cfg.Telemetry.Environment)
				assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 0.001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("RELAY_TEST_DOTENV=from-file\nRELAY_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("RELAY_TEST_PRESET", "from-env")
	t.Setenv("RELAY_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("RELAY_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))

	assert.Equal(t, "from-file", os.Getenv("RELAY_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("RELAY_TEST_PRESET"), "existing variables win")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "relay",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=relay user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
