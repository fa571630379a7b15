package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/auctionsniper/ebay-relay/internal/auth"
	"github.com/auctionsniper/ebay-relay/internal/config"
	"github.com/auctionsniper/ebay-relay/internal/notify"
	"github.com/auctionsniper/ebay-relay/internal/oauthstate"
	"github.com/auctionsniper/ebay-relay/internal/scheduler"
	"github.com/auctionsniper/ebay-relay/internal/store"
	"github.com/auctionsniper/ebay-relay/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and quota scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := telemetry.InitSentry(cfg.Telemetry.SentryDSN, cfg.Telemetry.Environment, Version); err != nil {
		return fmt.Errorf("initializing sentry: %w", err)
	}
	defer telemetry.FlushSentry()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	tokens, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("opening token store: %w", err)
	}
	defer tokens.Close()

	if autoMigrate {
		if err := tokens.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations complete")
	}

	stateStore, closeStates, err := newStateStore(ctx, &cfg.OAuthState, log)
	if err != nil {
		return err
	}
	defer closeStates()

	verifier, err := auth.NewES256Verifier(
		cfg.Identity.VerificationKey,
		cfg.Identity.Audience,
		auth.WithIssuer(cfg.Identity.Issuer),
	)
	if err != nil {
		return fmt.Errorf("loading identity verification key: %w", err)
	}

	eb := newEbayStack(&cfg.Ebay, log)
	log.Info("ebay user grant", "scopes", eb.provider.GrantedUserScopes())

	quota := scheduler.NewQuotaSyncer(eb.analytics, eb.limiter, log.With("component", "quota"))
	sched, err := scheduler.NewScheduler(quota, cfg.Schedule.QuotaSyncInterval, log.With("component", "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newRouter(&serverDeps{
		log:                 log,
		version:             Version,
		origins:             cfg.Server.AllowedOrigins,
		tokens:              tokens,
		oauth:               eb.provider,
		users:               eb.identity,
		search:              eb.browse,
		limiter:             eb.limiter,
		quota:               quota,
		states:              oauthstate.NewManager(stateStore, oauthstate.WithTTL(cfg.OAuthState.TTL)),
		authn:               auth.NewAuthenticator(verifier, tokens, log.With("component", "auth")),
		notifier:            newNotifier(&cfg.Notifications, log),
		verificationToken:   cfg.Ebay.VerificationToken,
		deletionEndpointURL: cfg.Ebay.DeletionEndpointURL,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      tracedHandler(e),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			<-sched.Stop().Done()
			return fmt.Errorf("serving: %w", err)
		}
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-sctx.Done():
		log.Warn("scheduler did not stop before the shutdown deadline")
	}

	log.Info("server stopped")
	return nil
}

// newStateStore picks the OAuth state backend. The returned func releases
// any connection it opened.
func newStateStore(
	ctx context.Context,
	cfg *config.OAuthStateConfig,
	log *slog.Logger,
) (oauthstate.Store, func(), error) {
	if cfg.Backend != "redis" {
		log.Info("oauth state held in memory")
		return oauthstate.NewMemoryStore(nil), func() {}, nil
	}

	client, err := oauthstate.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	log.Info("oauth state held in redis", "addr", cfg.Redis.Addr)
	return oauthstate.NewRedisStore(client, cfg.Redis.KeyPrefix), func() {
		if err := client.Close(); err != nil {
			log.Warn("closing redis", "error", err)
		}
	}, nil
}

func newNotifier(cfg *config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if cfg.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log.With("component", "notify"))
}
