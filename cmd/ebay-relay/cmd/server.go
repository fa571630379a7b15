package cmd

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/auctionsniper/ebay-relay/api/openapi"
	"github.com/auctionsniper/ebay-relay/internal/api/handlers"
	"github.com/auctionsniper/ebay-relay/internal/api/middleware"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
	"github.com/auctionsniper/ebay-relay/internal/notify"
	"github.com/auctionsniper/ebay-relay/internal/store"
)

// serverDeps holds everything the HTTP surface is built from.
type serverDeps struct {
	log      *slog.Logger
	version  string
	origins  []string
	tokens   store.UserTokenStore
	oauth    ebay.Authorizer
	users    ebay.UserClient
	search   ebay.EbayClient
	limiter  *ebay.RateLimiter
	quota    handlers.QuotaSource
	states   handlers.StateManager
	authn    handlers.Authenticator
	notifier notify.Notifier

	verificationToken   string
	deletionEndpointURL string
}

// newRouter assembles the echo instance: middleware, the huma operations,
// the plain echo webhook and health routes, metrics and API docs.
func newRouter(d *serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.log))
	e.Use(middleware.RequestLog(d.log))
	e.Use(middleware.Metrics())
	if len(d.origins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: d.origins,
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		}))
	}

	health := handlers.NewHealthHandler(d.tokens)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterAccountDeletionRoutes(e, handlers.NewAccountDeletionHandler(
		d.verificationToken,
		d.deletionEndpointURL,
		d.tokens,
		d.notifier,
		d.log.With("component", "account-deletion"),
	))

	cfg := huma.DefaultConfig("ebay-relay API", d.version)
	cfg.Info.Description = "eBay account linking and graded Pokémon card search."
	api := humaecho.New(e, cfg)

	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(
		d.oauth,
		d.users,
		d.tokens,
		d.states,
		d.authn,
		d.log.With("component", "ebay-auth"),
	))
	handlers.RegisterListingsRoutes(api, handlers.NewListingsHandler(
		d.search,
		d.log.With("component", "listings"),
	))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.limiter, d.quota))

	openapi.RegisterRoutes(e, cfg.OpenAPIPath+".json")

	return e
}

// tracedHandler wraps the router with inbound OpenTelemetry spans.
func tracedHandler(e *echo.Echo) http.Handler {
	return otelhttp.NewHandler(e, "ebay-relay",
		otelhttp.WithFilter(func(r *http.Request) bool {
			switch r.URL.Path {
			case "/healthz", "/readyz", "/metrics":
				return false
			}
			return true
		}),
	)
}
