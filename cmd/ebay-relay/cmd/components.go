package cmd

import (
	"log/slog"

	"github.com/auctionsniper/ebay-relay/internal/config"
	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

// ebayStack is the set of eBay clients built from one config. All of them
// share the provider's token cache.
type ebayStack struct {
	provider  *ebay.OAuthTokenProvider
	limiter   *ebay.RateLimiter
	browse    *ebay.BrowseClient
	identity  *ebay.IdentityClient
	analytics *ebay.AnalyticsClient
}

func newEbayStack(cfg *config.EbayConfig, log *slog.Logger) *ebayStack {
	hc := ebay.NewHTTPClient(cfg.RequestTimeout)

	provider := ebay.NewOAuthTokenProvider(
		ebay.Credential{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURI:  cfg.RedirectURI,
		},
		ebay.WithTokenURL(cfg.TokenURL),
		ebay.WithAuthorizeURL(cfg.AuthorizeURL),
		ebay.WithAppScopes(cfg.AppScopes...),
		ebay.WithUserScopes(cfg.UserScopes...),
		ebay.WithHTTPClient(hc),
		ebay.WithLogger(log.With("component", "ebay-oauth")),
	)

	limiter := ebay.NewRateLimiter(
		cfg.RateLimit.PerSecond,
		cfg.RateLimit.Burst,
		cfg.RateLimit.DailyLimit,
	)

	return &ebayStack{
		provider: provider,
		limiter:  limiter,
		browse: ebay.NewBrowseClient(provider,
			ebay.WithBrowseURL(cfg.BrowseURL),
			ebay.WithMarketplace(cfg.Marketplace),
			ebay.WithCategoryID(cfg.CategoryID),
			ebay.WithCurrency(cfg.Currency),
			ebay.WithFallbackQuery(cfg.FallbackQuery),
			ebay.WithBrowseHTTPClient(hc),
			ebay.WithRateLimiter(limiter),
		),
		identity: ebay.NewIdentityClient(provider,
			ebay.WithIdentityURL(cfg.IdentityURL),
			ebay.WithPurchaseOrderURL(cfg.PurchaseOrderURL),
			ebay.WithIdentityMarketplace(cfg.Marketplace),
			ebay.WithIdentityHTTPClient(hc),
		),
		analytics: ebay.NewAnalyticsClient(provider,
			ebay.WithAnalyticsURL(cfg.AnalyticsURL),
			ebay.WithAnalyticsHTTPClient(hc),
		),
	}
}
