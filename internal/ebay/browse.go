package ebay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/auctionsniper/ebay-relay/internal/metrics"
)

const (
	defaultBrowseURL     = "https://api.ebay.com/buy/browse/v1/item_summary/search"
	defaultMarketplace   = "EBAY_US"
	defaultCurrency      = "USD"
	defaultFallbackQuery = "pokemon card"
)

// BrowseClient implements EbayClient using the eBay Browse API.
type BrowseClient struct {
	tokens        TokenProvider
	browseURL     string
	marketplace   string
	categoryID    string
	currency      string
	fallbackQuery string
	client        *http.Client
	rateLimiter   *RateLimiter
}

// BrowseOption configures the BrowseClient.
type BrowseOption func(*BrowseClient)

// WithBrowseURL overrides the default Browse API endpoint.
func WithBrowseURL(u string) BrowseOption {
	return func(c *BrowseClient) {
		c.browseURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) BrowseOption {
	return func(c *BrowseClient) {
		c.marketplace = m
	}
}

// WithCategoryID overrides the category every search is pinned to.
func WithCategoryID(id string) BrowseOption {
	return func(c *BrowseClient) {
		c.categoryID = id
	}
}

// WithCurrency sets the currency sent alongside price filters.
func WithCurrency(cur string) BrowseOption {
	return func(c *BrowseClient) {
		c.currency = cur
	}
}

// WithFallbackQuery sets the term searched when the caller sends no query.
func WithFallbackQuery(q string) BrowseOption {
	return func(c *BrowseClient) {
		c.fallbackQuery = q
	}
}

// WithBrowseHTTPClient overrides the default HTTP client.
func WithBrowseHTTPClient(hc *http.Client) BrowseOption {
	return func(c *BrowseClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every Search() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) BrowseOption {
	return func(c *BrowseClient) {
		c.rateLimiter = r
	}
}

// NewBrowseClient creates a new eBay Browse API client.
func NewBrowseClient(tokens TokenProvider, opts ...BrowseOption) *BrowseClient {
	c := &BrowseClient{
		tokens:        tokens,
		browseURL:     defaultBrowseURL,
		marketplace:   defaultMarketplace,
		categoryID:    DefaultCategoryID,
		currency:      defaultCurrency,
		fallbackQuery: defaultFallbackQuery,
		client:        NewHTTPClient(defaultRequestTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search implements EbayClient.Search by querying the Browse API. Criteria
// are validated before any token or network work.
func (c *BrowseClient) Search(
	ctx context.Context,
	criteria SearchCriteria,
) (*SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	var result SearchResult
	err = getJSON(ctx, c.client, "browse", c.buildSearchURL(criteria), token,
		map[string]string{"X-EBAY-C-MARKETPLACE-ID": c.marketplace}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *BrowseClient) buildSearchURL(criteria SearchCriteria) string {
	params := url.Values{}

	q := criteria.FreeTextQuery
	if q == "" {
		q = c.fallbackQuery
	}
	params.Set("q", q)
	params.Set("category_ids", c.categoryID)

	limit := criteria.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(criteria.Offset))

	params.Set("aspect_filter", EncodeAspectFilter(c.categoryID, SearchAspects(criteria.AspectFilters)))

	if f := EncodeStandardFilter(criteria.PriceRange, c.currency, criteria.BuyingOptions); f != "" {
		params.Set("filter", f)
	}

	return c.browseURL + "?" + params.Encode()
}
