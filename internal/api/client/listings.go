package client

import (
	"context"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

// SearchParams describes a graded card search.
type SearchParams struct {
	Query         string              `json:"query,omitempty"`
	Limit         int                 `json:"limit,omitempty"`
	Offset        int                 `json:"offset,omitempty"`
	AspectFilters ebay.AspectCriteria `json:"aspectFilters"`
	Filters       SearchFilters       `json:"filters"`
}

// SearchFilters carries the price and buying-option filters.
type SearchFilters struct {
	PriceMin      *float64 `json:"priceMin,omitempty"`
	PriceMax      *float64 `json:"priceMax,omitempty"`
	BuyingOptions []string `json:"buyingOptions,omitempty"`
}

// SearchListings runs a listing search through the relay.
func (c *Client) SearchListings(ctx context.Context, params *SearchParams) (*ebay.SearchResult, error) {
	var resp ebay.SearchResult
	if err := c.post(ctx, "/api/ebay/listings", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
