package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

// ListingsHandler serves graded-card searches against the Browse API.
type ListingsHandler struct {
	client ebay.EbayClient
	log    *slog.Logger
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(client ebay.EbayClient, log *slog.Logger) *ListingsHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ListingsHandler{client: client, log: log}
}

// ListingFilters carries the price and buying-option filters.
type ListingFilters struct {
	PriceMin      *float64 `json:"priceMin,omitempty"      doc:"Minimum price in the configured currency"`
	PriceMax      *float64 `json:"priceMax,omitempty"      doc:"Maximum price in the configured currency"`
	BuyingOptions []string `json:"buyingOptions,omitempty" doc:"FIXED_PRICE, AUCTION or BEST_OFFER"`
}

// SearchListingsInput is the query-string form of a listing search.
// aspectFilters and filters are JSON-encoded objects.
type SearchListingsInput struct {
	Query         string `query:"query"         doc:"Free-text query; a default is used when empty"`
	Limit         int    `query:"limit"         doc:"Page size (default 50)"                        minimum:"0" maximum:"200"`
	Offset        int    `query:"offset"        doc:"Result offset"                                 minimum:"0" maximum:"9999"`
	AspectFilters string `query:"aspectFilters" doc:"JSON object with graderNames, grades, specialtyTags" example:"{\"graderNames\":[\"PSA\"],\"grades\":[\"10\"]}"`
	Filters       string `query:"filters"       doc:"JSON object with priceMin, priceMax, buyingOptions"  example:"{\"priceMax\":500}"`
}

// SearchListingsBody is the JSON body form of a listing search.
type SearchListingsBody struct {
	Query         string              `json:"query,omitempty"`
	Limit         int                 `json:"limit,omitempty"         minimum:"0" maximum:"200"`
	Offset        int                 `json:"offset,omitempty"        minimum:"0" maximum:"9999"`
	AspectFilters ebay.AspectCriteria `json:"aspectFilters,omitempty"`
	Filters       ListingFilters      `json:"filters,omitempty"`
}

// PostSearchListingsInput wraps the POST body.
type PostSearchListingsInput struct {
	Body SearchListingsBody
}

// SearchListingsOutput is the response for both search forms.
type SearchListingsOutput struct {
	Body *ebay.SearchResult
}

// SearchListings runs a search described by query parameters.
func (h *ListingsHandler) SearchListings(
	ctx context.Context,
	input *SearchListingsInput,
) (*SearchListingsOutput, error) {
	var aspects ebay.AspectCriteria
	if input.AspectFilters != "" {
		if err := json.Unmarshal([]byte(input.AspectFilters), &aspects); err != nil {
			return nil, mapError(ctx, h.log, "search listings",
				&ebay.ValidationError{Field: "aspectFilters", Reason: "must be a JSON object"})
		}
	}

	var filters ListingFilters
	if input.Filters != "" {
		if err := json.Unmarshal([]byte(input.Filters), &filters); err != nil {
			return nil, mapError(ctx, h.log, "search listings",
				&ebay.ValidationError{Field: "filters", Reason: "must be a JSON object"})
		}
	}

	return h.search(ctx, buildCriteria(input.Query, input.Limit, input.Offset, aspects, filters))
}

// PostSearchListings runs a search described by a JSON body.
func (h *ListingsHandler) PostSearchListings(
	ctx context.Context,
	input *PostSearchListingsInput,
) (*SearchListingsOutput, error) {
	b := input.Body
	return h.search(ctx, buildCriteria(b.Query, b.Limit, b.Offset, b.AspectFilters, b.Filters))
}

func (h *ListingsHandler) search(ctx context.Context, criteria ebay.SearchCriteria) (*SearchListingsOutput, error) {
	result, err := h.client.Search(ctx, criteria)
	if err != nil {
		return nil, mapError(ctx, h.log, "search listings", err)
	}
	return &SearchListingsOutput{Body: result}, nil
}

func buildCriteria(
	query string,
	limit, offset int,
	aspects ebay.AspectCriteria,
	filters ListingFilters,
) ebay.SearchCriteria {
	c := ebay.SearchCriteria{
		FreeTextQuery: query,
		Limit:         limit,
		Offset:        offset,
		AspectFilters: aspects,
		BuyingOptions: filters.BuyingOptions,
	}
	if filters.PriceMin != nil || filters.PriceMax != nil {
		c.PriceRange = &ebay.PriceRange{Min: filters.PriceMin, Max: filters.PriceMax}
	}
	return c
}

// RegisterListingsRoutes registers the listing search endpoints.
func RegisterListingsRoutes(api huma.API, h *ListingsHandler) {
	errs := []int{
		http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable,
	}

	huma.Register(api, huma.Operation{
		OperationID: "search-listings",
		Method:      http.MethodGet,
		Path:        "/api/ebay/listings",
		Summary:     "Search graded card listings",
		Description: "Searches eBay for graded Pokémon cards. Aspect and price filters are JSON-encoded query parameters.",
		Tags:        []string{"listings"},
		Errors:      errs,
	}, h.SearchListings)

	huma.Register(api, huma.Operation{
		OperationID: "post-search-listings",
		Method:      http.MethodPost,
		Path:        "/api/ebay/listings",
		Summary:     "Search graded card listings",
		Description: "Same as the GET form with the criteria sent as a JSON body.",
		Tags:        []string{"listings"},
		Errors:      errs,
	}, h.PostSearchListings)
}
