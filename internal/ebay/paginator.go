package ebay

import (
	"context"
	"fmt"
	"log/slog"
)

const defaultMaxPages = 5

// Reasons a Paginator stopped.
const (
	StopNoMoreResults = "no_more_results"
	StopMaxPages      = "max_pages"
	StopMaxOffset     = "max_offset"
)

// Paginator walks consecutive Browse result pages for one set of criteria.
type Paginator struct {
	client   EbayClient
	log      *slog.Logger
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		if n > 0 {
			p.maxPages = n
		}
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.log = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(client EbayClient, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:   client,
		log:      slog.New(slog.DiscardHandler),
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds the result of a paginated search.
type PaginateResult struct {
	Items     []ItemSummary
	Total     int
	PagesUsed int
	// Duplicates counts items skipped because an earlier page already
	// returned them; offsets shift while listings are added and ended.
	Duplicates int
	StoppedAt  string
}

// Paginate fetches pages starting at criteria.Offset, stopping when eBay has
// no next page, the page budget is spent, or the Browse offset ceiling would
// be exceeded.
func (p *Paginator) Paginate(ctx context.Context, criteria SearchCriteria) (*PaginateResult, error) {
	if criteria.Limit <= 0 {
		criteria.Limit = DefaultLimit
	}

	result := &PaginateResult{}
	seen := make(map[string]struct{})

	for page := range p.maxPages {
		resp, err := p.client.Search(ctx, criteria)
		if err != nil {
			return nil, fmt.Errorf("searching page %d: %w", page, err)
		}

		result.PagesUsed++
		result.Total = resp.Total

		for i := range resp.Items {
			if _, dup := seen[resp.Items[i].ItemID]; dup {
				result.Duplicates++
				continue
			}
			seen[resp.Items[i].ItemID] = struct{}{}
			result.Items = append(result.Items, resp.Items[i])
		}

		p.log.Debug("fetched result page",
			"page", page,
			"offset", criteria.Offset,
			"items", len(resp.Items),
		)

		if len(resp.Items) == 0 || !resp.HasMore() {
			result.StoppedAt = StopNoMoreResults
			return result, nil
		}

		next := criteria.Offset + criteria.Limit
		if next > MaxOffset {
			result.StoppedAt = StopMaxOffset
			return result, nil
		}
		criteria.Offset = next
	}

	result.StoppedAt = StopMaxPages
	return result, nil
}
