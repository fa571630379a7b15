package ebay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
	ebayMocks "github.com/auctionsniper/ebay-relay/internal/ebay/mocks"
)

func page(next bool, ids ...string) *ebay.SearchResult {
	r := &ebay.SearchResult{Total: 1000}
	for _, id := range ids {
		r.Items = append(r.Items, ebay.ItemSummary{ItemID: id, Title: "card " + id})
	}
	if next {
		r.Next = "https://api.ebay.com/buy/browse/v1/item_summary/search?offset=next"
	}
	return r
}

func atOffset(offset int) any {
	return mock.MatchedBy(func(c ebay.SearchCriteria) bool { return c.Offset == offset })
}

func TestPaginator_Paginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		criteria    ebay.SearchCriteria
		maxPages    int
		setupMocks  func(*ebayMocks.MockEbayClient)
		wantItems   int
		wantPages   int
		wantDups    int
		wantStopped string
		wantErr     bool
	}{
		{
			name:     "stops when eBay has no next page",
			criteria: ebay.SearchCriteria{FreeTextQuery: "charizard", Limit: 2},
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, atOffset(0)).Return(page(true, "a", "b"), nil).Once()
				ec.EXPECT().Search(mock.Anything, atOffset(2)).Return(page(false, "c"), nil).Once()
			},
			wantItems:   3,
			wantPages:   2,
			wantStopped: ebay.StopNoMoreResults,
		},
		{
			name:     "stops on empty page",
			criteria: ebay.SearchCriteria{Limit: 2},
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, atOffset(0)).Return(page(true), nil).Once()
			},
			wantPages:   1,
			wantStopped: ebay.StopNoMoreResults,
		},
		{
			name:     "stops at max pages",
			criteria: ebay.SearchCriteria{Limit: 2},
			maxPages: 2,
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, atOffset(0)).Return(page(true, "a", "b"), nil).Once()
				ec.EXPECT().Search(mock.Anything, atOffset(2)).Return(page(true, "c", "d"), nil).Once()
			},
			wantItems:   4,
			wantPages:   2,
			wantStopped: ebay.StopMaxPages,
		},
		{
			name:     "skips items repeated across shifted pages",
			criteria: ebay.SearchCriteria{Limit: 2},
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, atOffset(0)).Return(page(true, "a", "b"), nil).Once()
				ec.EXPECT().Search(mock.Anything, atOffset(2)).Return(page(false, "b", "c"), nil).Once()
			},
			wantItems:   3,
			wantPages:   2,
			wantDups:    1,
			wantStopped: ebay.StopNoMoreResults,
		},
		{
			name:     "stops before the offset ceiling",
			criteria: ebay.SearchCriteria{Limit: 200, Offset: 9800},
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, atOffset(9800)).Return(page(true, "a"), nil).Once()
			},
			wantItems:   1,
			wantPages:   1,
			wantStopped: ebay.StopMaxOffset,
		},
		{
			name:     "search error",
			criteria: ebay.SearchCriteria{Limit: 2},
			setupMocks: func(ec *ebayMocks.MockEbayClient) {
				ec.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, errors.New("api error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ec := ebayMocks.NewMockEbayClient(t)
			tt.setupMocks(ec)

			p := ebay.NewPaginator(ec, ebay.WithMaxPages(tt.maxPages))
			result, err := p.Paginate(context.Background(), tt.criteria)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, tt.wantPages, result.PagesUsed)
			assert.Equal(t, tt.wantDups, result.Duplicates)
			assert.Equal(t, tt.wantStopped, result.StoppedAt)
		})
	}
}

func TestPaginator_DefaultLimit(t *testing.T) {
	t.Parallel()

	ec := ebayMocks.NewMockEbayClient(t)
	ec.EXPECT().Search(mock.Anything, mock.MatchedBy(func(c ebay.SearchCriteria) bool {
		return c.Limit == ebay.DefaultLimit
	})).Return(page(false, "a"), nil).Once()

	result, err := ebay.NewPaginator(ec).Paginate(context.Background(), ebay.SearchCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.PagesUsed)
}
