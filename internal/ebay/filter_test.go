package ebay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionsniper/ebay-relay/internal/ebay"
)

func ptr(v float64) *float64 { return &v }

func TestEncodeAspectFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters []ebay.AspectFilter
		want    string
	}{
		{
			name: "category only",
			want: "categoryId:183454",
		},
		{
			name: "single clause single value",
			filters: []ebay.AspectFilter{
				{Name: "Grade", Values: []string{"10"}},
			},
			want: "categoryId:183454,Grade:{10}",
		},
		{
			name: "multiple values are pipe separated",
			filters: []ebay.AspectFilter{
				{Name: "Professional Grader", Values: []string{"PSA", "BGS", "CGC"}},
			},
			want: "categoryId:183454,Professional Grader:{PSA|BGS|CGC}",
		},
		{
			name: "clause order is preserved",
			filters: []ebay.AspectFilter{
				{Name: "Grade", Values: []string{"9"}},
				{Name: "Card Type", Values: []string{"Pokémon"}},
			},
			want: "categoryId:183454,Grade:{9},Card Type:{Pokémon}",
		},
		{
			name: "empty clause skipped",
			filters: []ebay.AspectFilter{
				{Name: "Grade"},
				{Name: "Graded", Values: []string{"Yes"}},
			},
			want: "categoryId:183454,Graded:{Yes}",
		},
		{
			name: "pipe inside value is escaped",
			filters: []ebay.AspectFilter{
				{Name: "Speciality", Values: []string{"1st Edition|Shadowless", "Holo"}},
			},
			want: `categoryId:183454,Speciality:{1st Edition\|Shadowless|Holo}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ebay.EncodeAspectFilter(ebay.DefaultCategoryID, tt.filters)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ebay.EncodeAspectFilter(ebay.DefaultCategoryID, tt.filters), "re-encoding must be idempotent")
		})
	}
}

func TestSearchAspects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria ebay.AspectCriteria
		want     string
	}{
		{
			name: "fixed clauses only",
			want: "categoryId:183454,Card Type:{Pokémon},Graded:{Yes}",
		},
		{
			name:     "grade only",
			criteria: ebay.AspectCriteria{Grades: []string{"10"}},
			want:     "categoryId:183454,Card Type:{Pokémon},Graded:{Yes},Grade:{10}",
		},
		{
			name: "all caller clauses follow fixed ones",
			criteria: ebay.AspectCriteria{
				SpecialtyTags: []string{"Holo"},
				Grades:        []string{"9", "10"},
				GraderNames:   []string{"PSA"},
			},
			want: "categoryId:183454,Card Type:{Pokémon},Graded:{Yes},Professional Grader:{PSA},Grade:{9|10},Speciality:{Holo}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ebay.EncodeAspectFilter(ebay.DefaultCategoryID, ebay.SearchAspects(tt.criteria))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeStandardFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		price   *ebay.PriceRange
		options []string
		want    string
	}{
		{
			name: "nothing set",
			want: "",
		},
		{
			name:  "empty price range",
			price: &ebay.PriceRange{},
			want:  "",
		},
		{
			name:  "both bounds",
			price: &ebay.PriceRange{Min: ptr(10), Max: ptr(250.5)},
			want:  "price:[10..250.5],priceCurrency:USD",
		},
		{
			name:  "max only",
			price: &ebay.PriceRange{Max: ptr(50)},
			want:  "price:[..50],priceCurrency:USD",
		},
		{
			name:  "min only",
			price: &ebay.PriceRange{Min: ptr(5)},
			want:  "price:[5..],priceCurrency:USD",
		},
		{
			name:    "buying options only",
			options: []string{"FIXED_PRICE", "AUCTION"},
			want:    "buyingOptions:{FIXED_PRICE|AUCTION}",
		},
		{
			name:    "price and buying options",
			price:   &ebay.PriceRange{Max: ptr(100)},
			options: []string{"BEST_OFFER"},
			want:    "price:[..100],priceCurrency:USD,buyingOptions:{BEST_OFFER}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ebay.EncodeStandardFilter(tt.price, "USD", tt.options))
		})
	}
}

func TestPriceRange_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		price     *ebay.PriceRange
		wantField string
	}{
		{name: "nil range"},
		{name: "valid range", price: &ebay.PriceRange{Min: ptr(1), Max: ptr(2)}},
		{name: "equal bounds", price: &ebay.PriceRange{Min: ptr(2), Max: ptr(2)}},
		{name: "negative min", price: &ebay.PriceRange{Min: ptr(-1)}, wantField: "priceMin"},
		{name: "negative max", price: &ebay.PriceRange{Max: ptr(-1)}, wantField: "priceMax"},
		{name: "inverted", price: &ebay.PriceRange{Min: ptr(10), Max: ptr(5)}, wantField: "priceMin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.price.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var vErr *ebay.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateBuyingOptions(t *testing.T) {
	t.Parallel()

	require.NoError(t, ebay.ValidateBuyingOptions(nil))
	require.NoError(t, ebay.ValidateBuyingOptions([]string{"FIXED_PRICE", "AUCTION", "BEST_OFFER", "CLASSIFIED_AD"}))

	err := ebay.ValidateBuyingOptions([]string{"FIXED_PRICE", "RAFFLE"})
	var vErr *ebay.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "buyingOptions", vErr.Field)
	assert.Contains(t, vErr.Reason, `"RAFFLE"`)
}
