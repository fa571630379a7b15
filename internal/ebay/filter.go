package ebay

import (
	"strconv"
	"strings"
)

// DefaultCategoryID is the eBay category for individual Pokémon trading cards.
const DefaultCategoryID = "183454"

// Aspect names used by the card search.
const (
	AspectCardType           = "Card Type"
	AspectGraded             = "Graded"
	AspectProfessionalGrader = "Professional Grader"
	AspectGrade              = "Grade"
	AspectSpeciality         = "Speciality"
)

// Buying options accepted by the Browse API filter.
const (
	BuyingOptionFixedPrice   = "FIXED_PRICE"
	BuyingOptionAuction      = "AUCTION"
	BuyingOptionBestOffer    = "BEST_OFFER"
	BuyingOptionClassifiedAd = "CLASSIFIED_AD"
)

// AspectFilter is a single aspect clause: a name and the values any of which
// an item may match.
type AspectFilter struct {
	Name   string
	Values []string
}

// AspectCriteria holds the caller-controlled aspect constraints.
type AspectCriteria struct {
	GraderNames   []string `json:"graderNames,omitempty"`
	Grades        []string `json:"grades,omitempty"`
	SpecialtyTags []string `json:"specialtyTags,omitempty"`
}

// PriceRange bounds the item price. Either end may be nil.
type PriceRange struct {
	Min *float64 `json:"priceMin,omitempty"`
	Max *float64 `json:"priceMax,omitempty"`
}

// SearchAspects returns the aspect clauses for a card search. The fixed
// item-type and graded-status clauses always come first, followed by the
// caller's grader, grade and speciality clauses in that order.
func SearchAspects(c AspectCriteria) []AspectFilter {
	filters := []AspectFilter{
		{Name: AspectCardType, Values: []string{"Pokémon"}},
		{Name: AspectGraded, Values: []string{"Yes"}},
	}
	filters = appendAspect(filters, AspectProfessionalGrader, c.GraderNames)
	filters = appendAspect(filters, AspectGrade, c.Grades)
	filters = appendAspect(filters, AspectSpeciality, c.SpecialtyTags)
	return filters
}

func appendAspect(filters []AspectFilter, name string, values []string) []AspectFilter {
	if len(values) == 0 {
		return filters
	}
	return append(filters, AspectFilter{Name: name, Values: values})
}

// EncodeAspectFilter renders the Browse API aspect_filter parameter:
//
//	categoryId:<id>,<name1>:{v1|v2},<name2>:{v3}
//
// Clauses keep the order they were given in and clauses without values are
// skipped. A literal "|" inside a value is escaped as "\|".
func EncodeAspectFilter(categoryID string, filters []AspectFilter) string {
	var b strings.Builder
	b.WriteString("categoryId:")
	b.WriteString(categoryID)

	for _, f := range filters {
		if len(f.Values) == 0 {
			continue
		}
		b.WriteByte(',')
		b.WriteString(f.Name)
		b.WriteString(":{")
		for i, v := range f.Values {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(escapeFilterValue(v))
		}
		b.WriteByte('}')
	}

	return b.String()
}

// EncodeStandardFilter renders the Browse API filter parameter for a price
// range and buying options. eBay requires priceCurrency whenever price is
// present, so it is emitted alongside. Returns "" when nothing is set.
func EncodeStandardFilter(price *PriceRange, currency string, buyingOptions []string) string {
	var clauses []string

	if price != nil && (price.Min != nil || price.Max != nil) {
		clauses = append(clauses, "price:["+formatBound(price.Min)+".."+formatBound(price.Max)+"]")
		if currency != "" {
			clauses = append(clauses, "priceCurrency:"+currency)
		}
	}

	if len(buyingOptions) > 0 {
		escaped := make([]string, len(buyingOptions))
		for i, o := range buyingOptions {
			escaped[i] = escapeFilterValue(o)
		}
		clauses = append(clauses, "buyingOptions:{"+strings.Join(escaped, "|")+"}")
	}

	return strings.Join(clauses, ",")
}

// ValidateBuyingOptions rejects options the Browse API does not know.
func ValidateBuyingOptions(options []string) error {
	for _, o := range options {
		switch o {
		case BuyingOptionFixedPrice, BuyingOptionAuction,
			BuyingOptionBestOffer, BuyingOptionClassifiedAd:
		default:
			return &ValidationError{Field: "buyingOptions", Reason: "unknown option " + strconv.Quote(o)}
		}
	}
	return nil
}

// Validate rejects negative bounds and inverted ranges.
func (p *PriceRange) Validate() error {
	if p == nil {
		return nil
	}
	if p.Min != nil && *p.Min < 0 {
		return &ValidationError{Field: "priceMin", Reason: "must not be negative"}
	}
	if p.Max != nil && *p.Max < 0 {
		return &ValidationError{Field: "priceMax", Reason: "must not be negative"}
	}
	if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		return &ValidationError{Field: "priceMin", Reason: "must not exceed priceMax"}
	}
	return nil
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func escapeFilterValue(v string) string {
	return strings.ReplaceAll(v, "|", `\|`)
}
