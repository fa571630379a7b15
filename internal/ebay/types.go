package ebay

// SearchCriteria is the internal form of a card search. It is built per
// request and never persisted.
type SearchCriteria struct {
	FreeTextQuery string
	Limit         int
	Offset        int
	AspectFilters AspectCriteria
	PriceRange    *PriceRange
	BuyingOptions []string
}

// Browse API paging bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 200
	MaxOffset    = 9999
)

// Validate rejects criteria the Browse API would refuse.
func (c SearchCriteria) Validate() error {
	if c.Limit < 0 || c.Limit > MaxLimit {
		return &ValidationError{Field: "limit", Reason: "must be between 0 and 200"}
	}
	if c.Offset < 0 || c.Offset > MaxOffset {
		return &ValidationError{Field: "offset", Reason: "must be between 0 and 9999"}
	}
	if err := c.PriceRange.Validate(); err != nil {
		return err
	}
	return ValidateBuyingOptions(c.BuyingOptions)
}

// SearchResult holds one page of Browse API results.
type SearchResult struct {
	Href   string        `json:"href,omitempty"`
	Items  []ItemSummary `json:"itemSummaries"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Next   string        `json:"next,omitempty"`
	Prev   string        `json:"prev,omitempty"`
}

// HasMore reports whether eBay returned a next page cursor.
func (r *SearchResult) HasMore() bool {
	return r.Next != ""
}

// ItemSummary represents a single item from the eBay Browse API search response.
type ItemSummary struct {
	ItemID          string           `json:"itemId"`
	Title           string           `json:"title"`
	Price           ItemPrice        `json:"price"`
	ItemWebURL      string           `json:"itemWebUrl"`
	ItemHref        string           `json:"itemHref,omitempty"`
	Image           *ItemImage       `json:"image,omitempty"`
	ThumbnailImages []ItemImage      `json:"thumbnailImages,omitempty"`
	Seller          *ItemSeller      `json:"seller,omitempty"`
	Condition       string           `json:"condition,omitempty"`
	ConditionID     string           `json:"conditionId,omitempty"`
	BuyingOptions   []string         `json:"buyingOptions"`
	CurrentBidPrice *ItemPrice       `json:"currentBidPrice,omitempty"`
	BidCount        int              `json:"bidCount,omitempty"`
	ShippingOptions []ShippingOption `json:"shippingOptions,omitempty"`
	ItemLocation    *ItemLocation    `json:"itemLocation,omitempty"`
	ItemEndDate     string           `json:"itemEndDate,omitempty"`
	Categories      []ItemCategory   `json:"categories,omitempty"`

	TopRatedBuyingExperience bool `json:"topRatedBuyingExperience"`
}

// ItemPrice holds eBay price information.
type ItemPrice struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemSeller holds eBay seller information.
type ItemSeller struct {
	Username           string `json:"username"`
	FeedbackScore      int    `json:"feedbackScore"`
	FeedbackPercentage string `json:"feedbackPercentage"`
}

// ShippingOption holds eBay shipping information.
type ShippingOption struct {
	ShippingCostType string     `json:"shippingCostType,omitempty"`
	ShippingCost     *ItemPrice `json:"shippingCost,omitempty"`
}

// ItemLocation holds where the item ships from.
type ItemLocation struct {
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// ItemCategory holds eBay category information.
type ItemCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

// UserInfo is the eBay Identity API user payload.
type UserInfo struct {
	UserID                    string             `json:"userId"`
	Username                  string             `json:"username"`
	AccountType               string             `json:"accountType,omitempty"`
	RegistrationMarketplaceID string             `json:"registrationMarketplaceId,omitempty"`
	IndividualAccount         *IndividualAccount `json:"individualAccount,omitempty"`
	BusinessAccount           *BusinessAccount   `json:"businessAccount,omitempty"`
}

// IndividualAccount holds the personal details of an individual account.
type IndividualAccount struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// BusinessAccount holds the details of a business account.
type BusinessAccount struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// PurchaseHistory is a page of the user's eBay purchase orders.
type PurchaseHistory struct {
	Total  int             `json:"total"`
	Orders []PurchaseOrder `json:"purchaseOrders"`
}

// PurchaseOrder is a single eBay purchase order.
type PurchaseOrder struct {
	PurchaseOrderID           string     `json:"purchaseOrderId"`
	PurchaseOrderStatus       string     `json:"purchaseOrderStatus"`
	PurchaseOrderCreationDate string     `json:"purchaseOrderCreationDate"`
	Total                     *ItemPrice `json:"total,omitempty"`
}
