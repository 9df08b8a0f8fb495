package domain

const (
	StatusActive = "active"
	CurrencyAUD  = "AUD"
)

// Source tags surfaced in the response envelope.
const (
	SourceLive     = "SixSevenDeals.com Live"
	SourceFallback = "Hardcoded SixSevenDeals Products"
)

// Price is the derived price block of a canonical product.
type Price struct {
	Original           float64 `json:"original"`
	Discounted         float64 `json:"discounted"`
	Currency           string  `json:"currency"`
	DiscountPercentage int     `json:"discount_percentage"`
	Savings            float64 `json:"savings"`
}

// Product is the canonical catalog entry. It is computed fresh from a
// RawProduct on every request and never mutated after construction.
type Product struct {
	ID            string   `json:"id"`
	ASIN          string   `json:"asin"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         Price    `json:"price"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Image         string   `json:"image"`
	AffiliateLink string   `json:"affiliate_link"`
	TrendingScore int      `json:"trending_score"`
	DealScore     int      `json:"deal_score"`
	Status        string   `json:"status"`
	Features      []string `json:"features,omitempty"`
	Shipping      string   `json:"shipping,omitempty"`
	Warranty      string   `json:"warranty,omitempty"`
}

// Pagination describes the slice of the catalog a response covers.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasMore bool `json:"has_more"`
}

// Category is the enriched category view with a display icon.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}
