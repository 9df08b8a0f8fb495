package domain

// CategoryCount is one entry of the top-categories ranking.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Performance groups the review/rating/savings aggregates.
type Performance struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	TotalSavings  float64 `json:"total_savings"`
}

// BestDiscount names the product with the largest discount fraction.
type BestDiscount struct {
	Product            string  `json:"product"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Savings            float64 `json:"savings"`
}

// BestRating names the highest-rated product.
type BestRating struct {
	Product string  `json:"product"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

// CatalogStats is the aggregate view over the whole catalog, computed
// fresh per request. An empty catalog yields zero values and no best
// picks rather than an error.
type CatalogStats struct {
	TotalProducts   int             `json:"total_products"`
	ActiveProducts  int             `json:"active_products"`
	CategoriesCount int             `json:"categories_count"`
	AveragePrice    float64         `json:"average_price"`
	AverageDiscount float64         `json:"average_discount"`
	LastSync        string          `json:"last_sync"`
	TopCategories   []CategoryCount `json:"top_categories"`
	Performance     Performance     `json:"performance"`
	BestDiscount    *BestDiscount   `json:"best_discount,omitempty"`
	BestRating      *BestRating     `json:"best_rating,omitempty"`
}
