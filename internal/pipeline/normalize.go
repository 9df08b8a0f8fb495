package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

// Defaults applied when a raw field is missing or unparseable.
const (
	DefaultRating      = 4.5
	DefaultReviewCount = 1000
	DefaultBrand       = "Unknown"
	DefaultCategory    = "General"
	UnknownASIN        = "UNKNOWN-ASIN"
)

// Ordered, first match wins.
var knownBrands = []string{
	"Canon", "TOCOL", "Samsung", "ZZU", "Xiaomi",
	"Redmi", "Soundcore", "Anker", "HS190",
}

var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)ASIN=([A-Z0-9]{10})`),
}

// Normalize converts one raw record into a canonical Product. Every
// parse step has a documented default, so malformed input degrades a
// single field and never fails the pipeline.
func Normalize(raw domain.RawProduct, index int) domain.Product {
	original := parsePrice(raw.FullPrice())
	discounted := parsePrice(raw.DiscountedPrice())
	discountPct := discountPercentage(original, discounted)
	rating := parseRating(raw.Rating)
	reviews := parseReviewCount(raw.ReviewCountRaw())
	title := raw.ProductTitle()

	return domain.Product{
		ID:          fmt.Sprintf("SIX7-%d", index+1),
		ASIN:        ExtractASIN(raw.AffiliateLink()),
		Title:       title,
		Description: raw.Description,
		Price: domain.Price{
			Original:           original,
			Discounted:         discounted,
			Currency:           domain.CurrencyAUD,
			DiscountPercentage: discountPct,
			Savings:            savings(original, discounted),
		},
		Category:      inferCategory(raw),
		Brand:         InferBrand(title),
		Rating:        rating,
		ReviewCount:   reviews,
		Image:         raw.ImageRef(),
		AffiliateLink: raw.AffiliateLink(),
		TrendingScore: trendingScore(rating, reviews),
		DealScore:     dealScore(discountPct, rating),
		Status:        domain.StatusActive,
		Features:      raw.Features,
		Shipping:      raw.Shipping,
		Warranty:      raw.Warranty,
	}
}

// NormalizeAll maps a raw sequence into canonical products, assigning
// positional IDs.
func NormalizeAll(raws []domain.RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for i, raw := range raws {
		products = append(products, Normalize(raw, i))
	}
	return products
}

// parsePrice strips currency symbols and thousands separators before
// parsing; unparseable input yields 0.
func parsePrice(s domain.Scalar) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s.String()))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

func parseRating(s domain.Scalar) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.String()), 64)
	if err != nil {
		return DefaultRating
	}
	return v
}

// parseReviewCount accepts counts formatted like "1,200+".
func parseReviewCount(s domain.Scalar) int {
	cleaned := strings.NewReplacer("+", "", ",", "").Replace(strings.TrimSpace(s.String()))
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return DefaultReviewCount
	}
	if v < 0 {
		return 0
	}
	return v
}

func discountPercentage(original, discounted float64) int {
	if original > 0 && discounted < original {
		return int(math.Round((original - discounted) / original * 100))
	}
	return 0
}

// savings is clamped at zero: a listing priced above its original price
// reports no savings rather than a negative amount.
func savings(original, discounted float64) float64 {
	s := round2(original - discounted)
	if s < 0 {
		return 0
	}
	return s
}

// InferBrand matches the title against the known brand tokens,
// case-insensitively, first match wins.
func InferBrand(title string) string {
	lower := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return DefaultBrand
}

// inferCategory derives the category from the badge by stripping the
// " Pick" and "ing" decorations ("Editor's Pick" -> "Editor's",
// "Trending" -> "Trend"). Records without a badge keep their explicit
// category field when present.
func inferCategory(raw domain.RawProduct) string {
	if raw.Badge != "" {
		cat := strings.ReplaceAll(raw.Badge, " Pick", "")
		return strings.ReplaceAll(cat, "ing", "")
	}
	if raw.Category != "" {
		return raw.Category
	}
	return DefaultCategory
}

// ExtractASIN pulls the 10-character marketplace code out of an
// affiliate URL.
func ExtractASIN(url string) string {
	for _, pattern := range asinPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return UnknownASIN
}

func trendingScore(rating float64, reviewCount int) int {
	return clampScore(rating*20 + float64(reviewCount)/100)
}

func dealScore(discountPct int, rating float64) int {
	return clampScore(float64(discountPct)*2 + rating*10)
}

func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
