package pipeline

import (
	"sort"
	"time"

	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

// Aggregate computes catalog-wide statistics over the canonical
// product set. It is a pure function of its input: an empty catalog
// yields zero values and no best picks.
func Aggregate(products []domain.Product, now time.Time) domain.CatalogStats {
	stats := domain.CatalogStats{
		LastSync:      now.Format("2006-01-02 15:04:05"),
		TopCategories: []domain.CategoryCount{},
	}
	if len(products) == 0 {
		return stats
	}

	var priceSum, discountSum, ratingSum, savingsSum float64
	var reviewSum, active int
	counts := make(map[string]int)
	var order []string

	for _, p := range products {
		priceSum += p.Price.Discounted
		discountSum += float64(p.Price.DiscountPercentage)
		ratingSum += p.Rating
		savingsSum += p.Price.Savings
		reviewSum += p.ReviewCount
		if p.Status == domain.StatusActive {
			active++
		}
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	n := float64(len(products))
	stats.TotalProducts = len(products)
	stats.ActiveProducts = active
	stats.CategoriesCount = len(counts)
	stats.AveragePrice = round2(priceSum / n)
	stats.AverageDiscount = round2(discountSum / n)

	top := make([]domain.CategoryCount, 0, len(order))
	for _, name := range order {
		top = append(top, domain.CategoryCount{Name: name, Count: counts[name]})
	}
	// Stable sort keeps first-seen order on equal counts.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	stats.TopCategories = top

	stats.Performance = domain.Performance{
		TotalReviews:  reviewSum,
		AverageRating: round2(ratingSum / n),
		TotalSavings:  round2(savingsSum),
	}

	if best := BestByDiscount(products); best != nil {
		stats.BestDiscount = &domain.BestDiscount{
			Product:            best.Title,
			DiscountPercentage: round2(discountFraction(*best) * 100),
			Savings:            best.Price.Savings,
		}
	}
	if best := BestByRating(products); best != nil {
		stats.BestRating = &domain.BestRating{
			Product: best.Title,
			Rating:  best.Rating,
			Reviews: best.ReviewCount,
		}
	}

	return stats
}

// BestBy returns the product maximizing the given metric, first max
// wins on ties. Nil for an empty catalog.
func BestBy(products []domain.Product, metric func(domain.Product) float64) *domain.Product {
	if len(products) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(products); i++ {
		if metric(products[i]) > metric(products[best]) {
			best = i
		}
	}
	return &products[best]
}

func BestByDiscount(products []domain.Product) *domain.Product {
	return BestBy(products, discountFraction)
}

func BestByRating(products []domain.Product) *domain.Product {
	return BestBy(products, func(p domain.Product) float64 { return p.Rating })
}

func discountFraction(p domain.Product) float64 {
	if p.Price.Original <= 0 {
		return 0
	}
	return (p.Price.Original - p.Price.Discounted) / p.Price.Original
}
