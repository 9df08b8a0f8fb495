package pipeline

import (
	"testing"
	"time"

	"github.com/sixsevendeals/affiliate-api/internal/domain"
)

func statsFixture() []domain.Product {
	return []domain.Product{
		{
			Title:       "Camera",
			Category:    "Cameras",
			Rating:      4.6,
			ReviewCount: 1200,
			Status:      domain.StatusActive,
			Price:       domain.Price{Original: 685, Discounted: 633.49, DiscountPercentage: 8, Savings: 51.51},
		},
		{
			Title:       "Earbuds",
			Category:    "Audio",
			Rating:      4.5,
			ReviewCount: 3200,
			Status:      domain.StatusActive,
			Price:       domain.Price{Original: 39.99, Discounted: 26.99, DiscountPercentage: 33, Savings: 13},
		},
		{
			Title:       "Headphones",
			Category:    "Audio",
			Rating:      4.8,
			ReviewCount: 6300,
			Status:      domain.StatusActive,
			Price:       domain.Price{Original: 119.95, Discounted: 85.99, DiscountPercentage: 28, Savings: 33.96},
		},
	}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC)
	stats := Aggregate(statsFixture(), now)

	if stats.TotalProducts != 3 || stats.ActiveProducts != 3 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.CategoriesCount != 2 {
		t.Errorf("expected 2 categories, got %d", stats.CategoriesCount)
	}
	if stats.LastSync != "2026-08-27 12:30:00" {
		t.Errorf("unexpected last_sync %q", stats.LastSync)
	}

	// (633.49 + 26.99 + 85.99) / 3
	if stats.AveragePrice != 248.82 {
		t.Errorf("expected average price 248.82, got %f", stats.AveragePrice)
	}
	// (8 + 33 + 28) / 3
	if stats.AverageDiscount != 23 {
		t.Errorf("expected average discount 23, got %f", stats.AverageDiscount)
	}

	if stats.Performance.TotalReviews != 10700 {
		t.Errorf("expected 10700 reviews, got %d", stats.Performance.TotalReviews)
	}
	if stats.Performance.AverageRating != 4.63 {
		t.Errorf("expected average rating 4.63, got %f", stats.Performance.AverageRating)
	}
	if stats.Performance.TotalSavings != 98.47 {
		t.Errorf("expected total savings 98.47, got %f", stats.Performance.TotalSavings)
	}

	// Audio has 2 products, Cameras 1.
	if len(stats.TopCategories) != 2 || stats.TopCategories[0].Name != "Audio" || stats.TopCategories[0].Count != 2 {
		t.Errorf("unexpected top categories: %+v", stats.TopCategories)
	}

	if stats.BestDiscount == nil || stats.BestDiscount.Product != "Earbuds" {
		t.Errorf("expected Earbuds as best discount, got %+v", stats.BestDiscount)
	}
	if stats.BestDiscount.Savings != 13 {
		t.Errorf("expected best discount savings 13, got %f", stats.BestDiscount.Savings)
	}
	if stats.BestRating == nil || stats.BestRating.Product != "Headphones" {
		t.Errorf("expected Headphones as best rating, got %+v", stats.BestRating)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, time.Now())

	if stats.TotalProducts != 0 || stats.ActiveProducts != 0 || stats.CategoriesCount != 0 {
		t.Errorf("expected zero counts, got %+v", stats)
	}
	if stats.AveragePrice != 0 || stats.AverageDiscount != 0 {
		t.Errorf("expected zero averages, got %+v", stats)
	}
	if len(stats.TopCategories) != 0 {
		t.Errorf("expected no top categories, got %+v", stats.TopCategories)
	}
	if stats.BestDiscount != nil || stats.BestRating != nil {
		t.Error("expected no best picks for empty catalog")
	}
	if stats.LastSync == "" {
		t.Error("last_sync should still be set")
	}
}

func TestTopCategoriesTieBreak(t *testing.T) {
	products := []domain.Product{
		{Category: "Audio", Status: domain.StatusActive},
		{Category: "Cameras", Status: domain.StatusActive},
	}
	stats := Aggregate(products, time.Now())

	// Equal counts keep first-seen order.
	if stats.TopCategories[0].Name != "Audio" || stats.TopCategories[1].Name != "Cameras" {
		t.Errorf("tie break broke first-seen order: %+v", stats.TopCategories)
	}
}

func TestBestByFirstMaxWins(t *testing.T) {
	products := []domain.Product{
		{Title: "First", Rating: 4.8},
		{Title: "Second", Rating: 4.8},
		{Title: "Third", Rating: 4.2},
	}
	best := BestByRating(products)
	if best == nil || best.Title != "First" {
		t.Errorf("expected First on tie, got %+v", best)
	}

	if BestByRating(nil) != nil {
		t.Error("expected nil for empty input")
	}
}

func TestBestByDiscountGuardsZeroPrice(t *testing.T) {
	products := []domain.Product{
		{Title: "Zero", Price: domain.Price{Original: 0, Discounted: 0}},
		{Title: "Deal", Price: domain.Price{Original: 100, Discounted: 50}},
	}
	best := BestByDiscount(products)
	if best == nil || best.Title != "Deal" {
		t.Errorf("expected Deal, got %+v", best)
	}
}
