package pipeline

import "github.com/sixsevendeals/affiliate-api/internal/domain"

const allProductsName = "All Products"

var categoryIcons = map[string]string{
	"Cameras":           "📷",
	"Phone Accessories": "📱",
	"Storage":           "💾",
	"Audio":             "🎧",
	"Wearables":         "⌚",
	"Toys":              "🚁",
	allProductsName:     "🎯",
}

const defaultIcon = "🛍️"

// Categories builds the enriched category view: one row per distinct
// category in first-seen order, followed by an "All Products" row with
// the catalog total.
func Categories(products []domain.Product) []domain.Category {
	counts := make(map[string]int)
	var order []string
	for _, p := range products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	cats := make([]domain.Category, 0, len(order)+1)
	for i, name := range order {
		cats = append(cats, domain.Category{
			ID:    i + 1,
			Name:  name,
			Count: counts[name],
			Icon:  iconFor(name),
		})
	}
	cats = append(cats, domain.Category{
		ID:    len(order) + 1,
		Name:  allProductsName,
		Count: len(products),
		Icon:  iconFor(allProductsName),
	})
	return cats
}

func iconFor(name string) string {
	if icon, ok := categoryIcons[name]; ok {
		return icon
	}
	return defaultIcon
}
