package pipeline

import "github.com/sixsevendeals/affiliate-api/internal/domain"

// Paginate slices the catalog for the requested page. An offset past
// the end yields an empty slice, not an error. Pages uses floor
// division with a minimum of 1, so a trailing partial page is not
// counted toward the total.
func Paginate(products []domain.Product, page, limit int) ([]domain.Product, domain.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(products)
	offset := (page - 1) * limit
	slice := []domain.Product{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		slice = products[offset:end]
	}

	pages := total / limit
	if pages < 1 {
		pages = 1
	}

	return slice, domain.Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasMore: offset+limit < total,
	}
}
