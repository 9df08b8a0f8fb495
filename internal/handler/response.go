package handler

import "github.com/sixsevendeals/affiliate-api/internal/domain"

type ProductsResponse struct {
	Success    bool              `json:"success"`
	Data       []domain.Product  `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Source     string            `json:"source"`
}

type CategoriesResponse struct {
	Success bool              `json:"success"`
	Data    []domain.Category `json:"data"`
}

type StatsResponse struct {
	Success bool                `json:"success"`
	Data    domain.CatalogStats `json:"data"`
}

type MetaResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}
