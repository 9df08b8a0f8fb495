package service

import (
	"context"
	"log"
	"time"

	"github.com/sixsevendeals/affiliate-api/internal/cache"
	"github.com/sixsevendeals/affiliate-api/internal/catalog"
	"github.com/sixsevendeals/affiliate-api/internal/domain"
	"github.com/sixsevendeals/affiliate-api/internal/pipeline"
)

// Fetcher supplies raw product records from the live website.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.RawProduct, error)
}

// Service builds the canonical catalog for each request: one live
// fetch attempt (when enabled), fallback to the static list on any
// failure, then normalization and the requested view.
type Service struct {
	fetcher  Fetcher
	cache    *cache.Cache
	fallback []domain.RawProduct
}

// New wires the service. fetcher may be nil (scraping disabled) and
// catalogCache may be nil (caching disabled); both degrade to serving
// the static fallback pipeline directly.
func New(fetcher Fetcher, catalogCache *cache.Cache) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    catalogCache,
		fallback: catalog.Fallback(),
	}
}

// Catalog returns the normalized product set and the source tag it was
// built from.
func (s *Service) Catalog(ctx context.Context) ([]domain.Product, string) {
	if s.cache != nil {
		entry, found, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("[service] cache get error: %v", err)
		} else if found {
			return entry.Products, entry.Source
		}
	}

	products, source := s.buildCatalog(ctx)

	// Only live results are worth caching; the fallback is already free.
	if s.cache != nil && source == domain.SourceLive {
		if err := s.cache.Set(ctx, cache.Entry{Source: source, Products: products}); err != nil {
			log.Printf("[service] cache set error: %v", err)
		}
	}
	return products, source
}

func (s *Service) buildCatalog(ctx context.Context) ([]domain.Product, string) {
	if s.fetcher != nil {
		raws, err := s.fetcher.Fetch(ctx)
		if err == nil {
			return pipeline.NormalizeAll(raws), domain.SourceLive
		}
		log.Printf("[service] live fetch failed, using fallback: %v", err)
	}
	return pipeline.NormalizeAll(s.fallback), domain.SourceFallback
}

// Products returns one page of the catalog with pagination metadata.
func (s *Service) Products(ctx context.Context, page, limit int) ([]domain.Product, domain.Pagination, string) {
	products, source := s.Catalog(ctx)
	pageItems, pagination := pipeline.Paginate(products, page, limit)
	return pageItems, pagination, source
}

// Categories returns the enriched category view.
func (s *Service) Categories(ctx context.Context) []domain.Category {
	products, _ := s.Catalog(ctx)
	return pipeline.Categories(products)
}

// Stats returns catalog-wide statistics computed fresh for this call.
func (s *Service) Stats(ctx context.Context) domain.CatalogStats {
	products, _ := s.Catalog(ctx)
	return pipeline.Aggregate(products, time.Now())
}
