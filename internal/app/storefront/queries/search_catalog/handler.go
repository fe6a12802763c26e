package search_catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain/services"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

// fetchConcurrency caps the category fan-out.
const fetchConcurrency = 8

// Handler runs catalog search: it loads a snapshot by fetching every
// category's product list and flattening, then filters and ranks with the
// matcher. Failures degrade, they never surface as errors: a category that
// fails to load contributes nothing, and a total snapshot failure falls
// back to the caller-provided homepage items.
type Handler struct {
	gateway contracts.CommerceGateway
	matcher *services.SearchMatcher
	logger  logging.Logger
}

func NewHandler(gw contracts.CommerceGateway, matcher *services.SearchMatcher, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Handler{gateway: gw, matcher: matcher, logger: logger}
}

// Execute searches the catalog for query. An empty query returns the
// distinct "no query yet" result. fallback is the homepage snapshot used
// when the full catalog cannot be loaded.
func (h *Handler) Execute(ctx context.Context, query string, fallback []domain.CatalogItem) *dto.SearchResultDTO {
	result := &dto.SearchResultDTO{Query: query, Items: []dto.CatalogItemDTO{}}

	// "No query yet" is a distinct state from "searched, found nothing".
	if isBlank(query) {
		result.NoQuery = true
		return result
	}

	snapshot, degraded := h.loadSnapshot(ctx)
	if degraded {
		snapshot = fallback
	}
	result.Degraded = degraded
	result.Items = dto.FromCatalogItems(h.matcher.Match(query, snapshot))
	return result
}

// loadSnapshot flattens every category's products, tagging each item with
// its category. Per-category failures are tolerated; degraded is true only
// when no category data could be loaded at all.
func (h *Handler) loadSnapshot(ctx context.Context) ([]domain.CatalogItem, bool) {
	categories, err := h.gateway.ListCategories(ctx)
	if err != nil {
		h.logger.Warn("search snapshot: category list failed", map[string]interface{}{"error": err.Error()})
		return nil, true
	}
	if len(categories) == 0 {
		return nil, true
	}

	var (
		mu     sync.Mutex
		items  []domain.CatalogItem
		failed int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, cat := range categories {
		g.Go(func() error {
			products, err := h.gateway.ListCategoryProducts(gctx, cat.Slug)
			if err != nil {
				h.logger.Warn("search snapshot: category products failed", map[string]interface{}{
					"category": cat.Slug,
					"error":    err.Error(),
				})
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			for i := range products {
				products[i].CategoryName = cat.Name
				products[i].CategorySlug = cat.Slug
			}
			mu.Lock()
			items = append(items, products...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if failed == len(categories) {
		return nil, true
	}
	return items, false
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
