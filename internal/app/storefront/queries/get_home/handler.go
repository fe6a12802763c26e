package get_home

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

// Handler assembles the homepage: best-selling items and categories fetched
// concurrently. Upstream failures degrade to empty sections, never to an
// error page.
type Handler struct {
	gateway contracts.CommerceGateway
	logger  logging.Logger
}

func NewHandler(gw contracts.CommerceGateway, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Handler{gateway: gw, logger: logger}
}

// Execute fetches up to limit homepage items and the category list.
func (h *Handler) Execute(ctx context.Context, limit int) *dto.HomeViewDTO {
	view := &dto.HomeViewDTO{
		Items:      []dto.CatalogItemDTO{},
		Categories: []dto.CategoryDTO{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := h.gateway.HomepageItems(gctx, limit)
		if err != nil {
			h.logger.Warn("homepage items fetch failed", map[string]interface{}{"error": err.Error()})
			return nil
		}
		view.Items = dto.FromCatalogItems(items)
		return nil
	})
	g.Go(func() error {
		cats, err := h.gateway.ListCategories(gctx)
		if err != nil {
			h.logger.Warn("categories fetch failed", map[string]interface{}{"error": err.Error()})
			return nil
		}
		view.Categories = dto.FromCategories(cats)
		return nil
	})
	_ = g.Wait()

	return view
}
