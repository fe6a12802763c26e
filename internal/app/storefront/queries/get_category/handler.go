package get_category

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
)

// DefaultPageSize is the product count per category page.
const DefaultPageSize = 12

// Handler assembles one page of a category: detail and product list are
// fetched concurrently, then the full list is paginated in memory (the
// upstream returns the whole category; catalog sizes are small).
type Handler struct {
	gateway  contracts.CommerceGateway
	pageSize int
}

func NewHandler(gw contracts.CommerceGateway, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Handler{gateway: gw, pageSize: pageSize}
}

// Execute returns the requested page. An out-of-range page clamps into
// [1, totalPages]. A missing category propagates domain.ErrCategoryNotFound.
func (h *Handler) Execute(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error) {
	var (
		category dto.CategoryDTO
		products []dto.CatalogItemDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat, err := h.gateway.GetCategory(gctx, slug)
		if err != nil {
			return err
		}
		category = dto.FromCategory(*cat)
		return nil
	})
	g.Go(func() error {
		items, err := h.gateway.ListCategoryProducts(gctx, slug)
		if err != nil {
			return err
		}
		products = dto.FromCatalogItems(items)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paged := paginate(products, page, h.pageSize)
	paged.Category = category
	return paged, nil
}

// paginate slices items into the requested page, clamping page into range.
// Page 1 of an empty list is valid and empty.
func paginate(items []dto.CatalogItemDTO, page, perPage int) *dto.CategoryPageDTO {
	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &dto.CategoryPageDTO{
		Products:   items[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
