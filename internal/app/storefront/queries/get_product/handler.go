package get_product

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
)

// Handler serves the product detail page by slug.
type Handler struct {
	gateway contracts.CommerceGateway
}

func NewHandler(gw contracts.CommerceGateway) *Handler {
	return &Handler{gateway: gw}
}

// Execute returns the product page payload. A missing slug propagates
// domain.ErrProductNotFound for the dedicated not-found view.
func (h *Handler) Execute(ctx context.Context, slug string) (*dto.ProductPageDTO, error) {
	detail, err := h.gateway.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &dto.ProductPageDTO{
		Product:     dto.FromCatalogItem(detail.Item),
		Description: detail.Description,
		Category:    dto.FromCategory(detail.Category),
	}, nil
}
