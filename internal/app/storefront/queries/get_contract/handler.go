package get_contract

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/pkg/htmltext"
)

// excerptLen bounds the derived plain-text excerpt shown in listings and
// meta descriptions.
const excerptLen = 160

// Handler serves legal pages by slug.
type Handler struct {
	gateway contracts.CommerceGateway
}

func NewHandler(gw contracts.CommerceGateway) *Handler {
	return &Handler{gateway: gw}
}

// Execute returns the contract with a plain-text excerpt derived from its
// HTML body. A missing slug propagates domain.ErrContractNotFound.
func (h *Handler) Execute(ctx context.Context, slug string) (*dto.ContractDTO, error) {
	contract, err := h.gateway.GetContract(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &dto.ContractDTO{
		Slug:    contract.Slug,
		Name:    contract.Name,
		HTML:    contract.HTML,
		Excerpt: htmltext.Excerpt(contract.HTML, excerptLen),
	}, nil
}
