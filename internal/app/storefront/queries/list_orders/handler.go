package list_orders

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

// Handler serves the account order history.
type Handler struct {
	gateway  contracts.CommerceGateway
	sessions *stores.SessionStore
}

func NewHandler(gw contracts.CommerceGateway, sessions *stores.SessionStore) *Handler {
	return &Handler{gateway: gw, sessions: sessions}
}

// Execute lists the session's orders with display colors attached. An
// anonymous session gets domain.ErrNotAuthenticated.
func (h *Handler) Execute(ctx context.Context, sessionKey string) ([]dto.OrderDTO, error) {
	sess := h.sessions.Get(sessionKey)
	if !sess.IsAuthenticated {
		return nil, domain.ErrNotAuthenticated
	}

	orders, err := h.gateway.ListOrders(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o))
	}
	return out, nil
}
