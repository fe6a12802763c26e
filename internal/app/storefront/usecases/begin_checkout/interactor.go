package begin_checkout

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
	"github.com/maxiipins/storefront-service/internal/pkg/clock"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

// Interactor drafts a bank-transfer order from the session's cart. The cart
// is cleared only after the backend accepts the order.
type Interactor struct {
	Carts    *stores.CartStore
	Sessions *stores.SessionStore
	Gateway  contracts.CommerceGateway
	Clock    clock.Clock
	Logger   logging.Logger
}

// NewInteractor constructs the interactor.
func NewInteractor(carts *stores.CartStore, sessions *stores.SessionStore, gw contracts.CommerceGateway, clk clock.Clock, logger logging.Logger) *Interactor {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Interactor{Carts: carts, Sessions: sessions, Gateway: gw, Clock: clk, Logger: logger}
}

// Execute submits the order and returns the backend order id.
func (it *Interactor) Execute(ctx context.Context, sessionKey string) (string, error) {
	sess := it.Sessions.Get(sessionKey)
	if !sess.IsAuthenticated {
		return "", domain.ErrNotAuthenticated
	}

	lines := it.Carts.Lines(sessionKey)
	if len(lines) == 0 {
		return "", domain.ErrCartEmpty
	}

	orderID, err := it.Gateway.CreateOrder(ctx, sess.Token, lines)
	if err != nil {
		return "", err
	}

	it.Carts.Clear(sessionKey)
	it.Logger.Info("checkout order created", map[string]interface{}{
		"order_id":   orderID,
		"line_count": len(lines),
		"at":         it.Clock.Now(),
	})
	return orderID, nil
}
