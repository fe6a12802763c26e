package add_to_cart

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

// Request is the application-level add-to-cart request.
type Request struct {
	SessionKey string
	ProductID  string
	Quantity   int
}

// Interactor appends or increments a cart line. The store itself makes no
// network calls; persistence is the backend's concern at checkout.
type Interactor struct {
	Carts *stores.CartStore
}

// NewInteractor constructs the interactor.
func NewInteractor(carts *stores.CartStore) *Interactor {
	return &Interactor{Carts: carts}
}

// Execute adds the product. Quantities below one are rejected with
// domain.ErrInvalidQuantity.
func (it *Interactor) Execute(_ context.Context, req Request) error {
	return it.Carts.Add(req.SessionKey, req.ProductID, req.Quantity)
}
