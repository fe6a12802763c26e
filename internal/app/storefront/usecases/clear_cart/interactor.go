package clear_cart

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

// Interactor empties a session's cart.
type Interactor struct {
	Carts *stores.CartStore
}

// NewInteractor constructs the interactor.
func NewInteractor(carts *stores.CartStore) *Interactor {
	return &Interactor{Carts: carts}
}

// Execute clears the cart.
func (it *Interactor) Execute(_ context.Context, sessionKey string) {
	it.Carts.Clear(sessionKey)
}
