package update_cart_line

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

// Request is the application-level cart line update.
type Request struct {
	SessionKey string
	ProductID  string
	Quantity   int
}

// Interactor sets a cart line's quantity. A quantity of zero or below
// removes the line, which is also how explicit removal is expressed.
type Interactor struct {
	Carts *stores.CartStore
}

// NewInteractor constructs the interactor.
func NewInteractor(carts *stores.CartStore) *Interactor {
	return &Interactor{Carts: carts}
}

// Execute applies the update.
func (it *Interactor) Execute(_ context.Context, req Request) {
	it.Carts.Update(req.SessionKey, req.ProductID, req.Quantity)
}

// Remove deletes the line entirely.
func (it *Interactor) Remove(_ context.Context, sessionKey, productID string) {
	it.Carts.Remove(sessionKey, productID)
}
