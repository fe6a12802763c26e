package sign_out

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

// Interactor signs the session out: the backend token is revoked
// best-effort, then local state drops to anonymous and the cart empties.
type Interactor struct {
	Sessions *stores.SessionStore
	Carts    *stores.CartStore
	Gateway  contracts.CommerceGateway
	Logger   logging.Logger
}

// NewInteractor constructs the interactor.
func NewInteractor(sessions *stores.SessionStore, carts *stores.CartStore, gw contracts.CommerceGateway, logger logging.Logger) *Interactor {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Interactor{Sessions: sessions, Carts: carts, Gateway: gw, Logger: logger}
}

// Execute signs out. A failed backend revocation never blocks the local
// logout.
func (it *Interactor) Execute(ctx context.Context, sessionKey string) {
	sess := it.Sessions.Get(sessionKey)
	if sess.Token != "" {
		if err := it.Gateway.Logout(ctx, sess.Token); err != nil {
			it.Logger.Warn("backend logout failed", map[string]interface{}{"error": err.Error()})
		}
	}
	it.Sessions.Logout(sessionKey)
	it.Carts.Clear(sessionKey)
}
