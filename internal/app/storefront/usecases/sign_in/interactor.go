package sign_in

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
)

// Request is the application-level login request.
type Request struct {
	SessionKey string
	Email      string
	Password   string
}

// Interactor drives the session through the login state machine. Backend
// error strings surface verbatim; a failure restores the prior session
// state, so a signed-in user failing a re-login stays signed in.
type Interactor struct {
	Sessions *stores.SessionStore
	Gateway  contracts.CommerceGateway
}

// NewInteractor constructs the interactor.
func NewInteractor(sessions *stores.SessionStore, gw contracts.CommerceGateway) *Interactor {
	return &Interactor{Sessions: sessions, Gateway: gw}
}

// Execute performs the login. No retry, no backoff.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := it.Sessions.BeginLogin(req.SessionKey); err != nil {
		return err
	}

	user, token, err := it.Gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		it.Sessions.FailLogin(req.SessionKey)
		return err
	}

	it.Sessions.CompleteLogin(req.SessionKey, *user, token)
	return nil
}
