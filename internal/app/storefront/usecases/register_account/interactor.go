package register_account

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// Interactor creates an account. Validation failures are caught locally and
// nothing is submitted. Registration success deliberately does not sign the
// user in; the storefront routes them to the sign-in page instead.
type Interactor struct {
	Gateway contracts.CommerceGateway
}

// NewInteractor constructs the interactor.
func NewInteractor(gw contracts.CommerceGateway) *Interactor {
	return &Interactor{Gateway: gw}
}

// Execute validates and submits the registration form.
func (it *Interactor) Execute(ctx context.Context, form domain.RegistrationForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	return it.Gateway.Register(ctx, form)
}
