package submit_message

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// Interactor submits contact, returns and bulk-purchase form messages.
type Interactor struct {
	Gateway contracts.CommerceGateway
}

// NewInteractor constructs the interactor.
func NewInteractor(gw contracts.CommerceGateway) *Interactor {
	return &Interactor{Gateway: gw}
}

// Execute validates the message and posts it, returning the backend id.
func (it *Interactor) Execute(ctx context.Context, msg domain.Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	return it.Gateway.CreateMessage(ctx, msg)
}
