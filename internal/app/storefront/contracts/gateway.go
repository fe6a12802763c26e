// Package contracts declares the interfaces the application layer depends
// on, keeping queries and usecases free of infrastructure imports.
package contracts

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// CommerceGateway is the upstream commerce API as the storefront consumes
// it. The backend is the source of truth; everything here is read-through
// or fire-and-record.
type CommerceGateway interface {
	// Catalog
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListCategoryProducts(ctx context.Context, slug string) ([]domain.CatalogItem, error)
	HomepageItems(ctx context.Context, limit int) ([]domain.CatalogItem, error)
	GetProduct(ctx context.Context, slug string) (*domain.ProductDetail, error)

	// Account
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Register(ctx context.Context, form domain.RegistrationForm) error
	Logout(ctx context.Context, token string) error
	CreateOrder(ctx context.Context, token string, lines []domain.CartLine) (string, error)

	// Content
	CreateMessage(ctx context.Context, msg domain.Message) (string, error)
	GetContract(ctx context.Context, slug string) (*domain.Contract, error)
	WebsiteInfo(ctx context.Context) (*domain.WebsiteInfo, error)
}
