package contracts

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// MockGateway is a function-field CommerceGateway for tests. Unset fields
// return zero values so each test wires only what it exercises.
type MockGateway struct {
	ListCategoriesFunc       func(ctx context.Context) ([]domain.Category, error)
	GetCategoryFunc          func(ctx context.Context, slug string) (*domain.Category, error)
	ListCategoryProductsFunc func(ctx context.Context, slug string) ([]domain.CatalogItem, error)
	HomepageItemsFunc        func(ctx context.Context, limit int) ([]domain.CatalogItem, error)
	GetProductFunc           func(ctx context.Context, slug string) (*domain.ProductDetail, error)
	ListOrdersFunc           func(ctx context.Context, token string) ([]domain.Order, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.User, string, error)
	RegisterFunc             func(ctx context.Context, form domain.RegistrationForm) error
	LogoutFunc               func(ctx context.Context, token string) error
	CreateOrderFunc          func(ctx context.Context, token string, lines []domain.CartLine) (string, error)
	CreateMessageFunc        func(ctx context.Context, msg domain.Message) (string, error)
	GetContractFunc          func(ctx context.Context, slug string) (*domain.Contract, error)
	WebsiteInfoFunc          func(ctx context.Context) (*domain.WebsiteInfo, error)
}

var _ CommerceGateway = (*MockGateway)(nil)

func (m *MockGateway) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFunc == nil {
		return nil, nil
	}
	return m.ListCategoriesFunc(ctx)
}

func (m *MockGateway) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	if m.GetCategoryFunc == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return m.GetCategoryFunc(ctx, slug)
}

func (m *MockGateway) ListCategoryProducts(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
	if m.ListCategoryProductsFunc == nil {
		return nil, nil
	}
	return m.ListCategoryProductsFunc(ctx, slug)
}

func (m *MockGateway) HomepageItems(ctx context.Context, limit int) ([]domain.CatalogItem, error) {
	if m.HomepageItemsFunc == nil {
		return nil, nil
	}
	return m.HomepageItemsFunc(ctx, limit)
}

func (m *MockGateway) GetProduct(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	if m.GetProductFunc == nil {
		return nil, domain.ErrProductNotFound
	}
	return m.GetProductFunc(ctx, slug)
}

func (m *MockGateway) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	if m.ListOrdersFunc == nil {
		return nil, nil
	}
	return m.ListOrdersFunc(ctx, token)
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.LoginFunc == nil {
		return nil, "", nil
	}
	return m.LoginFunc(ctx, email, password)
}

func (m *MockGateway) Register(ctx context.Context, form domain.RegistrationForm) error {
	if m.RegisterFunc == nil {
		return nil
	}
	return m.RegisterFunc(ctx, form)
}

func (m *MockGateway) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc == nil {
		return nil
	}
	return m.LogoutFunc(ctx, token)
}

func (m *MockGateway) CreateOrder(ctx context.Context, token string, lines []domain.CartLine) (string, error) {
	if m.CreateOrderFunc == nil {
		return "", nil
	}
	return m.CreateOrderFunc(ctx, token, lines)
}

func (m *MockGateway) CreateMessage(ctx context.Context, msg domain.Message) (string, error) {
	if m.CreateMessageFunc == nil {
		return "", nil
	}
	return m.CreateMessageFunc(ctx, msg)
}

func (m *MockGateway) GetContract(ctx context.Context, slug string) (*domain.Contract, error) {
	if m.GetContractFunc == nil {
		return nil, domain.ErrContractNotFound
	}
	return m.GetContractFunc(ctx, slug)
}

func (m *MockGateway) WebsiteInfo(ctx context.Context) (*domain.WebsiteInfo, error) {
	if m.WebsiteInfoFunc == nil {
		return nil, nil
	}
	return m.WebsiteInfoFunc(ctx)
}
