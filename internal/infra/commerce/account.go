package commerce

import (
	"context"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

type orderJSON struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	StatusText string `json:"statusText"`
	Price      string `json:"price"`
	Date       string `json:"date"`
}

// ListOrders fetches the order history of the token's account.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var rows []orderJSON
	if err := c.getJSON(ctx, "/orders", token, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Order{
			ID:         row.ID,
			OrderID:    row.OrderID,
			StatusText: row.StatusText,
			Price:      row.Price,
			Date:       row.Date,
		})
	}
	return out, nil
}

type loginRequestJSON struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponseJSON struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"user"`
}

// Login exchanges credentials for a profile and a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	var resp loginResponseJSON
	req := loginRequestJSON{Email: email, Password: password}
	if err := c.postJSON(ctx, "/auth/login", "", req, &resp); err != nil {
		return nil, "", err
	}
	user := domain.User{
		ID:        resp.User.ID,
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
		Email:     resp.User.Email,
	}
	return &user, resp.Token, nil
}

type registerRequestJSON struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	NationalID string `json:"nationalId"`
	BirthDate  string `json:"birthDate"`
}

// Register creates an account. It never yields a token; the caller signs in
// separately afterwards.
func (c *Client) Register(ctx context.Context, form domain.RegistrationForm) error {
	req := registerRequestJSON{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Email:      form.Email,
		Password:   form.Password,
		NationalID: form.NationalID,
		BirthDate:  form.BirthDate,
	}
	return c.postJSON(ctx, "/auth/register", "", req, nil)
}

// Logout invalidates the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.postJSON(ctx, "/auth/logout", token, nil, nil)
}

type orderLineJSON struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequestJSON struct {
	Items []orderLineJSON `json:"items"`
}

type createOrderResponseJSON struct {
	OrderID string `json:"orderId"`
}

// CreateOrder submits the cart lines as a new order and returns its id.
func (c *Client) CreateOrder(ctx context.Context, token string, lines []domain.CartLine) (string, error) {
	req := createOrderRequestJSON{Items: make([]orderLineJSON, 0, len(lines))}
	for _, line := range lines {
		req.Items = append(req.Items, orderLineJSON{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	var resp createOrderResponseJSON
	if err := c.postJSON(ctx, "/orders", token, req, &resp); err != nil {
		return "", err
	}
	return resp.OrderID, nil
}
