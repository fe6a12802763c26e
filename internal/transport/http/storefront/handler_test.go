package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain/services"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/get_category"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/get_contract"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/get_home"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/list_orders"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/search_catalog"
	"github.com/maxiipins/storefront-service/internal/app/storefront/stores"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/add_to_cart"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/begin_checkout"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/clear_cart"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/register_account"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/sign_in"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/sign_out"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/submit_message"
	"github.com/maxiipins/storefront-service/internal/app/storefront/usecases/update_cart_line"
	"github.com/maxiipins/storefront-service/internal/infra/commerce"
	"github.com/maxiipins/storefront-service/internal/pkg/clock"
)

func newTestRouter(t *testing.T, gw *contracts.MockGateway) http.Handler {
	t.Helper()

	carts := stores.NewCartStore()
	sessions := stores.NewSessionStore()
	website := stores.NewWebsiteStore(gw, nil)
	matcher := services.NewSearchMatcher()
	search := search_catalog.NewHandler(gw, matcher, nil)
	fallback := func(ctx context.Context) []domain.CatalogItem {
		items, err := gw.HomepageItems(ctx, homeItemLimit)
		if err != nil {
			return nil
		}
		return items
	}

	cmd := Commands{
		AddToCart:  add_to_cart.NewInteractor(carts),
		UpdateCart: update_cart_line.NewInteractor(carts),
		ClearCart:  clear_cart.NewInteractor(carts),
		Checkout:   begin_checkout.NewInteractor(carts, sessions, gw, clock.NewFake(time.Now()), nil),
		SignIn:     sign_in.NewInteractor(sessions, gw),
		SignOut:    sign_out.NewInteractor(sessions, carts, gw, nil),
		Register:   register_account.NewInteractor(gw),
		Message:    submit_message.NewInteractor(gw),
	}
	qry := Queries{
		Home:           get_home.NewHandler(gw, nil),
		Category:       get_category.NewHandler(gw, 12),
		Product:        get_product.NewHandler(gw),
		Orders:         list_orders.NewHandler(gw, sessions),
		Contract:       get_contract.NewHandler(gw),
		Search:         search,
		SearchFallback: fallback,
	}
	suggest := NewSuggester(search, fallback, 20*time.Millisecond, clock.NewFake(time.Now()))
	t.Cleanup(suggest.Stop)

	h := NewHandler(cmd, qry, carts, sessions, website, suggest)
	r := chi.NewRouter()
	r.Route("/v1", h.Routes)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, sessionKey string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionKey != "" {
		req.Header.Set(sessionHeader, sessionKey)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetHomeDegradesToEmpty(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Items      []json.RawMessage `json:"items"`
		Categories []json.RawMessage `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.NotNil(t, view.Items)
	assert.NotNil(t, view.Categories)
	assert.Empty(t, view.Items)
}

func TestGetCategoryPagination(t *testing.T) {
	items := make([]domain.CatalogItem, 25)
	for i := range items {
		items[i] = domain.CatalogItem{ID: string(rune('a' + i)), Name: "Ürün", Price: domain.PriceFromInt(10)}
	}
	gw := &contracts.MockGateway{
		GetCategoryFunc: func(ctx context.Context, slug string) (*domain.Category, error) {
			return &domain.Category{Name: "Oyunlar", Slug: slug}, nil
		},
		ListCategoryProductsFunc: func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
			return items, nil
		},
	}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/categories/oyunlar?page=3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Products   []json.RawMessage `json:"products"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
		HasNext    bool              `json:"hasNext"`
		HasPrev    bool              `json:"hasPrev"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 3, view.Page)
	assert.Equal(t, 3, view.TotalPages)
	assert.Len(t, view.Products, 1)
	assert.False(t, view.HasNext)
	assert.True(t, view.HasPrev)
}

func TestGetCategoryNotFound(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/categories/yok", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCategoryRejectsBadPage(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/categories/oyunlar?page=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartFlow(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)
	key := "sess-1"

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", key, cartItemRequest{ProductID: "p1", Quantity: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/cart/items", key, cartItemRequest{ProductID: "p1", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, "3", view.Badge)

	// Quantity zero removes the line.
	rec = doJSON(t, router, http.MethodPut, "/v1/cart/items/p1", key, cartQuantityRequest{Quantity: 0})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)
	assert.Equal(t, "", view.Badge)
}

func TestAddCartItemRejectsInvalidQuantity(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", "sess-1", cartItemRequest{ProductID: "p1", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartsAreSessionScoped(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodPost, "/v1/cart/items", "sess-a", cartItemRequest{ProductID: "p1", Quantity: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/cart", "sess-b", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)
}

func TestSessionKeyMintedWhenMissing(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(sessionHeader))
}

func TestLoginAndOrders(t *testing.T) {
	gw := &contracts.MockGateway{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "u1", FirstName: "Ada", Email: email}, "tok-1", nil
		},
		ListOrdersFunc: func(ctx context.Context, token string) ([]domain.Order, error) {
			require.Equal(t, "tok-1", token)
			return []domain.Order{{ID: "o1", OrderID: "MX-1001", StatusText: domain.OrderStatusCompleted, Price: "250₺", Date: "01.08.2026"}}, nil
		},
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", key, loginRequest{Email: "ada@example.com", Password: "hunter2xx"})
	require.Equal(t, http.StatusOK, rec.Code)

	var sess sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.True(t, sess.IsAuthenticated)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Ada", sess.User.FirstName)

	rec = doJSON(t, router, http.MethodGet, "/v1/orders", key, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders struct {
		Orders []struct {
			OrderID string `json:"orderId"`
			Status  struct {
				Color string `json:"color"`
			} `json:"status"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, "MX-1001", orders.Orders[0].OrderID)
	assert.Equal(t, "#4ade80", orders.Orders[0].Status.Color)
}

func TestOrdersRequireAuthentication(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/orders", "anon", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFailedReloginKeepsSession(t *testing.T) {
	calls := 0
	gw := &contracts.MockGateway{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			calls++
			if calls == 1 {
				return &domain.User{ID: "u1", FirstName: "Ada"}, "tok-1", nil
			}
			return nil, "", &commerceError{}
		},
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", key, loginRequest{Email: "a@b.c", Password: "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/auth/login", key, loginRequest{Email: "a@b.c", Password: "wrong"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/session", key, nil)
	var sess sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.True(t, sess.IsAuthenticated)
}

type commerceError struct{}

func (e *commerceError) Error() string { return "upstream rejected login" }

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	gw := &contracts.MockGateway{
		RegisterFunc: func(ctx context.Context, form domain.RegistrationForm) error { return nil },
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	body := registerRequest{
		FirstName:       "Ada",
		LastName:        "Yılmaz",
		Email:           "ada@example.com",
		Password:        "parola123",
		ConfirmPassword: "parola123",
		NationalID:      "12345678901",
		BirthDate:       "1990-01-01",
	}
	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", key, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/session", key, nil)
	var sess sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.False(t, sess.IsAuthenticated)
}

func TestRegisterValidationMapsTo400(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	body := registerRequest{
		FirstName:       "Ada",
		LastName:        "Yılmaz",
		Email:           "ada@example.com",
		Password:        "kisa",
		ConfirmPassword: "kisa",
		NationalID:      "12345678901",
		BirthDate:       "1990-01-01",
	}
	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout(t *testing.T) {
	gw := &contracts.MockGateway{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "u1"}, "tok-1", nil
		},
		CreateOrderFunc: func(ctx context.Context, token string, lines []domain.CartLine) (string, error) {
			require.Equal(t, "tok-1", token)
			require.Len(t, lines, 1)
			return "MX-1002", nil
		},
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	doJSON(t, router, http.MethodPost, "/v1/auth/login", key, loginRequest{Email: "a@b.c", Password: "x"})
	doJSON(t, router, http.MethodPost, "/v1/cart/items", key, cartItemRequest{ProductID: "p1", Quantity: 1})

	rec := doJSON(t, router, http.MethodPost, "/v1/checkout", key, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "MX-1002", resp.OrderID)

	// Cart empties after a successful checkout.
	rec = doJSON(t, router, http.MethodGet, "/v1/cart", key, nil)
	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Lines)
}

func TestCheckoutEmptyCartConflicts(t *testing.T) {
	gw := &contracts.MockGateway{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "u1"}, "tok-1", nil
		},
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	doJSON(t, router, http.MethodPost, "/v1/auth/login", key, loginRequest{Email: "a@b.c", Password: "x"})

	rec := doJSON(t, router, http.MethodPost, "/v1/checkout", key, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSearchMatchesAcrossCategories(t *testing.T) {
	gw := &contracts.MockGateway{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{Name: "Oyunlar", Slug: "oyunlar"}}, nil
		},
		ListCategoryProductsFunc: func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
			return []domain.CatalogItem{
				{ID: "p1", Name: "Valorant Points", Price: domain.PriceFromInt(100)},
				{ID: "p2", Name: "Steam Cüzdan Kodu", Price: domain.PriceFromInt(50)},
			}, nil
		},
	}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/search?q=valorant", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Degraded bool `json:"degraded"`
		Items    []struct {
			Name         string `json:"name"`
			CategoryName string `json:"categoryName"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Degraded)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Valorant Points", result.Items[0].Name)
	assert.Equal(t, "Oyunlar", result.Items[0].CategoryName)
}

func TestSearchSuggestDebounces(t *testing.T) {
	var listCalls int32
	gw := &contracts.MockGateway{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			atomic.AddInt32(&listCalls, 1)
			return []domain.Category{{Name: "Oyunlar", Slug: "oyunlar"}}, nil
		},
		ListCategoryProductsFunc: func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
			return []domain.CatalogItem{{ID: "p1", Name: "Valorant Points", Price: domain.PriceFromInt(100)}}, nil
		},
	}
	router := newTestRouter(t, gw)
	key := "sess-1"

	// Rapid keystrokes: only the last query should reach the catalog.
	doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=v", key, nil)
	doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=va", key, nil)
	doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=valorant", key, nil)

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&listCalls) == 1
	}, time.Second, 5*time.Millisecond)

	// The next request returns the completed result.
	require.Eventually(t, func() bool {
		rec := doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=valorant", key, nil)
		var result struct {
			NoQuery bool `json:"noQuery"`
			Items   []struct {
				Name string `json:"name"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		return !result.NoQuery && len(result.Items) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSearchSuggestPendingIsNotNoQuery(t *testing.T) {
	gw := &contracts.MockGateway{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{Name: "Oyunlar", Slug: "oyunlar"}}, nil
		},
		ListCategoryProductsFunc: func(ctx context.Context, slug string) ([]domain.CatalogItem, error) {
			return []domain.CatalogItem{{ID: "p1", Name: "Valorant Points", Price: domain.PriceFromInt(100)}}, nil
		},
	}
	router := newTestRouter(t, gw)

	var result struct {
		NoQuery bool `json:"noQuery"`
		Pending bool `json:"pending"`
	}

	// First keystroke: the debounced search has not run yet, so the
	// response is pending rather than the blank-query state.
	rec := doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=valorant", "sess-1", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Pending)
	assert.False(t, result.NoQuery)

	// A blank query stays the blank-query state.
	rec = doJSON(t, router, http.MethodGet, "/v1/search/suggest?q=", "sess-1", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.NoQuery)
	assert.False(t, result.Pending)
}

func TestSuggesterEvictsIdleSessions(t *testing.T) {
	gw := &contracts.MockGateway{}
	search := search_catalog.NewHandler(gw, services.NewSearchMatcher(), nil)
	clk := clock.NewFake(time.Now())

	// Hour-long window keeps the debounced search from ever firing.
	s := NewSuggester(search, nil, time.Hour, clk)
	t.Cleanup(s.Stop)

	s.Submit("sess-old", "valorant")
	clk.Advance(suggestSessionTTL + time.Minute)
	s.Submit("sess-new", "rust")

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.sessions, 1)
	_, kept := s.sessions["sess-new"]
	assert.True(t, kept)
}

func TestCreateMessage(t *testing.T) {
	gw := &contracts.MockGateway{
		CreateMessageFunc: func(ctx context.Context, msg domain.Message) (string, error) {
			assert.Equal(t, domain.MessageMethodContact, msg.Method)
			return "m1", nil
		},
	}
	router := newTestRouter(t, gw)

	body := messageRequest{
		FirstName: "Ada",
		LastName:  "Yılmaz",
		Email:     "ada@example.com",
		Title:     "Sipariş hakkında",
		Text:      "Merhaba",
		Method:    domain.MessageMethodContact,
	}
	rec := doJSON(t, router, http.MethodPost, "/v1/messages", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateMessageMissingFieldMapsTo400(t *testing.T) {
	gw := &contracts.MockGateway{}
	router := newTestRouter(t, gw)

	body := messageRequest{FirstName: "Ada", Method: domain.MessageMethodContact}
	rec := doJSON(t, router, http.MethodPost, "/v1/messages", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWebsiteLazyLoads(t *testing.T) {
	gw := &contracts.MockGateway{
		WebsiteInfoFunc: func(ctx context.Context) (*domain.WebsiteInfo, error) {
			return &domain.WebsiteInfo{
				BankAccounts: []domain.BankAccount{{BankName: "Ziraat", IBAN: "TR12"}},
			}, nil
		},
	}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodGet, "/v1/website", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view websiteView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.BankAccounts, 1)
	assert.Equal(t, "Ziraat", view.BankAccounts[0].BankName)
}

func TestUpstreamErrorsMapThroughAPIError(t *testing.T) {
	gw := &contracts.MockGateway{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", &commerce.APIError{StatusCode: http.StatusUnauthorized, Message: "E-posta veya şifre hatalı"}
		},
	}
	router := newTestRouter(t, gw)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", "sess-1", loginRequest{Email: "a@b.c", Password: "x"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "E-posta veya şifre hatalı", body.Message)
}
