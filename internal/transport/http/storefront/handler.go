package storefront

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
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
)

// sessionHeader carries the storefront session key. A request without one
// gets a fresh key echoed back in the response.
const sessionHeader = "X-Session-Key"

// homeItemLimit caps the homepage best-seller strip.
const homeItemLimit = 20

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	AddToCart  *add_to_cart.Interactor
	UpdateCart *update_cart_line.Interactor
	ClearCart  *clear_cart.Interactor
	Checkout   *begin_checkout.Interactor
	SignIn     *sign_in.Interactor
	SignOut    *sign_out.Interactor
	Register   *register_account.Interactor
	Message    *submit_message.Interactor
}

// Queries groups read handlers. SearchFallback supplies the degraded-mode
// item snapshot when the full catalog cannot be loaded.
type Queries struct {
	Home           *get_home.Handler
	Category       *get_category.Handler
	Product        *get_product.Handler
	Orders         *list_orders.Handler
	Contract       *get_contract.Handler
	Search         *search_catalog.Handler
	SearchFallback func(ctx context.Context) []domain.CatalogItem
}

// Handler is a thin HTTP transport adapter. It validates input, maps JSON
// DTOs and delegates to the application layer.
type Handler struct {
	commands Commands
	queries  Queries
	carts    *stores.CartStore
	sessions *stores.SessionStore
	website  *stores.WebsiteStore
	suggest  *Suggester
}

func NewHandler(cmd Commands, qry Queries, carts *stores.CartStore, sessions *stores.SessionStore, website *stores.WebsiteStore, suggest *Suggester) *Handler {
	return &Handler{
		commands: cmd,
		queries:  qry,
		carts:    carts,
		sessions: sessions,
		website:  website,
		suggest:  suggest,
	}
}

// Routes mounts the storefront API onto a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/home", h.getHome)
	r.Get("/categories/{slug}", h.getCategory)
	r.Get("/products/{slug}", h.getProduct)
	r.Get("/search", h.search)
	r.Get("/search/suggest", h.searchSuggest)
	r.Get("/contracts/{slug}", h.getContract)
	r.Get("/website", h.getWebsite)

	r.Get("/session", h.getSession)
	r.Post("/auth/login", h.login)
	r.Post("/auth/register", h.register)
	r.Post("/auth/logout", h.logout)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Put("/cart/items/{productID}", h.updateCartItem)
	r.Delete("/cart/items/{productID}", h.removeCartItem)
	r.Delete("/cart", h.clearCart)
	r.Post("/checkout", h.checkout)

	r.Get("/orders", h.listOrders)
	r.Post("/messages", h.createMessage)
}

// sessionKey returns the request's session key, minting one for first-time
// visitors. The key is always echoed back so the client can persist it.
func (h *Handler) sessionKey(w http.ResponseWriter, r *http.Request) string {
	key := r.Header.Get(sessionHeader)
	if key == "" {
		key = uuid.NewString()
	}
	w.Header().Set(sessionHeader, key)
	return key
}

func (h *Handler) getHome(w http.ResponseWriter, r *http.Request) {
	view := h.queries.Home.Execute(r.Context(), homeItemLimit)
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.queries.Category.Execute(r.Context(), chi.URLParam(r, "slug"), page)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.queries.Product.Execute(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	result := h.queries.Search.Execute(r.Context(), query, h.queries.SearchFallback(r.Context()))
	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) searchSuggest(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	query := r.URL.Query().Get("q")
	result := h.suggest.Submit(key, query)
	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) getContract(w http.ResponseWriter, r *http.Request) {
	view, err := h.queries.Contract.Execute(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) getWebsite(w http.ResponseWriter, r *http.Request) {
	info, ok := h.website.Info()
	if !ok {
		// First load has not completed; try once inline.
		if err := h.website.Refresh(r.Context()); err != nil {
			respondMappedError(w, err)
			return
		}
		info, _ = h.website.Info()
	}
	respondJSON(w, http.StatusOK, mapWebsiteInfo(info))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	snap := h.sessions.Get(key)
	respondJSON(w, http.StatusOK, mapSession(snap, h.carts.BadgeLabel(key), h.carts.ItemCount(key)))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commands.SignIn.Execute(r.Context(), sign_in.Request{
		SessionKey: key,
		Email:      req.Email,
		Password:   req.Password,
	}); err != nil {
		respondMappedError(w, err)
		return
	}

	snap := h.sessions.Get(key)
	respondJSON(w, http.StatusOK, mapSession(snap, h.carts.BadgeLabel(key), h.carts.ItemCount(key)))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commands.Register.Execute(r.Context(), req.toForm()); err != nil {
		respondMappedError(w, err)
		return
	}
	// Registration never signs the user in; the client routes to login.
	respondJSON(w, http.StatusCreated, statusBody{Status: "registered"})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	h.commands.SignOut.Execute(r.Context(), key)
	respondJSON(w, http.StatusOK, statusBody{Status: "signed_out"})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	respondJSON(w, http.StatusOK, mapCart(key, h.carts))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)

	var req cartItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.commands.AddToCart.Execute(r.Context(), add_to_cart.Request{
		SessionKey: key,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	}); err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapCart(key, h.carts))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)

	var req cartQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.commands.UpdateCart.Execute(r.Context(), update_cart_line.Request{
		SessionKey: key,
		ProductID:  chi.URLParam(r, "productID"),
		Quantity:   req.Quantity,
	})
	respondJSON(w, http.StatusOK, mapCart(key, h.carts))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	h.commands.UpdateCart.Remove(r.Context(), key, chi.URLParam(r, "productID"))
	respondJSON(w, http.StatusOK, mapCart(key, h.carts))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)
	h.commands.ClearCart.Execute(r.Context(), key)
	respondJSON(w, http.StatusOK, mapCart(key, h.carts))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)

	orderID, err := h.commands.Checkout.Execute(r.Context(), key)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, checkoutResponse{OrderID: orderID})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	key := h.sessionKey(w, r)

	orders, err := h.queries.Orders.Execute(r.Context(), key)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *Handler) createMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.commands.Message.Execute(r.Context(), req.toMessage())
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{ID: id})
}
