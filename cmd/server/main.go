package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

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
	"github.com/maxiipins/storefront-service/internal/config"
	"github.com/maxiipins/storefront-service/internal/infra/commerce"
	"github.com/maxiipins/storefront-service/internal/pkg/clock"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
	storefronthttp "github.com/maxiipins/storefront-service/internal/transport/http/storefront"
)

func main() {
	cfg, err := config.Load(env("STOREFRONT_CONFIG", ""))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewJSONLogger("storefront", logging.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received", nil)
		cancel()
	}()

	clk := clock.RealClock{}
	gateway := commerce.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, logger)

	carts := stores.NewCartStore()
	sessions := stores.NewSessionStore()
	website := stores.NewWebsiteStore(gateway, logger)

	matcher := services.NewSearchMatcher()
	search := search_catalog.NewHandler(gateway, matcher, logger)
	fallback := func(ctx context.Context) []domain.CatalogItem {
		items, err := gateway.HomepageItems(ctx, 20)
		if err != nil {
			logger.Warn("search fallback load failed", map[string]interface{}{"error": err.Error()})
			return nil
		}
		return items
	}

	// CQRS wiring
	cmds := storefronthttp.Commands{
		AddToCart:  add_to_cart.NewInteractor(carts),
		UpdateCart: update_cart_line.NewInteractor(carts),
		ClearCart:  clear_cart.NewInteractor(carts),
		Checkout:   begin_checkout.NewInteractor(carts, sessions, gateway, clk, logger),
		SignIn:     sign_in.NewInteractor(sessions, gateway),
		SignOut:    sign_out.NewInteractor(sessions, carts, gateway, logger),
		Register:   register_account.NewInteractor(gateway),
		Message:    submit_message.NewInteractor(gateway),
	}
	qrys := storefronthttp.Queries{
		Home:           get_home.NewHandler(gateway, logger),
		Category:       get_category.NewHandler(gateway, cfg.PageSize),
		Product:        get_product.NewHandler(gateway),
		Orders:         list_orders.NewHandler(gateway, sessions),
		Contract:       get_contract.NewHandler(gateway),
		Search:         search,
		SearchFallback: fallback,
	}
	suggest := storefronthttp.NewSuggester(search, fallback, cfg.SearchDebounce, clk)
	defer suggest.Stop()

	h := storefronthttp.NewHandler(cmds, qrys, carts, sessions, website, suggest)

	// Warm the site-wide content; the handler retries lazily on miss.
	if err := website.Refresh(ctx); err != nil {
		logger.Warn("initial website refresh failed", map[string]interface{}{"error": err.Error()})
	}

	r := chi.NewRouter()
	r.Route("/v1", h.Routes)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: otelhttp.NewHandler(r, "storefront"),
	}

	go func() {
		logger.Info("http server listening", map[string]interface{}{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", map[string]interface{}{"error": err.Error()})
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", map[string]interface{}{"error": err.Error()})
		_ = srv.Close()
	}

	logger.Info("server stopped", nil)
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
