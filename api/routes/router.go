package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amendezc/audiophile-backend/api/controllers"
	"github.com/amendezc/audiophile-backend/api/middleware"
	"github.com/amendezc/audiophile-backend/internal/cart"
	"github.com/amendezc/audiophile-backend/internal/catalog"
	"github.com/amendezc/audiophile-backend/internal/notifications"
	"github.com/amendezc/audiophile-backend/internal/orders"
	"github.com/amendezc/audiophile-backend/pkg/config"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DBPinger      controllers.Pinger
	RedisPinger   controllers.Pinger
	CartStore     *cart.Store
	CartSessions  *cart.Sessions
	Catalog       catalog.Service
	Orders        orders.Service
	Notifications notifications.Service
	Metrics       *metrics.HTTPMetrics
	Registry      *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DBPinger, deps.RedisPinger))
	})

	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, deps.Logger))
			r.Get("/{slug}", controllers.GetProduct(deps.Catalog, deps.Logger))
			r.Get("/{slug}/related", controllers.GetRelatedProducts(deps.Catalog, deps.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(deps.CartSessions, deps.Config.Cart.TTL, deps.Logger))
			r.Get("/", controllers.CartFetch(deps.CartStore, deps.Logger))
			r.Delete("/", controllers.CartClear(deps.CartStore, deps.Logger))
			r.Post("/items", controllers.CartAddItem(deps.CartStore, deps.Catalog, deps.Logger))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(deps.CartStore, deps.Logger))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartStore, deps.Logger))
			r.Put("/visibility", controllers.CartSetVisibility(deps.CartStore, deps.Logger))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.CreateOrder(deps.Orders, deps.Notifications, deps.Logger))
			r.Get("/", controllers.ListOrders(deps.Orders, deps.Logger))
			r.Get("/number/{orderNumber}", controllers.GetOrderByNumber(deps.Orders, deps.Logger))
			r.Get("/{orderId}", controllers.GetOrder(deps.Orders, deps.Logger))
			r.Post("/{orderId}/advance", controllers.AdvanceOrder(deps.Orders, deps.Logger))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/order-confirmation", controllers.SendOrderConfirmation(deps.Notifications, deps.Logger))
		})
	})

	return r
}
