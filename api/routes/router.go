package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/inventory-ledger/api/controllers"
	"github.com/angelmondragon/inventory-ledger/api/middleware"
	"github.com/angelmondragon/inventory-ledger/internal/inventory"
	"github.com/angelmondragon/inventory-ledger/pkg/config"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
	"github.com/angelmondragon/inventory-ledger/pkg/metrics"
	"github.com/angelmondragon/inventory-ledger/pkg/redis"
)

// Dependencies are the collaborators the HTTP surface needs. Store and
// RedisPinger are nil when redis is not configured; Gatherer is nil when
// metrics are disabled.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	Ledger      inventory.Service
	Store       redis.IdempotencyStore
	RedisPinger redis.Pinger
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger
	svc := deps.Ledger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	idempotent := middleware.Idempotency(deps.Store, idempotencyTTL(cfg), logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.RedisPinger))
	})

	if cfg.Metrics.Enabled && deps.Gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svc, logg))
			r.With(idempotent).Post("/", controllers.CreateProduct(svc, logg))
			r.Get("/{productId}", controllers.GetProduct(svc, logg))
			r.Put("/{productId}", controllers.UpdateProduct(svc, logg))
			r.Delete("/{productId}", controllers.DeleteProduct(svc, logg))
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", controllers.ListTransactions(svc, logg))
			r.With(idempotent).Post("/", controllers.RecordTransaction(svc, logg))
		})

		r.Get("/stats", controllers.Stats(svc, logg))
		r.Get("/categories", controllers.Categories(svc, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/low-stock", controllers.LowStockReport(svc, logg))
			r.Get("/categories", controllers.CategoryValueReport(svc, logg))
		})
	})

	return r
}

func idempotencyTTL(cfg *config.Config) time.Duration {
	if cfg.Idempotency.TTL > 0 {
		return cfg.Idempotency.TTL
	}
	return 24 * time.Hour
}
