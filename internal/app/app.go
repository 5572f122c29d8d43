// Package app assembles the HTTP API from the resource servers.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Gamertag001/eonova-backend/internal/catalog"
	"github.com/Gamertag001/eonova-backend/internal/customization"
	"github.com/Gamertag001/eonova-backend/internal/order"
	"github.com/Gamertag001/eonova-backend/internal/pricing"
	"github.com/Gamertag001/eonova-backend/internal/stats"
	"github.com/Gamertag001/eonova-backend/internal/user"
	"github.com/Gamertag001/eonova-backend/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// WriteLimitPerMin caps POST/PUT per client IP; 0 disables it.
	WriteLimitPerMin int
	// Now overrides the clock used for created_at stamps.
	Now func() time.Time
}

const (
	readyTimeout = 2 * time.Second
	limitWindow  = 60 * time.Second

	welcomeMessage = "Welcome to the Eonova API! Your customizable apparel store"
)

func NewHandler(st Stores, deps HTTPDeps) http.Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	metricsOn := deps.MetricsEnabled && deps.Registry != nil
	if deps.MetricsEnabled && deps.Registry == nil {
		log.Warn("metrics enabled but Registry is nil")
	}

	setupMiddleware(r, deps, log)
	setupMetrics(r, deps, metricsOn)
	setupRoutes(r, st, deps, log)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps, log *zap.Logger) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(log))
	r.Use(kit.Logging(log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RoutePatternOrPath))
	}

	if deps.WriteLimitPerMin > 0 {
		r.Use(kit.NewIPRateLimiter(deps.WriteLimitPerMin, limitWindow).Writes)
	}
}

func setupMetrics(r *chi.Mux, deps HTTPDeps, metricsOn bool) {
	if !metricsOn {
		return
	}
	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func setupRoutes(r *chi.Mux, st Stores, deps HTTPDeps, log *zap.Logger) {
	var (
		priceMetrics *pricing.Metrics
		ordersMade   prometheus.Counter
	)
	if deps.Registry != nil {
		priceMetrics = pricing.NewMetrics(deps.Registry)
		ordersMade = order.NewCreatedCounter(deps.Registry)
	}

	products := &catalog.Server{Store: st.Products, Log: log}
	customs := &customization.Server{Store: st.Customizations, Products: st.Products, Log: log, Now: deps.Now}
	orders := &order.Server{Store: st.Orders, Log: log, Now: deps.Now, Created: ordersMade}
	users := &user.Server{Store: st.Users, Log: log}
	prices := &pricing.Server{Engine: &pricing.Engine{Products: st.Products}, Metrics: priceMetrics, Log: log}
	dashboard := &stats.Server{
		Sources: stats.Sources{
			Products:       st.Products,
			Customizations: st.Customizations,
			Orders:         st.Orders,
			Users:          st.Users,
		},
		Log: log,
	}

	r.Get("/", welcome)
	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(st, log))

	r.Mount("/products", products.Routes())
	r.Mount("/customizations", customs.Routes())
	r.Mount("/orders", orders.Routes())
	r.Mount("/users", users.Routes())

	r.Get("/styles", prices.StylesHandler())
	r.Get("/prints", prices.PrintsHandler())
	r.Get("/colors", prices.ColorsHandler())
	r.Post("/price", prices.QuoteHandler())

	r.Get("/stats", dashboard.Handler())
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(st Stores, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := st.ping(ctx); err != nil {
			log.Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "store not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
