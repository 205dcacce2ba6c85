package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/config"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	products handler.ProductHandler,
	suppliers handler.SupplierHandler,
	customers handler.CustomerHandler,
	sales handler.SaleHandler,
	expenses handler.ExpenseHandler,
	dashboard handler.DashboardHandler,
	reports handler.ReportHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	products.RegisterRoutes(r)
	suppliers.RegisterRoutes(r)
	customers.RegisterRoutes(r)
	sales.RegisterRoutes(r)
	expenses.RegisterRoutes(r)
	dashboard.RegisterRoutes(r)
	reports.RegisterRoutes(r)

	return r
}
