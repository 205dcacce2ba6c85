package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/config"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/handler"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	// repositories
	productRepo := repository.ProductRepository{DB: pg}
	supplierRepo := repository.SupplierRepository{DB: pg}
	customerRepo := repository.CustomerRepository{DB: pg}
	saleRepo := repository.SaleRepository{DB: pg}
	expenseRepo := repository.ExpenseRepository{DB: pg}
	reportRepo := repository.ReportRepository{DB: pg}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	productHandler := handler.ProductHandler{Repo: productRepo, Sales: saleRepo, Currency: cfg.DefaultCurrency}
	supplierHandler := handler.SupplierHandler{Repo: supplierRepo}
	customerHandler := handler.CustomerHandler{Repo: customerRepo}
	saleHandler := handler.SaleHandler{Repo: saleRepo, Currency: cfg.DefaultCurrency}
	expenseHandler := handler.ExpenseHandler{Repo: expenseRepo}
	dashboardHandler := handler.DashboardHandler{Repo: reportRepo, Currency: cfg.DefaultCurrency}
	reportHandler := handler.ReportHandler{Repo: reportRepo, Currency: cfg.DefaultCurrency}

	router := server.NewRouter(cfg, logger, healthHandler, productHandler, supplierHandler, customerHandler, saleHandler, expenseHandler, dashboardHandler, reportHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
