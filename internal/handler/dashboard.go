package handler

import (
	"net/http"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	Repo     repository.ReportRepository
	Currency string
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	data, err := h.Repo.DashboardSummary(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalProducts":    data.TotalProducts,
		"lowStockCount":    data.LowStockCount,
		"totalCustomers":   data.TotalCustomers,
		"totalSuppliers":   data.TotalSuppliers,
		"todayRevenue":     data.TodayRevenue,
		"todayProfit":      data.TodayProfit,
		"recentSales":      toSaleList(data.RecentSales, h.Currency),
		"lowStockProducts": toProductList(data.LowStockProducts, h.Currency),
	})
}
