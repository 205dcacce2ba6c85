package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/go-chi/chi/v5"
)

type SaleHandler struct {
	Repo     repository.SaleRepository
	Currency string
}

func (h SaleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/sales", h.recordSale)
	r.Get("/sales", h.list)
}

type salePayload struct {
	ProductID     int64  `json:"productId"`
	CustomerID    *int64 `json:"customerId"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h SaleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req salePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	sale, err := h.Repo.RecordSale(r.Context(), repository.RecordSaleInput{
		ProductID:     req.ProductID,
		CustomerID:    req.CustomerID,
		Quantity:      req.Quantity,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saleJSON(*sale, h.Currency))
}

func (h SaleHandler) list(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter")
		return
	}

	var sales []domain.Sale
	if start != nil || end != nil {
		sales, err = h.Repo.ListBetween(r.Context(), start, end)
	} else {
		sales, err = h.Repo.List(r.Context(), limitQuery(r, 50))
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleList(sales, h.Currency))
}

func saleJSON(s domain.Sale, currency string) map[string]any {
	return map[string]any{
		"id":            s.ID,
		"productId":     s.ProductID,
		"productName":   s.ProductName,
		"customerId":    s.CustomerID,
		"quantity":      s.Quantity,
		"unitPrice":     s.UnitPrice,
		"totalAmount":   s.TotalAmount,
		"profit":        s.Profit,
		"currency":      currency,
		"paymentMethod": string(s.PaymentMethod),
		"receiptNumber": s.ReceiptNumber,
		"saleDate":      s.SaleDate.Format(time.RFC3339),
	}
}

func toSaleList(sales []domain.Sale, currency string) []map[string]any {
	out := make([]map[string]any, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleJSON(s, currency))
	}
	return out
}
