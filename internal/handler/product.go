package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	Repo     repository.ProductRepository
	Sales    repository.SaleRepository
	Currency string
}

func (h ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.list)
	r.Get("/products/low-stock", h.lowStock)
	r.Get("/products/{id}", h.get)
	r.Post("/products", h.create)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
	r.Get("/products/{id}/sales", h.sales)
}

type productPayload struct {
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	BuyingPrice  int64  `json:"buyingPrice"`
	SellingPrice int64  `json:"sellingPrice"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
	SupplierID   *int64 `json:"supplierId"`
	ExpiryDate   string `json:"expiryDate"`
}

func (p productPayload) toDomain() (domain.Product, error) {
	out := domain.Product{
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		BuyingPrice:  p.BuyingPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		SupplierID:   p.SupplierID,
	}
	if p.ExpiryDate != "" {
		t, err := time.Parse(dateLayout, p.ExpiryDate)
		if err != nil {
			return out, err
		}
		out.ExpiryDate = &t
	}
	return out, nil
}

func (h ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	inStock := r.URL.Query().Get("inStock") == "true"
	items, err := h.Repo.List(r.Context(), inStock)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductList(items, h.Currency))
}

func (h ProductHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.LowStock(r.Context(), limitQuery(r, 50))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductList(items, h.Currency))
}

func (h ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(*p, h.Currency))
}

func (h ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expiryDate")
		return
	}
	created, err := h.Repo.Create(r.Context(), p)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, productJSON(*created, h.Currency))
}

func (h ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req productPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	p, err := req.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expiryDate")
		return
	}
	p.ID = id
	updated, err := h.Repo.Update(r.Context(), p)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(*updated, h.Currency))
}

func (h ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": strconv.FormatInt(id, 10)})
}

func (h ProductHandler) sales(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	sales, err := h.Sales.SalesForProduct(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaleList(sales, h.Currency))
}

func productJSON(p domain.Product, currency string) map[string]any {
	out := map[string]any{
		"id":           p.ID,
		"name":         p.Name,
		"brand":        p.Brand,
		"category":     p.Category,
		"buyingPrice":  p.BuyingPrice,
		"sellingPrice": p.SellingPrice,
		"currency":     currency,
		"quantity":     p.Quantity,
		"reorderLevel": p.ReorderLevel,
		"supplierId":   p.SupplierID,
		"lowStock":     p.LowStock(),
		"createdAt":    p.CreatedAt.Format(time.RFC3339),
		"updatedAt":    p.UpdatedAt.Format(time.RFC3339),
	}
	if p.ExpiryDate != nil {
		out["expiryDate"] = p.ExpiryDate.Format(dateLayout)
	} else {
		out["expiryDate"] = nil
	}
	return out
}

func toProductList(items []domain.Product, currency string) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, p := range items {
		out = append(out, productJSON(p, currency))
	}
	return out
}
