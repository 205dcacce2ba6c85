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

type SupplierHandler struct {
	Repo repository.SupplierRepository
}

func (h SupplierHandler) RegisterRoutes(r chi.Router) {
	r.Get("/suppliers", h.list)
	r.Get("/suppliers/{id}", h.get)
	r.Post("/suppliers", h.create)
	r.Put("/suppliers/{id}", h.update)
	r.Delete("/suppliers/{id}", h.delete)
}

type supplierPayload struct {
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	ProductsSupplied string `json:"productsSupplied"`
	DeliveryTime     string `json:"deliveryTime"`
	CreditTerms      string `json:"creditTerms"`
	LastPriceList    string `json:"lastPriceList"`
}

func (p supplierPayload) toDomain() domain.Supplier {
	return domain.Supplier{
		Name:             p.Name,
		Contact:          p.Contact,
		Email:            p.Email,
		Address:          p.Address,
		ProductsSupplied: p.ProductsSupplied,
		DeliveryTime:     p.DeliveryTime,
		CreditTerms:      p.CreditTerms,
		LastPriceList:    p.LastPriceList,
	}
}

func (h SupplierHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, s := range items {
		out = append(out, supplierJSON(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h SupplierHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	s, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplierJSON(*s))
}

func (h SupplierHandler) create(w http.ResponseWriter, r *http.Request) {
	var req supplierPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := h.Repo.Create(r.Context(), req.toDomain())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, supplierJSON(*created))
}

func (h SupplierHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	var req supplierPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	s := req.toDomain()
	s.ID = id
	updated, err := h.Repo.Update(r.Context(), s)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplierJSON(*updated))
}

func (h SupplierHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": strconv.FormatInt(id, 10)})
}

func supplierJSON(s domain.Supplier) map[string]any {
	return map[string]any{
		"id":               s.ID,
		"name":             s.Name,
		"contact":          s.Contact,
		"email":            s.Email,
		"address":          s.Address,
		"productsSupplied": s.ProductsSupplied,
		"deliveryTime":     s.DeliveryTime,
		"creditTerms":      s.CreditTerms,
		"lastPriceList":    s.LastPriceList,
		"createdAt":        s.CreatedAt.Format(time.RFC3339),
	}
}
