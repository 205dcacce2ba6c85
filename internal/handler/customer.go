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

type CustomerHandler struct {
	Repo repository.CustomerRepository
}

func (h CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Get("/customers/{id}", h.get)
	r.Post("/customers", h.create)
	r.Put("/customers/{id}", h.update)
	r.Delete("/customers/{id}", h.delete)
}

type customerPayload struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	SkinType       string `json:"skinType"`
	HairType       string `json:"hairType"`
	ProductsBought string `json:"productsBought"`
	Notes          string `json:"notes"`
}

func (p customerPayload) toDomain() domain.Customer {
	return domain.Customer{
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		SkinType:       p.SkinType,
		HairType:       p.HairType,
		ProductsBought: p.ProductsBought,
		Notes:          p.Notes,
	}
}

func (h CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, c := range items {
		out = append(out, customerJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h CustomerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	c, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customerJSON(*c))
}

func (h CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := h.Repo.Create(r.Context(), req.toDomain())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customerJSON(*created))
}

func (h CustomerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	var req customerPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	c := req.toDomain()
	c.ID = id
	updated, err := h.Repo.Update(r.Context(), c)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customerJSON(*updated))
}

func (h CustomerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": strconv.FormatInt(id, 10)})
}

func customerJSON(c domain.Customer) map[string]any {
	return map[string]any{
		"id":             c.ID,
		"name":           c.Name,
		"phone":          c.Phone,
		"email":          c.Email,
		"skinType":       c.SkinType,
		"hairType":       c.HairType,
		"productsBought": c.ProductsBought,
		"notes":          c.Notes,
		"createdAt":      c.CreatedAt.Format(time.RFC3339),
	}
}
