package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
)

type apiError struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type apiResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *apiError `json:"error,omitempty"`
}

func writeRawJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if status >= 400 {
		writeRawJSON(w, status, apiResponse{
			Status:  "error",
			Message: "",
			Data:    payload,
			Error: &apiError{
				Code:   status,
				Status: http.StatusText(status),
			},
		})
		return
	}
	writeRawJSON(w, status, apiResponse{
		Status:  "ok",
		Message: "",
		Data:    payload,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	writeRawJSON(w, status, apiResponse{
		Status:  "error",
		Message: message,
		Data:    nil,
		Error: &apiError{
			Code:   status,
			Status: http.StatusText(status),
		},
	})
}

// writeRepoError translates the repository's typed errors into HTTP statuses.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrInsufficientStock):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrDuplicateReceipt):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
