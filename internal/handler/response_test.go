package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestWriteRepoError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("product 7: %w", repository.ErrNotFound), http.StatusNotFound},
		{"invalid input", repository.ErrInvalidInput, http.StatusBadRequest},
		{"insufficient stock", fmt.Errorf("%w: only 2 units available", repository.ErrInsufficientStock), http.StatusConflict},
		{"duplicate receipt", repository.ErrDuplicateReceipt, http.StatusConflict},
		{"anything else", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeRepoError(rec, tt.err)
			require.Equal(t, tt.want, rec.Code)

			var body apiResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, "error", body.Status)
			require.NotNil(t, body.Error)
			require.Equal(t, tt.want, body.Error.Code)
		})
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"hello": "world"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body.Status)
	require.Nil(t, body.Error)
}

func TestWriteErrorClampsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusOK, "boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
