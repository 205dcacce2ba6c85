package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// dateRangeQuery parses the optional startDate/endDate pair shared by the
// list and report endpoints.
func dateRangeQuery(r *http.Request) (start, end *time.Time, err error) {
	if start, err = parseDateQuery(r, "startDate"); err != nil {
		return nil, nil, err
	}
	if end, err = parseDateQuery(r, "endDate"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func limitQuery(r *http.Request, fallback int) int {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
