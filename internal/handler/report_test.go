package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSalesReportRejectsInvertedRange(t *testing.T) {
	h := ReportHandler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/reports/sales?startDate=2025-05-07&endDate=2025-05-01", nil)
	h.sales(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSalesExportRejectsInvertedRange(t *testing.T) {
	h := ReportHandler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/reports/sales/export?startDate=2025-05-07&endDate=2025-05-01", nil)
	h.salesExport(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSalesExportRejectsBadDate(t *testing.T) {
	h := ReportHandler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/reports/sales/export?startDate=07-05-2025", nil)
	h.salesExport(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeeklyRejectsBadDate(t *testing.T) {
	h := ReportHandler{}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/reports/weekly?date=last-monday", nil)
	h.weekly(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
