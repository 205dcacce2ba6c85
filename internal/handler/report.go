package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	Repo     repository.ReportRepository
	Currency string
}

func (h ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/sales", h.sales)
	r.Get("/reports/sales/export", h.salesExport)
	r.Get("/reports/weekly", h.weekly)
	r.Get("/reports/finance", h.finance)
}

func (h ReportHandler) sales(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter")
		return
	}
	if start != nil && end != nil && start.After(*end) {
		writeError(w, http.StatusBadRequest, "startDate must be before endDate")
		return
	}

	report, err := h.Repo.SalesReport(r.Context(), start, end)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	topProducts := make([]map[string]any, 0, len(report.TopProducts))
	for _, p := range report.TopProducts {
		topProducts = append(topProducts, map[string]any{
			"productId":    p.ProductID,
			"name":         p.Name,
			"quantitySold": p.QuantitySold,
			"revenue":      p.Revenue,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sales":            toSaleList(report.Sales, h.Currency),
		"totalRevenue":     report.TotalRevenue,
		"totalProfit":      report.TotalProfit,
		"totalQuantity":    report.TotalQuantity,
		"topProducts":      topProducts,
		"paymentBreakdown": report.PaymentBreakdown,
	})
}

func (h ReportHandler) salesExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	start, end, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter")
		return
	}
	if start != nil && end != nil && start.After(*end) {
		writeError(w, http.StatusBadRequest, "startDate must be before endDate")
		return
	}

	report, err := h.Repo.SalesReport(r.Context(), start, end)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	if start != nil && end != nil {
		filenameSuffix = fmt.Sprintf("%s_%s", start.Format("20060102"), end.Format("20060102"))
	}

	switch format {
	case "csv":
		data, err := exportSalesCSV(report.Sales)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"sales_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportSalesXLSX(report.Sales)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"sales_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func (h ReportHandler) weekly(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()
	if value := r.URL.Query().Get("date"); value != "" {
		parsed, err := time.Parse(dateLayout, value)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		anchor = parsed
	}

	report, err := h.Repo.WeeklyReport(r.Context(), anchor)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	days := make([]map[string]any, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, map[string]any{
			"weekday":  d.Weekday,
			"revenue":  d.Revenue,
			"profit":   d.Profit,
			"quantity": d.Quantity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"weekStart":       report.WeekStart.Format(dateLayout),
		"weekEnd":         report.WeekEnd.Format(dateLayout),
		"days":            days,
		"categoryRevenue": report.CategoryRevenue,
		"totalRevenue":    report.TotalRevenue,
		"totalProfit":     report.TotalProfit,
		"totalQuantity":   report.TotalQuantity,
	})
}

func (h ReportHandler) finance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Repo.FinanceSummary(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalExpenses": summary.TotalExpenses,
		"totalRevenue":  summary.TotalRevenue,
		"totalProfit":   summary.TotalProfit,
		"netProfit":     summary.NetProfit,
	})
}

func exportSalesCSV(sales []domain.Sale) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "receipt_number", "date", "product", "quantity", "unit_price", "total_amount", "profit", "payment_method"})
	for _, s := range sales {
		_ = w.Write([]string{
			strconv.FormatInt(s.ID, 10),
			s.ReceiptNumber,
			s.SaleDate.Format(dateLayout),
			s.ProductName,
			strconv.Itoa(s.Quantity),
			strconv.FormatInt(s.UnitPrice, 10),
			strconv.FormatInt(s.TotalAmount, 10),
			strconv.FormatInt(s.Profit, 10),
			string(s.PaymentMethod),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportSalesXLSX(sales []domain.Sale) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sales"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Receipt", "Date", "Product", "Quantity", "Unit Price", "Total", "Profit", "Payment"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, s := range sales {
		row := r + 2
		values := []any{
			s.ID,
			s.ReceiptNumber,
			s.SaleDate.Format(dateLayout),
			s.ProductName,
			s.Quantity,
			s.UnitPrice,
			s.TotalAmount,
			s.Profit,
			string(s.PaymentMethod),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "I", 12)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "I1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
