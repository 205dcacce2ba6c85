package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

type ExpenseHandler struct {
	Repo repository.ExpenseRepository
}

func (h ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/expenses", h.list)
	r.Get("/expenses/export", h.export)
	r.Post("/expenses", h.create)
	r.Delete("/expenses/{id}", h.delete)
}

func (h ExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter")
		return
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		writeError(w, http.StatusBadRequest, "startDate must be before endDate")
		return
	}

	var items []domain.Expense
	if startDate != nil || endDate != nil {
		items, err = h.Repo.ListFiltered(r.Context(), startDate, endDate)
	} else {
		items, err = h.Repo.List(r.Context(), limitQuery(r, 200))
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, e := range items {
		resp = append(resp, expenseJSON(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ExpenseHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	startDate, endDate, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date filter")
		return
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		writeError(w, http.StatusBadRequest, "startDate must be before endDate")
		return
	}

	var items []domain.Expense
	if startDate != nil || endDate != nil {
		items, err = h.Repo.ListFiltered(r.Context(), startDate, endDate)
	} else {
		items, err = h.Repo.List(r.Context(), 2000)
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	if startDate != nil && endDate != nil {
		filenameSuffix = fmt.Sprintf("%s_%s", startDate.Format("20060102"), endDate.Format("20060102"))
	}

	switch format {
	case "csv":
		data, err := exportExpensesCSV(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"", filenameSuffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportExpensesXLSX(items)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"", filenameSuffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func exportExpensesCSV(items []domain.Expense) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "date", "category", "description", "amount"})
	for _, e := range items {
		_ = w.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(dateLayout),
			e.Category,
			e.Description,
			strconv.FormatInt(e.Amount, 10),
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportExpensesXLSX(items []domain.Expense) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Expenses"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Date", "Category", "Description", "Amount"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, e := range items {
		row := r + 2
		values := []any{e.ID, e.Date.Format(dateLayout), e.Category, e.Description, e.Amount}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 36)
	_ = f.SetColWidth(sheet, "E", "E", 14)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "E1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h ExpenseHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string `json:"date"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Amount      int64  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	dt := time.Now()
	if req.Date != "" {
		t, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		dt = t
	}
	e, err := h.Repo.Create(r.Context(), repository.CreateExpenseInput{
		Date:        dt,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expenseJSON(*e))
}

func (h ExpenseHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": strconv.FormatInt(id, 10)})
}

func expenseJSON(e domain.Expense) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"date":        e.Date.Format(dateLayout),
		"category":    e.Category,
		"description": e.Description,
		"amount":      e.Amount,
	}
}
