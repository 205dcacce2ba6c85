package repository

import (
	"context"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
)

// ReportRepository is the read-only aggregation side: dashboard, sales
// report, weekly report and finance summary. Every operation tolerates an
// empty ledger and returns zeros/empty collections.
type ReportRepository struct {
	DB *db.Postgres
}

type DashboardSummary struct {
	TotalProducts    int64
	LowStockCount    int64
	TotalCustomers   int64
	TotalSuppliers   int64
	TodayRevenue     int64
	TodayProfit      int64
	RecentSales      []domain.Sale
	LowStockProducts []domain.Product
}

func (r ReportRepository) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var s DashboardSummary
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM products WHERE deleted_at IS NULL AND quantity <= reorder_level),
			(SELECT COUNT(*) FROM customers WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM suppliers WHERE deleted_at IS NULL),
			(SELECT COALESCE(SUM(total_amount),0) FROM sales WHERE sale_date::date = CURRENT_DATE),
			(SELECT COALESCE(SUM(profit),0) FROM sales WHERE sale_date::date = CURRENT_DATE)
	`).Scan(&s.TotalProducts, &s.LowStockCount, &s.TotalCustomers, &s.TotalSuppliers, &s.TodayRevenue, &s.TodayProfit)
	if err != nil {
		return s, err
	}

	if s.RecentSales, err = (SaleRepository{DB: r.DB}).List(ctx, 5); err != nil {
		return s, err
	}
	if s.LowStockProducts, err = (ProductRepository{DB: r.DB}).LowStock(ctx, 5); err != nil {
		return s, err
	}
	return s, nil
}

type ProductSales struct {
	ProductID    int64
	Name         string
	QuantitySold int64
	Revenue      int64
}

type SalesReport struct {
	Sales            []domain.Sale
	TotalRevenue     int64
	TotalProfit      int64
	TotalQuantity    int64
	TopProducts      []ProductSales
	PaymentBreakdown map[string]int64
}

// SalesReport aggregates sales over the optional [start, end] date range.
// Top products are ranked by units sold; ties go to the product whose first
// sale came earliest.
func (r ReportRepository) SalesReport(ctx context.Context, start, end *time.Time) (SalesReport, error) {
	report := SalesReport{PaymentBreakdown: map[string]int64{}}
	from, to := rangeBounds(start, end)

	var err error
	if report.Sales, err = (SaleRepository{DB: r.DB}).ListBetween(ctx, start, end); err != nil {
		return report, err
	}

	err = r.DB.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount),0), COALESCE(SUM(profit),0), COALESCE(SUM(quantity),0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR sale_date < $2)
	`, from, to).Scan(&report.TotalRevenue, &report.TotalProfit, &report.TotalQuantity)
	if err != nil {
		return report, err
	}

	rows, err := r.DB.Pool.Query(ctx, `
		SELECT s.product_id, p.name, SUM(s.quantity) AS qty, SUM(s.total_amount) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE ($1::timestamptz IS NULL OR s.sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR s.sale_date < $2)
		GROUP BY s.product_id, p.name
		ORDER BY qty DESC, MIN(s.id) ASC
		LIMIT 10
	`, from, to)
	if err != nil {
		return report, err
	}
	defer rows.Close()
	for rows.Next() {
		var ps ProductSales
		if err := rows.Scan(&ps.ProductID, &ps.Name, &ps.QuantitySold, &ps.Revenue); err != nil {
			return report, err
		}
		report.TopProducts = append(report.TopProducts, ps)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	payRows, err := r.DB.Pool.Query(ctx, `
		SELECT payment_method, COALESCE(SUM(total_amount),0)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR sale_date < $2)
		GROUP BY payment_method
	`, from, to)
	if err != nil {
		return report, err
	}
	defer payRows.Close()
	for payRows.Next() {
		var method string
		var amount int64
		if err := payRows.Scan(&method, &amount); err != nil {
			return report, err
		}
		report.PaymentBreakdown[method] = amount
	}
	return report, payRows.Err()
}

type WeekdayTotals struct {
	Weekday  string
	Revenue  int64
	Profit   int64
	Quantity int64
}

type WeeklyReport struct {
	WeekStart       time.Time
	WeekEnd         time.Time
	Days            []WeekdayTotals
	CategoryRevenue map[string]int64
	TotalRevenue    int64
	TotalProfit     int64
	TotalQuantity   int64
}

// WeeklyReport restricts to the Monday-Sunday week containing anchor. All
// seven weekday buckets are always present, zero-filled when quiet.
func (r ReportRepository) WeeklyReport(ctx context.Context, anchor time.Time) (WeeklyReport, error) {
	start, end := weekRange(anchor)
	report := WeeklyReport{
		WeekStart:       start,
		WeekEnd:         start.AddDate(0, 0, 6),
		CategoryRevenue: map[string]int64{},
	}

	byDay := make(map[string]WeekdayTotals, 7)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT sale_date::date, COALESCE(SUM(total_amount),0), COALESCE(SUM(profit),0), COALESCE(SUM(quantity),0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		GROUP BY sale_date::date
	`, start, end)
	if err != nil {
		return report, err
	}
	defer rows.Close()
	for rows.Next() {
		var day time.Time
		var revenue, profit, quantity int64
		if err := rows.Scan(&day, &revenue, &profit, &quantity); err != nil {
			return report, err
		}
		// Accumulate rather than assign: if the session timezone disagrees
		// with the week bounds, two dates can share a weekday name.
		name := day.Weekday().String()
		t := byDay[name]
		t.Weekday = name
		t.Revenue += revenue
		t.Profit += profit
		t.Quantity += quantity
		byDay[name] = t
		report.TotalRevenue += revenue
		report.TotalProfit += profit
		report.TotalQuantity += quantity
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	for i := 0; i < 7; i++ {
		name := start.AddDate(0, 0, i).Weekday().String()
		t, ok := byDay[name]
		if !ok {
			t = WeekdayTotals{Weekday: name}
		}
		report.Days = append(report.Days, t)
	}

	catRows, err := r.DB.Pool.Query(ctx, `
		SELECT p.category, COALESCE(SUM(s.total_amount),0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY p.category
	`, start, end)
	if err != nil {
		return report, err
	}
	defer catRows.Close()
	for catRows.Next() {
		var category string
		var amount int64
		if err := catRows.Scan(&category, &amount); err != nil {
			return report, err
		}
		report.CategoryRevenue[category] = amount
	}
	return report, catRows.Err()
}

type FinanceSummary struct {
	TotalExpenses int64
	TotalRevenue  int64
	TotalProfit   int64
	NetProfit     int64
}

func (r ReportRepository) FinanceSummary(ctx context.Context) (FinanceSummary, error) {
	var s FinanceSummary
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COALESCE(SUM(amount),0) FROM expenses WHERE deleted_at IS NULL),
			(SELECT COALESCE(SUM(total_amount),0) FROM sales),
			(SELECT COALESCE(SUM(profit),0) FROM sales)
	`).Scan(&s.TotalExpenses, &s.TotalRevenue, &s.TotalProfit)
	if err != nil {
		return s, err
	}
	s.NetProfit = s.TotalProfit - s.TotalExpenses
	return s, nil
}
