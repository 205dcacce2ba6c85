package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/config"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL, runs
// migrations and wipes all tables. Tests are skipped when the variable is
// unset so the suite stays runnable without infrastructure.
func testDB(t *testing.T) *db.Postgres {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pg, err := db.New(ctx, config.Config{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	require.NoError(t, pg.Migrate(ctx))
	_, err = pg.Pool.Exec(ctx, `TRUNCATE sales, expenses, products, customers, suppliers RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pg
}

func seedProduct(t *testing.T, pg *db.Postgres, p domain.Product) *domain.Product {
	t.Helper()
	created, err := (ProductRepository{DB: pg}).Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Moisturizing Lotion", Brand: "Nivea", Category: "skincare",
		BuyingPrice: 250, SellingPrice: 450, Quantity: 50, ReorderLevel: 15,
	})

	repo := SaleRepository{DB: pg}
	sale, err := repo.RecordSale(ctx, RecordSaleInput{ProductID: product.ID, Quantity: 10, PaymentMethod: domain.PaymentMpesa})
	require.NoError(t, err)

	require.Equal(t, int64(450), sale.UnitPrice)
	require.Equal(t, int64(4500), sale.TotalAmount)
	require.Equal(t, int64(2000), sale.Profit)
	require.Equal(t, domain.PaymentMpesa, sale.PaymentMethod)
	require.Regexp(t, `^RCP-\d{6}-\d{6,}$`, sale.ReceiptNumber)

	after, err := (ProductRepository{DB: pg}).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 40, after.Quantity)
}

func TestRecordSaleDefaultsToCash(t *testing.T) {
	pg := testDB(t)

	product := seedProduct(t, pg, domain.Product{
		Name: "Lip Balm", Brand: "Carmol", Category: "skincare",
		BuyingPrice: 80, SellingPrice: 150, Quantity: 5, ReorderLevel: 2,
	})

	sale, err := (SaleRepository{DB: pg}).RecordSale(context.Background(), RecordSaleInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, domain.PaymentCash, sale.PaymentMethod)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Foundation", Brand: "Fenty Beauty", Category: "makeup",
		BuyingPrice: 1800, SellingPrice: 2800, Quantity: 3, ReorderLevel: 5,
	})

	repo := SaleRepository{DB: pg}
	_, err := repo.RecordSale(ctx, RecordSaleInput{ProductID: product.ID, Quantity: 4})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// A refused sale must not touch the ledger or the stock level.
	after, err := (ProductRepository{DB: pg}).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 3, after.Quantity)

	sales, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	pg := testDB(t)

	_, err := (SaleRepository{DB: pg}).RecordSale(context.Background(), RecordSaleInput{ProductID: 9999, Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecordSaleUnknownCustomer(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Mascara", Brand: "L'Oréal", Category: "makeup",
		BuyingPrice: 450, SellingPrice: 750, Quantity: 35, ReorderLevel: 10,
	})

	customerID := int64(9999)
	_, err := (SaleRepository{DB: pg}).RecordSale(ctx, RecordSaleInput{ProductID: product.ID, CustomerID: &customerID, Quantity: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	after, err := (ProductRepository{DB: pg}).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 35, after.Quantity)
}

func TestRecordSaleConcurrentNeverOversells(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Shampoo", Brand: "Head & Shoulders", Category: "hair",
		BuyingPrice: 250, SellingPrice: 450, Quantity: 10, ReorderLevel: 2,
	})

	repo := SaleRepository{DB: pg}
	const workers = 20

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.RecordSale(ctx, RecordSaleInput{ProductID: product.ID, Quantity: 1})
		}(i)
	}
	wg.Wait()

	var succeeded, refused int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrInsufficientStock)
			refused++
		}
	}
	require.Equal(t, 10, succeeded)
	require.Equal(t, workers-10, refused)

	after, err := (ProductRepository{DB: pg}).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 0, after.Quantity)
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	pg := testDB(t)

	summary, err := (ReportRepository{DB: pg}).DashboardSummary(context.Background())
	require.NoError(t, err)
	require.Zero(t, summary.TotalProducts)
	require.Zero(t, summary.LowStockCount)
	require.Zero(t, summary.TotalCustomers)
	require.Zero(t, summary.TotalSuppliers)
	require.Zero(t, summary.TodayRevenue)
	require.Zero(t, summary.TodayProfit)
	require.Empty(t, summary.RecentSales)
	require.Empty(t, summary.LowStockProducts)
}

func TestSalesReportTotals(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	lotion := seedProduct(t, pg, domain.Product{
		Name: "Body Lotion", Brand: "Vaseline", Category: "skincare",
		BuyingPrice: 180, SellingPrice: 350, Quantity: 60, ReorderLevel: 20,
	})
	lipstick := seedProduct(t, pg, domain.Product{
		Name: "Lipstick", Brand: "Maybelline", Category: "makeup",
		BuyingPrice: 350, SellingPrice: 600, Quantity: 45, ReorderLevel: 15,
	})

	sales := SaleRepository{DB: pg}
	_, err := sales.RecordSale(ctx, RecordSaleInput{ProductID: lotion.ID, Quantity: 2, PaymentMethod: domain.PaymentCash})
	require.NoError(t, err)
	_, err = sales.RecordSale(ctx, RecordSaleInput{ProductID: lipstick.ID, Quantity: 1, PaymentMethod: domain.PaymentMpesa})
	require.NoError(t, err)

	today := time.Now()
	report, err := (ReportRepository{DB: pg}).SalesReport(ctx, &today, &today)
	require.NoError(t, err)

	require.Len(t, report.Sales, 2)
	require.Equal(t, int64(1300), report.TotalRevenue)
	require.Equal(t, int64(590), report.TotalProfit)
	require.Equal(t, int64(3), report.TotalQuantity)

	require.Len(t, report.TopProducts, 2)
	require.Equal(t, lotion.ID, report.TopProducts[0].ProductID)
	require.Equal(t, int64(2), report.TopProducts[0].QuantitySold)

	require.Equal(t, int64(700), report.PaymentBreakdown["cash"])
	require.Equal(t, int64(600), report.PaymentBreakdown["mpesa"])
}

func TestWeeklyReportEmptyWeek(t *testing.T) {
	pg := testDB(t)

	report, err := (ReportRepository{DB: pg}).WeeklyReport(context.Background(), time.Now())
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	require.Equal(t, "Monday", report.Days[0].Weekday)
	require.Equal(t, "Sunday", report.Days[6].Weekday)
	for _, d := range report.Days {
		require.Zero(t, d.Revenue)
		require.Zero(t, d.Profit)
		require.Zero(t, d.Quantity)
	}
	require.Zero(t, report.TotalRevenue)
	require.Empty(t, report.CategoryRevenue)
}

func TestWeeklyReportBucketsByDay(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Eyeliner", Brand: "Essence", Category: "makeup",
		BuyingPrice: 200, SellingPrice: 400, Quantity: 50, ReorderLevel: 15,
	})

	// Ledger rows with explicit dates: two on Monday, one on Sunday of the
	// 2025-06-02 week. Midday timestamps keep the dates stable across
	// session timezones.
	insert := func(day time.Time, qty int, total, profit int64, receipt string) {
		_, err := pg.Pool.Exec(ctx, `
			INSERT INTO sales (product_id, quantity, unit_price, total_amount, profit, payment_method, receipt_number, sale_date, created_at)
			VALUES ($1,$2,400,$3,$4,'cash',$5,$6,$6)
		`, product.ID, qty, total, profit, receipt, day)
		require.NoError(t, err)
	}
	monday := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 8, 12, 0, 0, 0, time.UTC)
	insert(monday, 1, 400, 200, "RCP-202506-000001")
	insert(monday, 2, 800, 400, "RCP-202506-000002")
	insert(sunday, 3, 1200, 600, "RCP-202506-000003")

	report, err := (ReportRepository{DB: pg}).WeeklyReport(ctx, monday.AddDate(0, 0, 2))
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	require.Equal(t, "Monday", report.Days[0].Weekday)
	require.Equal(t, int64(1200), report.Days[0].Revenue)
	require.Equal(t, int64(600), report.Days[0].Profit)
	require.Equal(t, int64(3), report.Days[0].Quantity)

	require.Equal(t, "Sunday", report.Days[6].Weekday)
	require.Equal(t, int64(1200), report.Days[6].Revenue)

	for _, d := range report.Days[1:6] {
		require.Zero(t, d.Revenue)
	}
	require.Equal(t, int64(2400), report.TotalRevenue)
	require.Equal(t, int64(1200), report.TotalProfit)
	require.Equal(t, int64(6), report.TotalQuantity)
	require.Equal(t, int64(2400), report.CategoryRevenue["makeup"])
}

func TestFinanceSummaryNetProfit(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	product := seedProduct(t, pg, domain.Product{
		Name: "Hair Oil", Brand: "Murray's", Category: "hair",
		BuyingPrice: 180, SellingPrice: 350, Quantity: 70, ReorderLevel: 20,
	})
	_, err := (SaleRepository{DB: pg}).RecordSale(ctx, RecordSaleInput{ProductID: product.ID, Quantity: 10})
	require.NoError(t, err)

	_, err = (ExpenseRepository{DB: pg}).Create(ctx, CreateExpenseInput{
		Date: time.Now(), Category: "rent", Description: "Monthly Shop Rent", Amount: 1000,
	})
	require.NoError(t, err)

	summary, err := (ReportRepository{DB: pg}).FinanceSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3500), summary.TotalRevenue)
	require.Equal(t, int64(1700), summary.TotalProfit)
	require.Equal(t, int64(1000), summary.TotalExpenses)
	require.Equal(t, int64(700), summary.NetProfit)
}

func TestProductSoftDelete(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	repo := ProductRepository{DB: pg}
	product := seedProduct(t, pg, domain.Product{
		Name: "Night Cream", Brand: "Olay", Category: "skincare",
		BuyingPrice: 900, SellingPrice: 1400, Quantity: 25, ReorderLevel: 8,
	})

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.GetByID(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, product.ID), ErrNotFound)

	items, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestExpenseListFiltered(t *testing.T) {
	pg := testDB(t)
	ctx := context.Background()

	repo := ExpenseRepository{DB: pg}
	base := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	for i, amount := range []int64{100, 200, 300} {
		_, err := repo.Create(ctx, CreateExpenseInput{
			Date: base.AddDate(0, 0, i), Category: "other", Description: "expense", Amount: amount,
		})
		require.NoError(t, err)
	}

	start := base
	end := base.AddDate(0, 0, 1)
	items, err := repo.ListFiltered(ctx, &start, &end)
	require.NoError(t, err)
	require.Len(t, items, 2)
}
