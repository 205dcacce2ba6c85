package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SaleRepository struct {
	DB *db.Postgres
}

type RecordSaleInput struct {
	ProductID     int64
	CustomerID    *int64
	Quantity      int
	PaymentMethod domain.PaymentMethod
}

const saleColumns = `s.id, s.product_id, p.name, s.customer_id, s.quantity, s.unit_price, s.total_amount, s.profit, s.payment_method, s.receipt_number, s.sale_date, s.created_at`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	var customerID pgtype.Int8
	var method string
	if err := row.Scan(&s.ID, &s.ProductID, &s.ProductName, &customerID, &s.Quantity,
		&s.UnitPrice, &s.TotalAmount, &s.Profit, &method, &s.ReceiptNumber,
		&s.SaleDate, &s.CreatedAt); err != nil {
		return nil, err
	}
	if customerID.Valid {
		s.CustomerID = &customerID.Int64
	}
	s.PaymentMethod = domain.PaymentMethod(method)
	return &s, nil
}

// RecordSale is the only multi-table write in the system. The stock check,
// the decrement and the ledger append run in one transaction; the product row
// is locked first so concurrent sales of the same product serialize and the
// shop can never oversell.
func (r SaleRepository) RecordSale(ctx context.Context, in RecordSaleInput) (*domain.Sale, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.PaymentCash
	}

	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var product domain.Product
	err = tx.QueryRow(ctx, `
		SELECT id, name, buying_price, selling_price, quantity
		FROM products
		WHERE id=$1 AND deleted_at IS NULL
		FOR UPDATE
	`, in.ProductID).Scan(&product.ID, &product.Name, &product.BuyingPrice, &product.SellingPrice, &product.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if product.Quantity < in.Quantity {
		return nil, fmt.Errorf("%w: only %d units available", ErrInsufficientStock, product.Quantity)
	}

	total, profit := product.SaleAmounts(in.Quantity)

	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('receipt_seq')`).Scan(&seq); err != nil {
		return nil, err
	}
	now := time.Now()
	receipt := receiptNumber(now, seq)

	if _, err := tx.Exec(ctx, `
		UPDATE products SET quantity = quantity - $1, updated_at = now() WHERE id = $2
	`, in.Quantity, in.ProductID); err != nil {
		return nil, err
	}

	sale := domain.Sale{
		ProductID:     in.ProductID,
		ProductName:   product.Name,
		CustomerID:    in.CustomerID,
		Quantity:      in.Quantity,
		UnitPrice:     product.SellingPrice,
		TotalAmount:   total,
		Profit:        profit,
		PaymentMethod: in.PaymentMethod,
		ReceiptNumber: receipt,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (product_id, customer_id, quantity, unit_price, total_amount, profit, payment_method, receipt_number, sale_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
		RETURNING id, sale_date, created_at
	`, sale.ProductID, sale.CustomerID, sale.Quantity, sale.UnitPrice, sale.TotalAmount, sale.Profit,
		string(sale.PaymentMethod), sale.ReceiptNumber).Scan(&sale.ID, &sale.SaleDate, &sale.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateReceipt
		}
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown customer", ErrInvalidInput)
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &sale, nil
}

// List returns the most recent sales first.
func (r SaleRepository) List(ctx context.Context, limit int) ([]domain.Sale, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.sale_date DESC, s.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListBetween returns sales within the optional [start, end] date range,
// end day inclusive, most recent first.
func (r SaleRepository) ListBetween(ctx context.Context, start, end *time.Time) ([]domain.Sale, error) {
	from, to := rangeBounds(start, end)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE ($1::timestamptz IS NULL OR s.sale_date >= $1)
		  AND ($2::timestamptz IS NULL OR s.sale_date < $2)
		ORDER BY s.sale_date DESC, s.id DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

// SalesForProduct returns the sale history of one product, oldest first.
func (r SaleRepository) SalesForProduct(ctx context.Context, productID int64) ([]domain.Sale, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.product_id = $1
		ORDER BY s.sale_date ASC, s.id ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]domain.Sale, error) {
	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *s)
	}
	return sales, rows.Err()
}
