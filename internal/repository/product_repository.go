package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRepository struct {
	DB *db.Postgres
}

const productColumns = `id, name, brand, category, buying_price, selling_price, quantity, reorder_level, supplier_id, expiry_date, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var supplierID pgtype.Int8
	var expiry pgtype.Date
	if err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.BuyingPrice, &p.SellingPrice,
		&p.Quantity, &p.ReorderLevel, &supplierID, &expiry, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if supplierID.Valid {
		p.SupplierID = &supplierID.Int64
	}
	if expiry.Valid {
		t := expiry.Time
		p.ExpiryDate = &t
	}
	return &p, nil
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if p.BuyingPrice < 0 || p.SellingPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	return nil
}

// List returns all live products; with inStockOnly set, only products with
// units on hand (the sales screen filter).
func (r ProductRepository) List(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	q := `
		SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY id ASC
	`
	if inStockOnly {
		q = `
			SELECT ` + productColumns + `
			FROM products
			WHERE deleted_at IS NULL AND quantity > 0
			ORDER BY id ASC
		`
	}
	rows, err := r.DB.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r ProductRepository) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if p.ReorderLevel == 0 {
		p.ReorderLevel = 10
	}
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO products (name, brand, category, buying_price, selling_price, quantity, reorder_level, supplier_id, expiry_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now(), now())
		RETURNING `+productColumns+`
	`, p.Name, p.Brand, p.Category, p.BuyingPrice, p.SellingPrice, p.Quantity, p.ReorderLevel, p.SupplierID, p.ExpiryDate)
	return scanProduct(row)
}

// Update replaces all mutable fields of an existing product.
func (r ProductRepository) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE products
		SET name=$1,
			brand=$2,
			category=$3,
			buying_price=$4,
			selling_price=$5,
			quantity=$6,
			reorder_level=$7,
			supplier_id=$8,
			expiry_date=$9,
			updated_at=now()
		WHERE id=$10 AND deleted_at IS NULL
		RETURNING `+productColumns+`
	`, p.Name, p.Brand, p.Category, p.BuyingPrice, p.SellingPrice, p.Quantity, p.ReorderLevel, p.SupplierID, p.ExpiryDate, p.ID)
	out, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes the product. Historical sales keep their snapshots, so
// nothing else has to change.
func (r ProductRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Pool.Exec(ctx, `UPDATE products SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LowStock returns products at or below their reorder level, most depleted
// first.
func (r ProductRepository) LowStock(ctx context.Context, limit int) ([]domain.Product, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE deleted_at IS NULL AND quantity <= reorder_level
		ORDER BY quantity - reorder_level ASC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
