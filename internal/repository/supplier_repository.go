package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SupplierRepository struct {
	DB *db.Postgres
}

const supplierColumns = `id, name, contact, email, address, products_supplied, delivery_time, credit_terms, last_price_list, created_at, updated_at`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Contact, &s.Email, &s.Address,
		&s.ProductsSupplied, &s.DeliveryTime, &s.CreditTerms, &s.LastPriceList,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+supplierColumns+`
		FROM suppliers
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r SupplierRepository) Create(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("%w: supplier name is required", ErrInvalidInput)
	}
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, contact, email, address, products_supplied, delivery_time, credit_terms, last_price_list, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
		RETURNING `+supplierColumns+`
	`, s.Name, s.Contact, s.Email, s.Address, s.ProductsSupplied, s.DeliveryTime, s.CreditTerms, s.LastPriceList)
	return scanSupplier(row)
}

func (r SupplierRepository) Update(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("%w: supplier name is required", ErrInvalidInput)
	}
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE suppliers
		SET name=$1,
			contact=$2,
			email=$3,
			address=$4,
			products_supplied=$5,
			delivery_time=$6,
			credit_terms=$7,
			last_price_list=$8,
			updated_at=now()
		WHERE id=$9 AND deleted_at IS NULL
		RETURNING `+supplierColumns+`
	`, s.Name, s.Contact, s.Email, s.Address, s.ProductsSupplied, s.DeliveryTime, s.CreditTerms, s.LastPriceList, s.ID)
	out, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r SupplierRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Pool.Exec(ctx, `UPDATE suppliers SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
