package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	DB *db.Postgres
}

const customerColumns = `id, name, phone, email, skin_type, hair_type, products_bought, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.SkinType, &c.HairType,
		&c.ProductsBought, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r CustomerRepository) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO customers (name, phone, email, skin_type, hair_type, products_bought, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, now(), now())
		RETURNING `+customerColumns+`
	`, c.Name, c.Phone, c.Email, c.SkinType, c.HairType, c.ProductsBought, c.Notes)
	return scanCustomer(row)
}

func (r CustomerRepository) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE customers
		SET name=$1,
			phone=$2,
			email=$3,
			skin_type=$4,
			hair_type=$5,
			products_bought=$6,
			notes=$7,
			updated_at=now()
		WHERE id=$8 AND deleted_at IS NULL
		RETURNING `+customerColumns+`
	`, c.Name, c.Phone, c.Email, c.SkinType, c.HairType, c.ProductsBought, c.Notes, c.ID)
	out, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes the customer. Past sales keep their customer_id; only
// a hard purge would null it via the FK.
func (r CustomerRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Pool.Exec(ctx, `UPDATE customers SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
