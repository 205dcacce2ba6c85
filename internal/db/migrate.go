package db

import (
	"context"
	"fmt"
)

// Schema is applied on startup. Statements are idempotent so repeated boots
// and the seed command can run against the same database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		products_supplied TEXT NOT NULL DEFAULT '',
		delivery_time TEXT NOT NULL DEFAULT '',
		credit_terms TEXT NOT NULL DEFAULT '',
		last_price_list TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		buying_price BIGINT NOT NULL DEFAULT 0 CHECK (buying_price >= 0),
		selling_price BIGINT NOT NULL DEFAULT 0 CHECK (selling_price >= 0),
		quantity INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		reorder_level INT NOT NULL DEFAULT 10,
		supplier_id BIGINT REFERENCES suppliers(id) ON DELETE SET NULL,
		expiry_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		skin_type TEXT NOT NULL DEFAULT '',
		hair_type TEXT NOT NULL DEFAULT '',
		products_bought TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		customer_id BIGINT REFERENCES customers(id) ON DELETE SET NULL,
		quantity INT NOT NULL CHECK (quantity > 0),
		unit_price BIGINT NOT NULL,
		total_amount BIGINT NOT NULL,
		profit BIGINT NOT NULL,
		payment_method TEXT NOT NULL DEFAULT 'cash',
		receipt_number TEXT NOT NULL,
		sale_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS sales_receipt_number_unique ON sales (receipt_number)`,
	`CREATE INDEX IF NOT EXISTS sales_product_id_idx ON sales (product_id)`,
	`CREATE INDEX IF NOT EXISTS sales_sale_date_idx ON sales (sale_date)`,
	`CREATE SEQUENCE IF NOT EXISTS receipt_seq`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		expense_date DATE NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		amount BIGINT NOT NULL CHECK (amount >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
}

// Migrate brings the database schema up to date.
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
