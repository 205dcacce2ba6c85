package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/db"
	"github.com/davicharles500-cmyk/cosmetic-shop-application/internal/domain"
)

type ExpenseRepository struct {
	DB *db.Postgres
}

type CreateExpenseInput struct {
	Date        time.Time
	Category    string
	Description string
	Amount      int64
}

func (r ExpenseRepository) Create(ctx context.Context, in CreateExpenseInput) (*domain.Expense, error) {
	if in.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	var e domain.Expense
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO expenses (expense_date, category, description, amount, created_at)
		VALUES ($1,$2,$3,$4, now())
		RETURNING id, expense_date, category, description, amount, created_at
	`, in.Date.Format("2006-01-02"), in.Category, in.Description, in.Amount).Scan(
		&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r ExpenseRepository) List(ctx context.Context, limit int) ([]domain.Expense, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, expense_date, category, description, amount, created_at
		FROM expenses
		WHERE deleted_at IS NULL
		ORDER BY expense_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// ListFiltered returns expenses within the optional [start, end] date range,
// end day inclusive.
func (r ExpenseRepository) ListFiltered(ctx context.Context, start, end *time.Time) ([]domain.Expense, error) {
	from, to := rangeBounds(start, end)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, expense_date, category, description, amount, created_at
		FROM expenses
		WHERE deleted_at IS NULL
		  AND ($1::timestamptz IS NULL OR expense_date >= $1::date)
		  AND ($2::timestamptz IS NULL OR expense_date < $2::date)
		ORDER BY expense_date DESC, id DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r ExpenseRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Pool.Exec(ctx, `UPDATE expenses SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TotalAmount sums all live expenses.
func (r ExpenseRepository) TotalAmount(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount),0) FROM expenses WHERE deleted_at IS NULL
	`).Scan(&total)
	return total, err
}
