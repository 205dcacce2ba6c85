package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup, update or delete misses.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for missing required fields, negative
	// prices/amounts or non-positive sale quantities.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock is returned when a sale asks for more units than
	// the product has on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateReceipt is returned if the receipt number drawn for a sale
	// already exists. The sequence makes this unreachable in practice; the
	// unique index is the backstop.
	ErrDuplicateReceipt = errors.New("duplicate receipt number")
)
