package domain

import "errors"

var (
	// ErrNotFound is returned when a product or variant does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a product with the same id already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when a product has no usable id
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock is returned when a sale asks for more sets than are on hand
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateVariant is returned when a product already has a variant with the same volume
	ErrDuplicateVariant = errors.New("variant with this volume already exists")
)
