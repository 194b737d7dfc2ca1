package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates a movement references an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity indicates a movement quantity that is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidMovement indicates a missing reason, actor, kind or a malformed movement type.
	ErrInvalidMovement = errors.New("invalid movement")

	// ErrInsufficientStock is returned only by strict exits, when the locked stock
	// level is below the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
