package domain

import "errors"

// Sentinel errors for the quote domain. Use errors.Is() to check these.
var (
	// ErrInvalidQuantity indicates a non-positive area, a negative loss factor or a bad line quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrProductNotFound indicates a quote line references an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive indicates a quote line references a product withdrawn from sale.
	ErrProductInactive = errors.New("product inactive")

	// ErrAlreadySubmitted indicates the quote already went through approval.
	ErrAlreadySubmitted = errors.New("quote approval already submitted")

	// ErrInvalidPhone indicates a customer phone that cannot be dialed.
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrEmptyQuote indicates a quote without any floor line.
	ErrEmptyQuote = errors.New("quote has no lines")
)
