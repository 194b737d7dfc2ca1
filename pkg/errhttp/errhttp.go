// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/httpx"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become a 500 whose message is not echoed to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrActorIDNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, inventorydomain.ErrProductNotFound),
		errors.Is(err, quotedomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrSKUAlreadyExists),
		errors.Is(err, inventorydomain.ErrInsufficientStock),
		errors.Is(err, quotedomain.ErrAlreadySubmitted):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrImportHeaderMismatch):
		return http.StatusBadRequest // 400
	case errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, inventorydomain.ErrInvalidQuantity),
		errors.Is(err, inventorydomain.ErrInvalidMovement),
		errors.Is(err, quotedomain.ErrInvalidQuantity),
		errors.Is(err, quotedomain.ErrProductInactive),
		errors.Is(err, quotedomain.ErrInvalidPhone),
		errors.Is(err, quotedomain.ErrEmptyQuote):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
