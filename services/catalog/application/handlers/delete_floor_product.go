package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
)

// DeleteFloorProductHandler handles DELETE /catalog/floor/{id} requests.
// Products are never removed, only withdrawn from sale.
type DeleteFloorProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteFloorProductHandler returns a DeleteFloorProductHandler backed by the given services.
func NewDeleteFloorProductHandler(svc *appsvcs.Services) *DeleteFloorProductHandler {
	return &DeleteFloorProductHandler{svc: svc}
}

// Execute deactivates a floor product.
//
//	@Summary		Deactivate floor product
//	@Description	Marks the product inactive; history and stock are kept
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	FloorProductResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/floor/{id} [delete]
func (h *DeleteFloorProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.svc.Catalog.DeactivateFloorProduct(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toFloorResponse(p))
}
