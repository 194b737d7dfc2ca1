package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
)

// GetFloorProductHandler handles GET /catalog/floor/{id} requests.
type GetFloorProductHandler struct {
	svc *appsvcs.Services
}

// NewGetFloorProductHandler returns a GetFloorProductHandler backed by the given services.
func NewGetFloorProductHandler(svc *appsvcs.Services) *GetFloorProductHandler {
	return &GetFloorProductHandler{svc: svc}
}

// Execute returns one floor product.
//
//	@Summary	Get floor product
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	FloorProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/catalog/floor/{id} [get]
func (h *GetFloorProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.svc.Catalog.GetFloorProduct(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toFloorResponse(p))
}
