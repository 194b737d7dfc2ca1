package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	pkgvalidator "github.com/ghuser/porcelarte/pkg/validator"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// UpdateFloorProductRequest is the request body for PATCH /catalog/floor/{id}.
// Omitted fields are left unchanged. Stock moves through the inventory ledger.
type UpdateFloorProductRequest struct {
	SKU             *string          `json:"sku,omitempty"              validate:"omitempty,sku,max=64"`
	Name            *string          `json:"name,omitempty"             validate:"omitempty,min=1,max=255"`
	SideACm         *decimal.Decimal `json:"side_a_cm,omitempty"        swaggertype:"string"`
	SideBCm         *decimal.Decimal `json:"side_b_cm,omitempty"        swaggertype:"string"`
	PiecesPerBox    *int             `json:"pieces_per_box,omitempty"   validate:"omitempty,gt=0"`
	Finish          *string          `json:"finish,omitempty"           validate:"omitempty,oneof=matte polished fosco polido"`
	CollectionColor *string          `json:"collection_color,omitempty" validate:"omitempty,max=255"`
	PricePerM2      *decimal.Decimal `json:"price_per_m2,omitempty"     swaggertype:"string"`
	MinStockBoxes   *int             `json:"min_stock_boxes,omitempty"  validate:"omitempty,gte=0"`
	Active          *bool            `json:"active,omitempty"`
} // @name UpdateFloorProductRequest

// PatchFloorProductHandler handles PATCH /catalog/floor/{id} requests.
type PatchFloorProductHandler struct {
	svc *appsvcs.Services
}

// NewPatchFloorProductHandler returns a PatchFloorProductHandler backed by the given services.
func NewPatchFloorProductHandler(svc *appsvcs.Services) *PatchFloorProductHandler {
	return &PatchFloorProductHandler{svc: svc}
}

// Execute applies a partial update to a floor product.
//
//	@Summary		Update floor product
//	@Description	Partially updates a floor product; geometry changes recompute the area per box
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			request	body		UpdateFloorProductRequest	true	"Fields to change"
//	@Success		200		{object}	FloorProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/catalog/floor/{id} [patch]
func (h *PatchFloorProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateFloorProductRequest](w, r)
	if !ok {
		return
	}

	patch := models.FloorProductPatch{
		SKU:             req.SKU,
		Name:            req.Name,
		SideACm:         req.SideACm,
		SideBCm:         req.SideBCm,
		PiecesPerBox:    req.PiecesPerBox,
		CollectionColor: req.CollectionColor,
		PricePerM2:      req.PricePerM2,
		MinStockBoxes:   req.MinStockBoxes,
		Active:          req.Active,
	}
	if req.Finish != nil {
		finish, err := models.ParseFinish(*req.Finish)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		patch.Finish = &finish
	}

	p, err := h.svc.Catalog.UpdateFloorProduct(r.Context(), id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toFloorResponse(p))
}
