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

// UpdateAccessoryRequest is the request body for PATCH /catalog/accessories/{id}.
type UpdateAccessoryRequest struct {
	SKU           *string          `json:"sku,omitempty"             validate:"omitempty,sku,max=64"`
	Name          *string          `json:"name,omitempty"            validate:"omitempty,min=1,max=255"`
	Kind          *string          `json:"kind,omitempty"            validate:"omitempty,min=1,max=64"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit,omitempty"  swaggertype:"string"`
	MinStockUnits *int             `json:"min_stock_units,omitempty" validate:"omitempty,gte=0"`
	Active        *bool            `json:"active,omitempty"`
	CoverageNote  *string          `json:"coverage_note,omitempty"   validate:"omitempty,max=255"`
} // @name UpdateAccessoryRequest

// PatchAccessoryHandler handles PATCH /catalog/accessories/{id} requests.
type PatchAccessoryHandler struct {
	svc *appsvcs.Services
}

// NewPatchAccessoryHandler returns a PatchAccessoryHandler backed by the given services.
func NewPatchAccessoryHandler(svc *appsvcs.Services) *PatchAccessoryHandler {
	return &PatchAccessoryHandler{svc: svc}
}

// Execute applies a partial update to an accessory.
//
//	@Summary	Update accessory
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Accessory ID"
//	@Param		request	body		UpdateAccessoryRequest	true	"Fields to change"
//	@Success	200		{object}	AccessoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/catalog/accessories/{id} [patch]
func (h *PatchAccessoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid accessory id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateAccessoryRequest](w, r)
	if !ok {
		return
	}

	patch := models.AccessoryPatch{
		SKU:           req.SKU,
		Name:          req.Name,
		PricePerUnit:  req.PricePerUnit,
		MinStockUnits: req.MinStockUnits,
		Active:        req.Active,
		CoverageNote:  req.CoverageNote,
	}
	if req.Kind != nil {
		kind := models.AccessoryKind(*req.Kind)
		patch.Kind = &kind
	}

	a, err := h.svc.Catalog.UpdateAccessory(r.Context(), id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toAccessoryResponse(a))
}
