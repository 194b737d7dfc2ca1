package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	pkgvalidator "github.com/ghuser/porcelarte/pkg/validator"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// CreateAccessoryRequest is the request body for POST /catalog/accessories.
type CreateAccessoryRequest struct {
	SKU           string          `json:"sku"             validate:"required,sku,max=64" example:"ARG-ACIII-20"`
	Name          string          `json:"name"            validate:"required,max=255" example:"Argamassa AC-III 20kg"`
	Kind          string          `json:"kind"            validate:"required,max=64"  example:"mortar"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"  validate:"gte=0" swaggertype:"string" example:"32.9"`
	StockUnits    int             `json:"stock_units"     validate:"gte=0" example:"150"`
	MinStockUnits int             `json:"min_stock_units" validate:"gte=0" example:"50"`
	Active        *bool           `json:"active"          example:"true"`
	CoverageNote  string          `json:"coverage_note"   validate:"max=255" example:"4-5 m² por saco"`
} // @name CreateAccessoryRequest

// PostAccessoryHandler handles POST /catalog/accessories requests.
type PostAccessoryHandler struct {
	svc *appsvcs.Services
}

// NewPostAccessoryHandler returns a PostAccessoryHandler backed by the given services.
func NewPostAccessoryHandler(svc *appsvcs.Services) *PostAccessoryHandler {
	return &PostAccessoryHandler{svc: svc}
}

// Execute creates an accessory.
//
//	@Summary	Create accessory
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateAccessoryRequest	true	"Accessory"
//	@Success	201		{object}	AccessoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/catalog/accessories [post]
func (h *PostAccessoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateAccessoryRequest](w, r)
	if !ok {
		return
	}

	a, err := h.svc.Catalog.CreateAccessory(r.Context(), models.AccessoryInput{
		SKU:           req.SKU,
		Name:          req.Name,
		Kind:          models.AccessoryKind(req.Kind),
		PricePerUnit:  req.PricePerUnit,
		StockUnits:    req.StockUnits,
		MinStockUnits: req.MinStockUnits,
		Active:        activeOrDefault(req.Active),
		CoverageNote:  req.CoverageNote,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toAccessoryResponse(a))
}
