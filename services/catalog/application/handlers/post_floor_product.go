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

// CreateFloorProductRequest is the request body for POST /catalog/floor.
type CreateFloorProductRequest struct {
	SKU             string          `json:"sku"              validate:"required,sku,max=64" example:"CALA62x120-P"`
	Name            string          `json:"name"             validate:"required,max=255" example:"Calacata Bianco 62×120"`
	SideACm         decimal.Decimal `json:"side_a_cm"        validate:"gt=0" swaggertype:"string" example:"62"`
	SideBCm         decimal.Decimal `json:"side_b_cm"        validate:"gt=0" swaggertype:"string" example:"120"`
	PiecesPerBox    int             `json:"pieces_per_box"   validate:"gt=0" example:"2"`
	Finish          string          `json:"finish"           validate:"required,oneof=matte polished fosco polido" example:"polished"`
	CollectionColor string          `json:"collection_color" validate:"max=255" example:"Calacata"`
	PricePerM2      decimal.Decimal `json:"price_per_m2"     validate:"gte=0" swaggertype:"string" example:"129.9"`
	StockBoxes      int             `json:"stock_boxes"      validate:"gte=0" example:"80"`
	MinStockBoxes   int             `json:"min_stock_boxes"  validate:"gte=0" example:"20"`
	Active          *bool           `json:"active"           example:"true"`
} // @name CreateFloorProductRequest

// PostFloorProductHandler handles POST /catalog/floor requests.
type PostFloorProductHandler struct {
	svc *appsvcs.Services
}

// NewPostFloorProductHandler returns a PostFloorProductHandler backed by the given services.
func NewPostFloorProductHandler(svc *appsvcs.Services) *PostFloorProductHandler {
	return &PostFloorProductHandler{svc: svc}
}

// Execute creates a floor product.
//
//	@Summary		Create floor product
//	@Description	Creates a floor product; the area per box is derived from the geometry
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateFloorProductRequest	true	"Floor product"
//	@Success		201		{object}	FloorProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/catalog/floor [post]
func (h *PostFloorProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateFloorProductRequest](w, r)
	if !ok {
		return
	}

	finish, err := models.ParseFinish(req.Finish)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p, err := h.svc.Catalog.CreateFloorProduct(r.Context(), models.FloorProductInput{
		SKU:             req.SKU,
		Name:            req.Name,
		SideACm:         req.SideACm,
		SideBCm:         req.SideBCm,
		PiecesPerBox:    req.PiecesPerBox,
		Finish:          finish,
		CollectionColor: req.CollectionColor,
		PricePerM2:      req.PricePerM2,
		StockBoxes:      req.StockBoxes,
		MinStockBoxes:   req.MinStockBoxes,
		Active:          activeOrDefault(req.Active),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toFloorResponse(p))
}
