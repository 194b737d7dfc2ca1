package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
)

// ReplenishmentResponse is one product that should be re-ordered.
type ReplenishmentResponse struct {
	Kind              string    `json:"kind"               example:"floor"`
	ID                uuid.UUID `json:"id"                 example:"123e4567-e89b-12d3-a456-426614174000"`
	SKU               string    `json:"sku"                example:"MARM60x60-F"`
	Name              string    `json:"name"               example:"Marmo Grigio 60×60"`
	Unit              string    `json:"unit"               example:"caixas"`
	CurrentStock      int       `json:"current_stock"      example:"5"`
	MinStock          int       `json:"min_stock"          example:"15"`
	SuggestedPurchase int       `json:"suggested_purchase" example:"25"`
} // @name ReplenishmentResponse

// ReplenishmentHandler handles GET /catalog/replenishment requests.
type ReplenishmentHandler struct {
	svc *appsvcs.Services
}

// NewReplenishmentHandler returns a ReplenishmentHandler backed by the given services.
func NewReplenishmentHandler(svc *appsvcs.Services) *ReplenishmentHandler {
	return &ReplenishmentHandler{svc: svc}
}

// Execute lists active products at or below their minimum, most critical first.
//
//	@Summary	Products needing replenishment
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}		ReplenishmentResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/catalog/replenishment [get]
func (h *ReplenishmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.svc.Catalog.ListProductsNeedingReplenishment(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ReplenishmentResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = ReplenishmentResponse{
			Kind:              string(s.Product.Kind),
			ID:                s.Product.ID(),
			SKU:               s.Product.SKU(),
			Name:              s.Product.Name(),
			Unit:              s.Product.Unit(),
			CurrentStock:      s.CurrentStock,
			MinStock:          s.MinStock,
			SuggestedPurchase: s.SuggestedPurchase,
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}
