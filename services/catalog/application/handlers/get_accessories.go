package handlers

import (
	"net/http"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// ListAccessoriesResponse wraps an accessory listing.
type ListAccessoriesResponse struct {
	Items []AccessoryResponse `json:"items"`
	Total int                 `json:"total" example:"4"`
} // @name ListAccessoriesResponse

// ListAccessoriesHandler handles GET /catalog/accessories requests.
type ListAccessoriesHandler struct {
	svc *appsvcs.Services
}

// NewListAccessoriesHandler returns a ListAccessoriesHandler backed by the given services.
func NewListAccessoriesHandler(svc *appsvcs.Services) *ListAccessoriesHandler {
	return &ListAccessoriesHandler{svc: svc}
}

// Execute lists accessories ordered by name.
//
//	@Summary	List accessories
//	@Tags		catalog
//	@Produce	json
//	@Param		search		query		string	false	"Matches name or SKU"
//	@Param		kind		query		string	false	"mortar | grout | spacer_wedge | spacer_cross | baseboard"
//	@Param		active		query		bool	false	"Filter by active flag"
//	@Param		low_stock	query		bool	false	"Only accessories at or below their minimum"
//	@Success	200			{object}	ListAccessoriesResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/catalog/accessories [get]
func (h *ListAccessoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AccessoryFilter{
		Search: q.Get("search"),
		Kind:   models.AccessoryKind(q.Get("kind")),
	}
	active, ok := parseBoolQuery(w, q.Get("active"), "active")
	if !ok {
		return
	}
	filter.Active = active
	low, ok := parseBoolQuery(w, q.Get("low_stock"), "low_stock")
	if !ok {
		return
	}
	filter.LowStockOnly = low != nil && *low

	as, err := h.svc.Catalog.ListAccessories(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]AccessoryResponse, len(as))
	for i, a := range as {
		items[i] = toAccessoryResponse(a)
	}
	httpx.JSON(w, http.StatusOK, ListAccessoriesResponse{Items: items, Total: len(items)})
}
