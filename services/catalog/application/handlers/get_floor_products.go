package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// ListFloorProductsResponse wraps a floor product listing.
type ListFloorProductsResponse struct {
	Items []FloorProductResponse `json:"items"`
	Total int                    `json:"total" example:"4"`
} // @name ListFloorProductsResponse

// ListFloorProductsHandler handles GET /catalog/floor requests.
type ListFloorProductsHandler struct {
	svc *appsvcs.Services
}

// NewListFloorProductsHandler returns a ListFloorProductsHandler backed by the given services.
func NewListFloorProductsHandler(svc *appsvcs.Services) *ListFloorProductsHandler {
	return &ListFloorProductsHandler{svc: svc}
}

// Execute lists floor products ordered by name.
//
//	@Summary	List floor products
//	@Tags		catalog
//	@Produce	json
//	@Param		search		query		string	false	"Matches name, SKU or collection"
//	@Param		finish		query		string	false	"matte | polished"
//	@Param		active		query		bool	false	"Filter by active flag"
//	@Param		low_stock	query		bool	false	"Only products at or below their minimum"
//	@Success	200			{object}	ListFloorProductsResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/catalog/floor [get]
func (h *ListFloorProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.FloorProductFilter{Search: q.Get("search")}

	if v := q.Get("finish"); v != "" {
		finish, err := models.ParseFinish(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Finish = finish
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

	ps, err := h.svc.Catalog.ListFloorProducts(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]FloorProductResponse, len(ps))
	for i, p := range ps {
		items[i] = toFloorResponse(p)
	}
	httpx.JSON(w, http.StatusOK, ListFloorProductsResponse{Items: items, Total: len(items)})
}

// parseBoolQuery returns nil for an absent parameter and writes 400 for a malformed one.
func parseBoolQuery(w http.ResponseWriter, raw, name string) (*bool, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return nil, false
	}
	return &v, true
}
