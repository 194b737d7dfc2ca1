package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	appsvcs "github.com/ghuser/porcelarte/services/inventory/application/services"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

// ListMovementsResponse wraps a history page.
type ListMovementsResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total" example:"12"`
} // @name ListMovementsResponse

// ListMovementsHandler handles GET /inventory/movements requests.
type ListMovementsHandler struct {
	svc *appsvcs.Services
}

// NewListMovementsHandler returns a ListMovementsHandler backed by the given services.
func NewListMovementsHandler(svc *appsvcs.Services) *ListMovementsHandler {
	return &ListMovementsHandler{svc: svc}
}

// Execute lists movement history newest first.
//
//	@Summary	List stock movements
//	@Tags		inventory
//	@Produce	json
//	@Param		kind		query		string	false	"floor | accessory"
//	@Param		product_id	query		string	false	"Product ID"
//	@Param		type		query		string	false	"entry | exit | adjustment"
//	@Param		actor_id	query		string	false	"Actor ID"
//	@Param		since		query		string	false	"RFC3339 lower bound"
//	@Param		until		query		string	false	"RFC3339 upper bound"
//	@Param		search		query		string	false	"Matches product name, SKU or reason"
//	@Success	200			{object}	ListMovementsResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/inventory/movements [get]
func (h *ListMovementsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.MovementFilter{Search: q.Get("search")}

	if raw := q.Get("kind"); raw != "" {
		kind, err := catalogmodels.ParseProductKind(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Kind = kind
	}
	if raw := q.Get("type"); raw != "" {
		mt, err := models.ParseMovementType(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Type = mt
	}

	var ok bool
	if filter.ProductID, ok = parseUUIDQuery(w, q.Get("product_id"), "product_id"); !ok {
		return
	}
	if filter.ActorID, ok = parseUUIDQuery(w, q.Get("actor_id"), "actor_id"); !ok {
		return
	}
	if filter.Since, ok = parseTimeQuery(w, q.Get("since"), "since"); !ok {
		return
	}
	if filter.Until, ok = parseTimeQuery(w, q.Get("until"), "until"); !ok {
		return
	}

	ms, err := h.svc.Ledger.ListMovements(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]MovementResponse, len(ms))
	for i, m := range ms {
		items[i] = toMovementResponse(m)
	}
	httpx.JSON(w, http.StatusOK, ListMovementsResponse{Items: items, Total: len(items)})
}

func parseUUIDQuery(w http.ResponseWriter, raw, name string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseTimeQuery(w http.ResponseWriter, raw, name string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid "+name+": expected RFC3339")
		return time.Time{}, false
	}
	return t, true
}
