package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	appsvcs "github.com/ghuser/porcelarte/services/inventory/application/services"
)

// StockStatusResponse is a product's stock level with its classification.
type StockStatusResponse struct {
	ProductKind string    `json:"product_kind" example:"floor"`
	ProductID   uuid.UUID `json:"product_id"   example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	Name        string    `json:"name"         example:"Calacata Bianco 62×120"`
	Unit        string    `json:"unit"         example:"caixas"`
	Level       int       `json:"level"        example:"18"`
	Minimum     int       `json:"minimum"      example:"20"`
	Status      string    `json:"status"       example:"low"`
	Badge       string    `json:"badge"        example:"yellow"`
	Message     string    `json:"message"      example:"Estoque baixo: 18 caixas (mín: 20)"`
} // @name StockStatusResponse

// GetStockHandler handles GET /inventory/stock/{kind}/{id} requests.
type GetStockHandler struct {
	svc *appsvcs.Services
}

// NewGetStockHandler returns a GetStockHandler backed by the given services.
func NewGetStockHandler(svc *appsvcs.Services) *GetStockHandler {
	return &GetStockHandler{svc: svc}
}

// Execute classifies a product's committed stock level.
//
//	@Summary	Stock status
//	@Tags		inventory
//	@Produce	json
//	@Param		kind		path		string	true	"floor | accessory"
//	@Param		id			path		string	true	"Product ID"
//	@Param		requested	query		int		false	"Quantity the caller intends to take"
//	@Success	200			{object}	StockStatusResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/inventory/stock/{kind}/{id} [get]
func (h *GetStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	kind, err := catalogmodels.ParseProductKind(chi.URLParam(r, "kind"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var requested *int
	if raw := r.URL.Query().Get("requested"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.JSONError(w, http.StatusBadRequest, "requested must be a non-negative integer")
			return
		}
		requested = &n
	}

	report, err := h.svc.Ledger.StockStatus(r.Context(), catalogmodels.ProductRef{Kind: kind, ID: id}, requested)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, StockStatusResponse{
		ProductKind: string(report.Product.Kind),
		ProductID:   report.Product.ID(),
		Name:        report.Product.Name(),
		Unit:        report.Product.Unit(),
		Level:       report.Level,
		Minimum:     report.Minimum,
		Status:      string(report.Status.Status),
		Badge:       string(report.Status.Status.Badge()),
		Message:     report.Status.Message,
	})
}
