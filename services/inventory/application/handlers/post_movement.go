package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	pkgvalidator "github.com/ghuser/porcelarte/pkg/validator"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	appsvcs "github.com/ghuser/porcelarte/services/inventory/application/services"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

// RecordMovementRequest is the request body for POST /inventory/movements.
type RecordMovementRequest struct {
	ProductKind string `json:"product_kind" validate:"required"         example:"floor"`
	ProductID   string `json:"product_id"   validate:"required,uuid"    example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	Type        string `json:"type"         validate:"required"         example:"entry"`
	Quantity    int    `json:"quantity"     validate:"gt=0"             example:"10"`
	Reason      string `json:"reason"       validate:"required,max=500" example:"Recebimento NF 4411"`
} // @name RecordMovementRequest

// PostMovementHandler handles POST /inventory/movements requests.
type PostMovementHandler struct {
	svc *appsvcs.Services
}

// NewPostMovementHandler returns a PostMovementHandler backed by the given services.
func NewPostMovementHandler(svc *appsvcs.Services) *PostMovementHandler {
	return &PostMovementHandler{svc: svc}
}

// Execute records a stock movement on behalf of the signed-in actor.
//
//	@Summary		Record stock movement
//	@Description	Entry adds, exit subtracts (clamped at zero), adjustment sets the level.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecordMovementRequest	true	"Movement"
//	@Success		201		{object}	MovementResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/movements [post]
func (h *PostMovementHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actorID, err := auth.ActorIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RecordMovementRequest](w, r)
	if !ok {
		return
	}

	kind, err := catalogmodels.ParseProductKind(req.ProductKind)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidMovement, err))
		return
	}
	mt, err := models.ParseMovementType(req.Type)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidMovement, err))
		return
	}

	m, err := h.svc.Ledger.RecordMovement(r.Context(), appsvcs.RecordMovementCmd{
		Product:  catalogmodels.ProductRef{Kind: kind, ID: uuid.MustParse(req.ProductID)},
		Type:     mt,
		Quantity: req.Quantity,
		Reason:   req.Reason,
		ActorID:  actorID,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toMovementResponse(m))
}
