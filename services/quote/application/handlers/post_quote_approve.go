package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	pkgvalidator "github.com/ghuser/porcelarte/pkg/validator"
	pkgworkflows "github.com/ghuser/porcelarte/pkg/workflows"
	appsvcs "github.com/ghuser/porcelarte/services/quote/application/services"
	"github.com/ghuser/porcelarte/services/quote/application/workflows"
)

// ApprovalLineRequest is one quote line being approved.
type ApprovalLineRequest struct {
	ProductID     string `json:"product_id"     validate:"required,uuid" example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	RequiredBoxes int    `json:"required_boxes" validate:"gt=0"          example:"37"`
} // @name ApprovalLineRequest

// ApproveQuoteRequest is the request body for POST /quotes/{id}/approve.
type ApproveQuoteRequest struct {
	Lines []ApprovalLineRequest `json:"lines" validate:"required,min=1,dive"`
} // @name ApproveQuoteRequest

// ApproveQuoteResponse is the approval verdict.
type ApproveQuoteResponse struct {
	QuoteID     uuid.UUID   `json:"quote_id"     example:"1a2b3c4d-0000-4000-8000-000000000000"`
	Approved    bool        `json:"approved"     example:"false"`
	Errors      []string    `json:"errors"       example:"Calacata Bianco 62×120: precisa de 37 caixas, disponível 20"`
	MovementIDs []uuid.UUID `json:"movement_ids"`
} // @name ApproveQuoteResponse

// PostQuoteApproveHandler handles POST /quotes/{id}/approve requests. With a
// Temporal client the approval runs as a workflow, otherwise in-process.
type PostQuoteApproveHandler struct {
	svc       *appsvcs.Services
	temporal  *pkgworkflows.TemporalClient
	taskQueue string
}

// NewPostQuoteApproveHandler returns a PostQuoteApproveHandler. temporal may be nil.
func NewPostQuoteApproveHandler(svc *appsvcs.Services, temporal *pkgworkflows.TemporalClient, taskQueue string) *PostQuoteApproveHandler {
	return &PostQuoteApproveHandler{svc: svc, temporal: temporal, taskQueue: taskQueue}
}

// Execute validates the quote against current stock and, when every line
// passes, records one exit per line.
//
//	@Summary		Approve quote
//	@Description	Approval is all-or-nothing. A blocked quote answers 409 with the reasons.
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Quote ID"
//	@Param			request	body		ApproveQuoteRequest	true	"Lines to approve"
//	@Success		200		{object}	ApproveQuoteResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ApproveQuoteResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/quotes/{id}/approve [post]
func (h *PostQuoteApproveHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actorID, err := auth.ActorIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid quote id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ApproveQuoteRequest](w, r)
	if !ok {
		return
	}

	cmd := appsvcs.ApproveCmd{
		QuoteID: quoteID,
		Lines:   make([]appsvcs.ApprovalItem, len(req.Lines)),
		ActorID: actorID,
	}
	for i, l := range req.Lines {
		cmd.Lines[i] = appsvcs.ApprovalItem{ProductID: uuid.MustParse(l.ProductID), RequiredBoxes: l.RequiredBoxes}
	}

	resp, err := h.approve(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if !resp.Approved {
		status = http.StatusConflict
	}
	httpx.JSON(w, status, resp)
}

func (h *PostQuoteApproveHandler) approve(ctx context.Context, cmd appsvcs.ApproveCmd) (ApproveQuoteResponse, error) {
	resp := ApproveQuoteResponse{QuoteID: cmd.QuoteID, Errors: []string{}, MovementIDs: []uuid.UUID{}}

	if h.temporal != nil {
		result, err := workflows.Run(ctx, h.temporal.Client, h.taskQueue, cmd)
		if err != nil {
			return resp, err
		}
		resp.Approved = result.Approved
		resp.Errors = append(resp.Errors, result.Errors...)
		resp.MovementIDs = append(resp.MovementIDs, result.MovementIDs...)
		return resp, nil
	}

	outcome, err := h.svc.Quotes.Approve(ctx, cmd)
	if err != nil {
		return resp, err
	}
	resp.Approved = outcome.Decision.Approved
	resp.Errors = append(resp.Errors, outcome.Decision.Errors...)
	for _, m := range outcome.Movements {
		resp.MovementIDs = append(resp.MovementIDs, m.ID)
	}
	return resp, nil
}
