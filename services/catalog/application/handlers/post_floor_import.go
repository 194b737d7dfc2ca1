package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
)

const maxImportBytes = 5 << 20

// ImportResultResponse summarizes a CSV import.
type ImportResultResponse struct {
	Success bool     `json:"success" example:"false"`
	Created int      `json:"created" example:"3"`
	Updated int      `json:"updated" example:"1"`
	Errors  []string `json:"errors"  example:"Linha 4: Preço inválido"`
} // @name ImportResultResponse

// PostFloorImportHandler handles POST /catalog/floor/import requests.
type PostFloorImportHandler struct {
	svc *appsvcs.Services
}

// NewPostFloorImportHandler returns a PostFloorImportHandler backed by the given services.
func NewPostFloorImportHandler(svc *appsvcs.Services) *PostFloorImportHandler {
	return &PostFloorImportHandler{svc: svc}
}

// Execute upserts floor products from a CSV document.
//
//	@Summary		Import floor products
//	@Description	Upserts floor products by SKU from a CSV body. Bad rows are reported and skipped.
//	@Tags			catalog
//	@Accept			plain
//	@Produce		json
//	@Param			request	body		string	true	"CSV document with the fixed header"
//	@Success		200		{object}	ImportResultResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/catalog/floor/import [post]
func (h *PostFloorImportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "csv document too large")
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	actorID, err := auth.ActorIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	result, err := h.svc.Catalog.ImportFloorCSV(r.Context(), actorID, string(body))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ImportResultResponse{
		Success: result.Success,
		Created: result.Created,
		Updated: result.Updated,
		Errors:  result.Errors,
	})
}
