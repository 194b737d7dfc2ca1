package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	domainsvcs "github.com/ghuser/porcelarte/services/catalog/domain/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFloorCSVHandler handles GET /catalog/floor/export requests.
type ExportFloorCSVHandler struct {
	svc *appsvcs.Services
}

// NewExportFloorCSVHandler returns an ExportFloorCSVHandler backed by the given services.
func NewExportFloorCSVHandler(svc *appsvcs.Services) *ExportFloorCSVHandler {
	return &ExportFloorCSVHandler{svc: svc}
}

// Execute downloads every floor product as CSV.
//
//	@Summary	Export floor products as CSV
//	@Tags		catalog
//	@Produce	plain
//	@Success	200	{string}	string	"CSV document"
//	@Failure	500	{object}	ErrorResponse
//	@Router		/catalog/floor/export [get]
func (h *ExportFloorCSVHandler) Execute(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Catalog.ExportFloorCSV(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Download(w, "text/csv; charset=utf-8", domainsvcs.ExportFileName(time.Now(), "csv"), []byte(doc))
}

// ExportFloorXLSXHandler handles GET /catalog/floor/export.xlsx requests.
type ExportFloorXLSXHandler struct {
	svc *appsvcs.Services
}

// NewExportFloorXLSXHandler returns an ExportFloorXLSXHandler backed by the given services.
func NewExportFloorXLSXHandler(svc *appsvcs.Services) *ExportFloorXLSXHandler {
	return &ExportFloorXLSXHandler{svc: svc}
}

// Execute downloads every floor product as a spreadsheet.
//
//	@Summary	Export floor products as XLSX
//	@Tags		catalog
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}		file	"XLSX workbook"
//	@Failure	500	{object}	ErrorResponse
//	@Router		/catalog/floor/export.xlsx [get]
func (h *ExportFloorXLSXHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.Catalog.ExportFloorXLSX(r.Context(), &buf); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Download(w, xlsxContentType, domainsvcs.ExportFileName(time.Now(), "xlsx"), buf.Bytes())
}
