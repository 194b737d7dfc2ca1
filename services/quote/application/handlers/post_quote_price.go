package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/pkg/errhttp"
	"github.com/ghuser/porcelarte/pkg/httpx"
	pkgvalidator "github.com/ghuser/porcelarte/pkg/validator"
	appsvcs "github.com/ghuser/porcelarte/services/quote/application/services"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

// QuoteLineRequest asks for a floor product over an area.
type QuoteLineRequest struct {
	ProductID   string           `json:"product_id"   validate:"required,uuid" example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	AreaM2      decimal.Decimal  `json:"area_m2"      swaggertype:"string" example:"50"`
	LossPercent *decimal.Decimal `json:"loss_percent" swaggertype:"string" example:"10"`
} // @name QuoteLineRequest

// QuoteAccessoryRequest adds an accessory with an explicit quantity.
type QuoteAccessoryRequest struct {
	AccessoryID string `json:"accessory_id" validate:"required,uuid" example:"9a7e2c10-5d4b-4c3a-8e2f-0b1c2d3e4f50"`
	Quantity    int    `json:"quantity"     validate:"gt=0"          example:"13"`
} // @name QuoteAccessoryRequest

// PriceQuoteRequest is the request body for POST /quotes/price.
type PriceQuoteRequest struct {
	Customer           CustomerDTO             `json:"customer"`
	Lines              []QuoteLineRequest      `json:"lines"               validate:"required,min=1,dive"`
	Accessories        []QuoteAccessoryRequest `json:"accessories"         validate:"dive"`
	IncludeSuggestions bool                    `json:"include_suggestions" example:"true"`
	Freight            decimal.Decimal         `json:"freight"             swaggertype:"string" example:"150"`
	Discount           decimal.Decimal         `json:"discount"            swaggertype:"string" example:"100"`
	LeadTimeDays       *int                    `json:"lead_time_days"      validate:"omitempty,gte=0" example:"7"`
	Notes              string                  `json:"notes"               validate:"max=1000" example:"Entrega pela manhã"`
} // @name PriceQuoteRequest

// PostQuotePriceHandler handles POST /quotes/price requests.
type PostQuotePriceHandler struct {
	svc *appsvcs.Services
}

// NewPostQuotePriceHandler returns a PostQuotePriceHandler backed by the given services.
func NewPostQuotePriceHandler(svc *appsvcs.Services) *PostQuotePriceHandler {
	return &PostQuotePriceHandler{svc: svc}
}

// Execute prices a quote without touching stock.
//
//	@Summary		Price quote
//	@Description	Computes boxes, subtotals, accessory suggestions and the customer message.
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PriceQuoteRequest	true	"Quote"
//	@Success		200		{object}	QuoteResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/quotes/price [post]
func (h *PostQuotePriceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PriceQuoteRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.QuoteRequest{
		Customer: models.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			City:  req.Customer.City,
		},
		Lines:              make([]appsvcs.LineRequest, len(req.Lines)),
		Accessories:        make([]appsvcs.AccessoryRequest, len(req.Accessories)),
		IncludeSuggestions: req.IncludeSuggestions,
		Freight:            req.Freight,
		Discount:           req.Discount,
		LeadTimeDays:       req.LeadTimeDays,
		Notes:              req.Notes,
	}
	for i, l := range req.Lines {
		in.Lines[i] = appsvcs.LineRequest{
			ProductID:   uuid.MustParse(l.ProductID),
			AreaM2:      l.AreaM2,
			LossPercent: l.LossPercent,
		}
	}
	for i, a := range req.Accessories {
		in.Accessories[i] = appsvcs.AccessoryRequest{
			AccessoryID: uuid.MustParse(a.AccessoryID),
			Quantity:    a.Quantity,
		}
	}

	q, err := h.svc.Quotes.Price(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toQuoteResponse(q))
}
