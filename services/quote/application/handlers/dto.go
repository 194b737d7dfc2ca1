package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product is inactive"`
} // @name ErrorResponse

// CustomerDTO identifies who a quote is for.
type CustomerDTO struct {
	Name  string `json:"name"  validate:"required,max=255" example:"Maria Souza"`
	Phone string `json:"phone" validate:"max=32"           example:"(11) 98765-4321"`
	City  string `json:"city"  validate:"max=120"          example:"Campinas"`
} // @name CustomerDTO

// QuoteLineResponse is one priced floor product.
type QuoteLineResponse struct {
	ProductID       uuid.UUID       `json:"product_id"        example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	SKU             string          `json:"sku"               example:"CALA62x120-P"`
	Name            string          `json:"name"              example:"Calacata Bianco 62×120"`
	RequestedAreaM2 decimal.Decimal `json:"requested_area_m2" swaggertype:"string" example:"50"`
	LossPercent     decimal.Decimal `json:"loss_percent"      swaggertype:"string" example:"10"`
	AreaWithLossM2  decimal.Decimal `json:"area_with_loss_m2" swaggertype:"string" example:"55"`
	RequiredBoxes   int             `json:"required_boxes"    example:"37"`
	PricePerM2      decimal.Decimal `json:"price_per_m2"      swaggertype:"string" example:"129.9"`
	Subtotal        decimal.Decimal `json:"subtotal"          swaggertype:"string" example:"7144.5"`
} // @name QuoteLineResponse

// QuoteAccessoryResponse is one priced accessory.
type QuoteAccessoryResponse struct {
	AccessoryID uuid.UUID       `json:"accessory_id" example:"9a7e2c10-5d4b-4c3a-8e2f-0b1c2d3e4f50"`
	Name        string          `json:"name"         example:"Argamassa AC-III 20kg"`
	Quantity    int             `json:"quantity"     example:"13"`
	Subtotal    decimal.Decimal `json:"subtotal"     swaggertype:"string" example:"427.7"`
} // @name QuoteAccessoryResponse

// SuggestionResponse is a suggested accessory quantity with its rationale.
type SuggestionResponse struct {
	AccessoryID       uuid.UUID `json:"accessory_id"       example:"9a7e2c10-5d4b-4c3a-8e2f-0b1c2d3e4f50"`
	Name              string    `json:"name"               example:"Rejunte Cinza 1kg"`
	Kind              string    `json:"kind"               example:"grout"`
	SuggestedQuantity int       `json:"suggested_quantity" example:"7"`
	Rationale         string    `json:"rationale"          example:"1kg para cada 8-10 m² (55.0 m²)"`
} // @name SuggestionResponse

// TotalsResponse is the financial summary of a quote.
type TotalsResponse struct {
	TotalAreaM2      decimal.Decimal `json:"total_area_m2"     swaggertype:"string" example:"55"`
	ProductsValue    decimal.Decimal `json:"products_value"    swaggertype:"string" example:"7144.5"`
	AccessoriesValue decimal.Decimal `json:"accessories_value" swaggertype:"string" example:"427.7"`
	Freight          decimal.Decimal `json:"freight"           swaggertype:"string" example:"150"`
	Discount         decimal.Decimal `json:"discount"          swaggertype:"string" example:"100"`
	FinalValue       decimal.Decimal `json:"final_value"       swaggertype:"string" example:"7622.2"`
} // @name TotalsResponse

// QuoteResponse is a priced quote and its customer message.
type QuoteResponse struct {
	ID           uuid.UUID                `json:"id"             example:"1a2b3c4d-0000-4000-8000-000000000000"`
	Customer     CustomerDTO              `json:"customer"`
	Lines        []QuoteLineResponse      `json:"lines"`
	Accessories  []QuoteAccessoryResponse `json:"accessories"`
	Suggestions  []SuggestionResponse     `json:"suggestions"`
	Totals       TotalsResponse           `json:"totals"`
	LeadTimeDays int                      `json:"lead_time_days" example:"7"`
	ValidUntil   time.Time                `json:"valid_until"    example:"2025-03-25T09:00:00Z"`
	Notes        string                   `json:"notes"          example:"Entrega pela manhã"`
	Status       string                   `json:"status"         example:"draft"`
	Message      string                   `json:"message"`
	WhatsAppURL  string                   `json:"whatsapp_url"   example:"https://wa.me/5511987654321?text=..."`
	CreatedAt    time.Time                `json:"created_at"     example:"2025-03-10T09:00:00Z"`
} // @name QuoteResponse

func toQuoteResponse(q *models.Quote) QuoteResponse {
	out := QuoteResponse{
		ID:          q.ID,
		Customer:    CustomerDTO{Name: q.Customer.Name, Phone: q.Customer.Phone, City: q.Customer.City},
		Lines:       make([]QuoteLineResponse, len(q.Lines)),
		Accessories: make([]QuoteAccessoryResponse, len(q.Accessories)),
		Suggestions: make([]SuggestionResponse, len(q.Suggestions)),
		Totals: TotalsResponse{
			TotalAreaM2:      q.Totals.TotalAreaM2,
			ProductsValue:    q.Totals.ProductsValue,
			AccessoriesValue: q.Totals.AccessoriesValue,
			Freight:          q.Totals.Freight,
			Discount:         q.Totals.Discount,
			FinalValue:       q.Totals.FinalValue,
		},
		LeadTimeDays: q.LeadTimeDays,
		ValidUntil:   q.ValidUntil,
		Notes:        q.Notes,
		Status:       string(q.Status),
		Message:      q.Message,
		WhatsAppURL:  q.WhatsAppURL,
		CreatedAt:    q.CreatedAt,
	}
	for i, l := range q.Lines {
		out.Lines[i] = QuoteLineResponse{
			ProductID:       l.Product.ID,
			SKU:             l.Product.SKU,
			Name:            l.Product.Name,
			RequestedAreaM2: l.RequestedAreaM2,
			LossPercent:     l.LossPercent,
			AreaWithLossM2:  l.AreaWithLossM2,
			RequiredBoxes:   l.RequiredBoxes,
			PricePerM2:      l.Product.PricePerM2,
			Subtotal:        l.Subtotal,
		}
	}
	for i, a := range q.Accessories {
		out.Accessories[i] = QuoteAccessoryResponse{
			AccessoryID: a.Accessory.ID,
			Name:        a.Accessory.Name,
			Quantity:    a.Quantity,
			Subtotal:    a.Subtotal,
		}
	}
	for i, s := range q.Suggestions {
		out.Suggestions[i] = SuggestionResponse{
			AccessoryID:       s.Accessory.ID,
			Name:              s.Accessory.Name,
			Kind:              string(s.Accessory.Kind),
			SuggestedQuantity: s.SuggestedQuantity,
			Rationale:         s.Rationale,
		}
	}
	return out
}
