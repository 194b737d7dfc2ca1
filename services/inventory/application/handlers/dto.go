package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient stock"`
} // @name ErrorResponse

// MovementResponse is the wire form of a ledger entry.
type MovementResponse struct {
	ID            uuid.UUID `json:"id"             example:"123e4567-e89b-12d3-a456-426614174000"`
	ProductKind   string    `json:"product_kind"   example:"floor"`
	ProductID     uuid.UUID `json:"product_id"     example:"5b0c6a34-2f44-4d8e-9d71-0a6f2c1e0001"`
	ProductSKU    string    `json:"product_sku"    example:"CALA62x120-P"`
	ProductName   string    `json:"product_name"   example:"Calacata Bianco 62×120"`
	Type          string    `json:"type"           example:"exit"`
	Quantity      int       `json:"quantity"       example:"37"`
	Reason        string    `json:"reason"         example:"Orçamento 1a2b3c4d aprovado"`
	ActorID       uuid.UUID `json:"actor_id"       example:"8d6f1a2e-4b3c-4d5e-8f90-123456789abc"`
	PreviousStock int       `json:"previous_stock" example:"40"`
	NewStock      int       `json:"new_stock"      example:"3"`
	CreatedAt     time.Time `json:"created_at"     example:"2025-03-10T09:00:00Z"`
} // @name MovementResponse

func toMovementResponse(m *models.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductKind:   string(m.Product.Kind),
		ProductID:     m.Product.ID,
		ProductSKU:    m.ProductSKU,
		ProductName:   m.ProductName,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		ActorID:       m.ActorID,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		CreatedAt:     m.CreatedAt,
	}
}
