// Package services contains the pure stock rules of the inventory bounded context.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

// ApplyMovement returns the stock level after a movement. Entries add, exits
// subtract and adjustments set the level absolutely. The result never drops
// below zero.
func ApplyMovement(current int, t models.MovementType, quantity int) int {
	next := current
	switch t {
	case models.MovementEntry:
		next = current + quantity
	case models.MovementExit:
		next = current - quantity
	case models.MovementAdjustment:
		next = quantity
	}
	return max(0, next)
}

// Classify maps a stock level to a status. Precedence: inactive, then
// insufficient (when requested is given and exceeds level), out of stock,
// low (level <= minimum), ok. unit is the counting unit shown in messages.
func Classify(level, minimum int, active bool, requested *int, unit string) models.StatusInfo {
	switch {
	case !active:
		return models.StatusInfo{Status: models.StatusInactive, Message: "Produto inativo"}
	case requested != nil && *requested > level:
		return models.StatusInfo{
			Status:  models.StatusInsufficient,
			Message: fmt.Sprintf("Estoque insuficiente: precisa de %d %s, disponível %d", *requested, unit, level),
		}
	case level == 0:
		return models.StatusInfo{Status: models.StatusOutOfStock, Message: "Sem estoque"}
	case level <= minimum:
		return models.StatusInfo{
			Status:  models.StatusLow,
			Message: fmt.Sprintf("Estoque baixo: %d %s (mín: %d)", level, unit, minimum),
		}
	default:
		return models.StatusInfo{Status: models.StatusOK, Message: fmt.Sprintf("Estoque OK: %d %s", level, unit)}
	}
}

// ClassifyProduct applies Classify to a catalog product using its kind's unit.
func ClassifyProduct(p catalogmodels.Product, requested *int) models.StatusInfo {
	level, minimum := p.Stock()
	return Classify(level, minimum, p.Active(), requested, p.Unit())
}

// ValidateMovement checks a movement before it reaches the store.
func ValidateMovement(m *models.Movement) error {
	if m == nil {
		return fmt.Errorf("%w: movement cannot be nil", inventorydomain.ErrInvalidMovement)
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: got %d", inventorydomain.ErrInvalidQuantity, m.Quantity)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("%w: unknown movement type %q", inventorydomain.ErrInvalidMovement, m.Type)
	}
	if m.Product.Kind != catalogmodels.KindFloor && m.Product.Kind != catalogmodels.KindAccessory {
		return fmt.Errorf("%w: unknown product kind %q", inventorydomain.ErrInvalidMovement, m.Product.Kind)
	}
	if m.Product.ID == uuid.Nil {
		return fmt.Errorf("%w: product id is required", inventorydomain.ErrInvalidMovement)
	}
	if strings.TrimSpace(m.Reason) == "" {
		return fmt.Errorf("%w: reason is required", inventorydomain.ErrInvalidMovement)
	}
	if m.ActorID == uuid.Nil {
		return fmt.Errorf("%w: actor is required", inventorydomain.ErrInvalidMovement)
	}
	return nil
}
