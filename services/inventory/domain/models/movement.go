package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// MovementType is the effect a movement has on stock.
type MovementType string

const (
	MovementEntry      MovementType = "entry"
	MovementExit       MovementType = "exit"
	MovementAdjustment MovementType = "adjustment"
)

// ParseMovementType accepts the canonical names and the "entrada"/"saida"/"ajuste" spellings.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry", "entrada":
		return MovementEntry, nil
	case "exit", "saida", "saída":
		return MovementExit, nil
	case "adjustment", "ajuste":
		return MovementAdjustment, nil
	default:
		return "", fmt.Errorf("unknown movement type %q", s)
	}
}

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	switch t {
	case MovementEntry, MovementExit, MovementAdjustment:
		return true
	default:
		return false
	}
}

// Movement is an immutable ledger entry. PreviousStock, NewStock and Seq are
// assigned by the store when the movement is committed.
type Movement struct {
	ID            uuid.UUID
	Seq           int64
	Product       catalogmodels.ProductRef
	ProductSKU    string
	ProductName   string
	Type          MovementType
	Quantity      int
	Reason        string
	ActorID       uuid.UUID
	PreviousStock int
	NewStock      int
	MinStock      int
	CreatedAt     time.Time
}

// MovementFilter narrows history listings. Zero values match everything.
type MovementFilter struct {
	Kind      catalogmodels.ProductKind
	ProductID uuid.UUID
	Type      MovementType
	ActorID   uuid.UUID
	Since     time.Time
	Until     time.Time
	// Search matches product name, SKU or reason, case-insensitively.
	Search string
}

// Matches reports whether m passes every set criterion.
func (f MovementFilter) Matches(m *Movement) bool {
	if f.Kind != "" && m.Product.Kind != f.Kind {
		return false
	}
	if f.ProductID != uuid.Nil && m.Product.ID != f.ProductID {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.ActorID != uuid.Nil && m.ActorID != f.ActorID {
		return false
	}
	if !f.Since.IsZero() && m.CreatedAt.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && m.CreatedAt.After(f.Until) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.ProductName), q) &&
			!strings.Contains(strings.ToLower(m.ProductSKU), q) &&
			!strings.Contains(strings.ToLower(m.Reason), q) {
			return false
		}
	}
	return true
}
