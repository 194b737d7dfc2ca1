package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accessory is a sellable non-tile item. Stock is counted in units.
type Accessory struct {
	ID            uuid.UUID
	SKU           string
	Name          string
	Kind          AccessoryKind
	PricePerUnit  decimal.Decimal
	StockUnits    int
	MinStockUnits int
	Active        bool
	CoverageNote  string // e.g. "4-5 m² por saco"
	UpdatedAt     time.Time
}

// Clone returns a copy safe to hand out of a repository.
func (a *Accessory) Clone() *Accessory {
	c := *a
	return &c
}

// AccessoryInput carries the fields required to create an accessory.
type AccessoryInput struct {
	SKU           string
	Name          string
	Kind          AccessoryKind
	PricePerUnit  decimal.Decimal
	StockUnits    int
	MinStockUnits int
	Active        bool
	CoverageNote  string
}

// AccessoryPatch is a partial update; nil fields are left unchanged.
type AccessoryPatch struct {
	SKU           *string
	Name          *string
	Kind          *AccessoryKind
	PricePerUnit  *decimal.Decimal
	MinStockUnits *int
	Active        *bool
	CoverageNote  *string
}

// Apply merges the patch into accessory.
func (p AccessoryPatch) Apply(a *Accessory) {
	if p.SKU != nil {
		a.SKU = *p.SKU
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Kind != nil {
		a.Kind = *p.Kind
	}
	if p.PricePerUnit != nil {
		a.PricePerUnit = *p.PricePerUnit
	}
	if p.MinStockUnits != nil {
		a.MinStockUnits = *p.MinStockUnits
	}
	if p.Active != nil {
		a.Active = *p.Active
	}
	if p.CoverageNote != nil {
		a.CoverageNote = *p.CoverageNote
	}
}
