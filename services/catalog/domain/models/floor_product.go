package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var tenThousand = decimal.NewFromInt(10000)

// FloorProduct is a sellable tile line. Stock is counted in boxes.
type FloorProduct struct {
	ID              uuid.UUID
	SKU             string
	Name            string
	SideACm         decimal.Decimal
	SideBCm         decimal.Decimal
	PiecesPerBox    int
	AreaPerBoxM2    decimal.Decimal // derived from the three geometry fields
	Finish          Finish
	CollectionColor string
	PricePerM2      decimal.Decimal
	StockBoxes      int
	MinStockBoxes   int
	Active          bool
	UpdatedAt       time.Time
}

// AreaPerBox returns sideA*sideB*pieces/10000, the m² covered by one box.
func AreaPerBox(sideACm, sideBCm decimal.Decimal, piecesPerBox int) decimal.Decimal {
	return sideACm.Mul(sideBCm).Mul(decimal.NewFromInt(int64(piecesPerBox))).Div(tenThousand)
}

// RecomputeArea refreshes AreaPerBoxM2 from the current geometry.
func (p *FloorProduct) RecomputeArea() {
	p.AreaPerBoxM2 = AreaPerBox(p.SideACm, p.SideBCm, p.PiecesPerBox)
}

// Clone returns a copy safe to hand out of a repository.
func (p *FloorProduct) Clone() *FloorProduct {
	c := *p
	return &c
}

// FloorProductInput carries the fields required to create a floor product.
type FloorProductInput struct {
	SKU             string
	Name            string
	SideACm         decimal.Decimal
	SideBCm         decimal.Decimal
	PiecesPerBox    int
	Finish          Finish
	CollectionColor string
	PricePerM2      decimal.Decimal
	StockBoxes      int
	MinStockBoxes   int
	Active          bool
}

// FloorProductPatch is a partial update; nil fields are left unchanged.
// Stock is not patchable here: it moves through the inventory ledger.
type FloorProductPatch struct {
	SKU             *string
	Name            *string
	SideACm         *decimal.Decimal
	SideBCm         *decimal.Decimal
	PiecesPerBox    *int
	Finish          *Finish
	CollectionColor *string
	PricePerM2      *decimal.Decimal
	MinStockBoxes   *int
	Active          *bool
}

// TouchesGeometry reports whether the patch changes any area input.
func (p FloorProductPatch) TouchesGeometry() bool {
	return p.SideACm != nil || p.SideBCm != nil || p.PiecesPerBox != nil
}

// Apply merges the patch into product. Area is recomputed from the merged
// values when any geometry field is present.
func (p FloorProductPatch) Apply(product *FloorProduct) {
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.SideACm != nil {
		product.SideACm = *p.SideACm
	}
	if p.SideBCm != nil {
		product.SideBCm = *p.SideBCm
	}
	if p.PiecesPerBox != nil {
		product.PiecesPerBox = *p.PiecesPerBox
	}
	if p.Finish != nil {
		product.Finish = *p.Finish
	}
	if p.CollectionColor != nil {
		product.CollectionColor = *p.CollectionColor
	}
	if p.PricePerM2 != nil {
		product.PricePerM2 = *p.PricePerM2
	}
	if p.MinStockBoxes != nil {
		product.MinStockBoxes = *p.MinStockBoxes
	}
	if p.Active != nil {
		product.Active = *p.Active
	}
	if p.TouchesGeometry() {
		product.RecomputeArea()
	}
}
