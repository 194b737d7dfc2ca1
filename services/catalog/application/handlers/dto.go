package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// FloorProductResponse is the wire form of a floor product.
type FloorProductResponse struct {
	ID              uuid.UUID       `json:"id"               example:"123e4567-e89b-12d3-a456-426614174000"`
	SKU             string          `json:"sku"              example:"CALA62x120-P"`
	Name            string          `json:"name"             example:"Calacata Bianco 62×120"`
	SideACm         decimal.Decimal `json:"side_a_cm"        swaggertype:"string" example:"62"`
	SideBCm         decimal.Decimal `json:"side_b_cm"        swaggertype:"string" example:"120"`
	PiecesPerBox    int             `json:"pieces_per_box"   example:"2"`
	AreaPerBoxM2    decimal.Decimal `json:"area_per_box_m2"  swaggertype:"string" example:"1.488"`
	Finish          models.Finish   `json:"finish"           example:"polished"`
	CollectionColor string          `json:"collection_color" example:"Calacata"`
	PricePerM2      decimal.Decimal `json:"price_per_m2"     swaggertype:"string" example:"129.9"`
	StockBoxes      int             `json:"stock_boxes"      example:"80"`
	MinStockBoxes   int             `json:"min_stock_boxes"  example:"20"`
	Active          bool            `json:"active"           example:"true"`
	UpdatedAt       time.Time       `json:"updated_at"       example:"2025-03-10T09:00:00Z"`
} // @name FloorProductResponse

func toFloorResponse(p *models.FloorProduct) FloorProductResponse {
	return FloorProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		SideACm:         p.SideACm,
		SideBCm:         p.SideBCm,
		PiecesPerBox:    p.PiecesPerBox,
		AreaPerBoxM2:    p.AreaPerBoxM2,
		Finish:          p.Finish,
		CollectionColor: p.CollectionColor,
		PricePerM2:      p.PricePerM2,
		StockBoxes:      p.StockBoxes,
		MinStockBoxes:   p.MinStockBoxes,
		Active:          p.Active,
		UpdatedAt:       p.UpdatedAt,
	}
}

// AccessoryResponse is the wire form of an accessory.
type AccessoryResponse struct {
	ID            uuid.UUID            `json:"id"              example:"123e4567-e89b-12d3-a456-426614174000"`
	SKU           string               `json:"sku"             example:"ARG-ACIII-20"`
	Name          string               `json:"name"            example:"Argamassa AC-III 20kg"`
	Kind          models.AccessoryKind `json:"kind"            example:"mortar"`
	PricePerUnit  decimal.Decimal      `json:"price_per_unit"  swaggertype:"string" example:"32.9"`
	StockUnits    int                  `json:"stock_units"     example:"150"`
	MinStockUnits int                  `json:"min_stock_units" example:"50"`
	Active        bool                 `json:"active"          example:"true"`
	CoverageNote  string               `json:"coverage_note"   example:"4-5 m² por saco"`
	UpdatedAt     time.Time            `json:"updated_at"      example:"2025-03-10T09:00:00Z"`
} // @name AccessoryResponse

func toAccessoryResponse(a *models.Accessory) AccessoryResponse {
	return AccessoryResponse{
		ID:            a.ID,
		SKU:           a.SKU,
		Name:          a.Name,
		Kind:          a.Kind,
		PricePerUnit:  a.PricePerUnit,
		StockUnits:    a.StockUnits,
		MinStockUnits: a.MinStockUnits,
		Active:        a.Active,
		CoverageNote:  a.CoverageNote,
		UpdatedAt:     a.UpdatedAt,
	}
}

func activeOrDefault(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}
