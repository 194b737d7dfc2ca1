// Package services contains stateless domain services for the catalog bounded context.
package services

import (
	"fmt"
	"strings"

	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// ValidateFloorProduct enforces the structural rules of a floor product:
//   - SKU and name are non-empty
//   - both sides and the piece count are positive, so the area per box is positive
//   - price and stock levels are non-negative
//   - finish is matte or polished
func ValidateFloorProduct(p *models.FloorProduct) error {
	if p == nil {
		return fmt.Errorf("floor product cannot be nil")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("sku is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !p.SideACm.IsPositive() || !p.SideBCm.IsPositive() {
		return fmt.Errorf("tile sides must be positive")
	}
	if p.PiecesPerBox <= 0 {
		return fmt.Errorf("pieces per box must be positive")
	}
	if !p.AreaPerBoxM2.IsPositive() {
		return fmt.Errorf("area per box must be positive")
	}
	if !p.Finish.Valid() {
		return fmt.Errorf("finish must be matte or polished")
	}
	if p.PricePerM2.IsNegative() {
		return fmt.Errorf("price per m² must not be negative")
	}
	if p.StockBoxes < 0 || p.MinStockBoxes < 0 {
		return fmt.Errorf("stock levels must not be negative")
	}
	return nil
}

// ValidateAccessory enforces the structural rules of an accessory.
func ValidateAccessory(a *models.Accessory) error {
	if a == nil {
		return fmt.Errorf("accessory cannot be nil")
	}
	if strings.TrimSpace(a.SKU) == "" {
		return fmt.Errorf("sku is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(string(a.Kind)) == "" {
		return fmt.Errorf("kind is required")
	}
	if a.PricePerUnit.IsNegative() {
		return fmt.Errorf("unit price must not be negative")
	}
	if a.StockUnits < 0 || a.MinStockUnits < 0 {
		return fmt.Errorf("stock levels must not be negative")
	}
	return nil
}
