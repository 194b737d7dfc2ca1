// Package services holds the pure quote computations: box counts, subtotals,
// accessory suggestions, approval checks, totals and the customer message.
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComputeRequiredBoxes inflates the requested area by the loss factor and
// counts the whole boxes needed to cover it.
func ComputeRequiredBoxes(p *catalogmodels.FloorProduct, areaM2, lossPercent decimal.Decimal) (models.LineQuantities, error) {
	if !areaM2.IsPositive() {
		return models.LineQuantities{}, fmt.Errorf("%w: area must be greater than zero, got %s", quotedomain.ErrInvalidQuantity, areaM2)
	}
	if lossPercent.IsNegative() {
		return models.LineQuantities{}, fmt.Errorf("%w: loss percent must not be negative, got %s", quotedomain.ErrInvalidQuantity, lossPercent)
	}
	if !p.AreaPerBoxM2.IsPositive() {
		return models.LineQuantities{}, fmt.Errorf("%w: %s has no box area", quotedomain.ErrInvalidQuantity, p.Name)
	}

	withLoss := areaM2.Mul(one.Add(lossPercent.Div(hundred)))
	return models.LineQuantities{
		AreaWithLossM2: withLoss,
		RequiredBoxes:  ceilDiv(withLoss, p.AreaPerBoxM2),
	}, nil
}

// ComputeLineSubtotal prices the loss-inflated area, not the boxes purchased.
func ComputeLineSubtotal(p *catalogmodels.FloorProduct, areaM2, lossPercent decimal.Decimal) (decimal.Decimal, error) {
	q, err := ComputeRequiredBoxes(p, areaM2, lossPercent)
	if err != nil {
		return decimal.Zero, err
	}
	return q.AreaWithLossM2.Mul(p.PricePerM2), nil
}

// ComputeLine builds a fully priced quote line.
func ComputeLine(p *catalogmodels.FloorProduct, areaM2, lossPercent decimal.Decimal) (models.Line, error) {
	q, err := ComputeRequiredBoxes(p, areaM2, lossPercent)
	if err != nil {
		return models.Line{}, err
	}
	return models.Line{
		Product:         p,
		RequestedAreaM2: areaM2,
		LossPercent:     lossPercent,
		AreaWithLossM2:  q.AreaWithLossM2,
		RequiredBoxes:   q.RequiredBoxes,
		Subtotal:        q.AreaWithLossM2.Mul(p.PricePerM2),
	}, nil
}

// PriceAccessory builds an accessory line for a positive quantity.
func PriceAccessory(a *catalogmodels.Accessory, quantity int) (models.AccessoryLine, error) {
	if quantity <= 0 {
		return models.AccessoryLine{}, fmt.Errorf("%w: %s quantity must be positive, got %d", quotedomain.ErrInvalidQuantity, a.Name, quantity)
	}
	return models.AccessoryLine{
		Accessory: a,
		Quantity:  quantity,
		Subtotal:  a.PricePerUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// ComputeTotals sums the quote. Total area is the loss-inflated area.
func ComputeTotals(lines []models.Line, accessories []models.AccessoryLine, freight, discount decimal.Decimal) models.Totals {
	t := models.Totals{
		TotalAreaM2:      decimal.Zero,
		ProductsValue:    decimal.Zero,
		AccessoriesValue: decimal.Zero,
		Freight:          freight,
		Discount:         discount,
	}
	for _, l := range lines {
		t.TotalAreaM2 = t.TotalAreaM2.Add(l.AreaWithLossM2)
		t.ProductsValue = t.ProductsValue.Add(l.Subtotal)
	}
	for _, a := range accessories {
		t.AccessoriesValue = t.AccessoriesValue.Add(a.Subtotal)
	}
	t.FinalValue = t.ProductsValue.Add(t.AccessoriesValue).Add(freight).Sub(discount)
	return t
}

// ceilDiv returns ceil(a/b) for non-negative a and positive b without
// rounding the quotient first.
func ceilDiv(a, b decimal.Decimal) int {
	q, r := a.QuoRem(b, 0)
	if r.IsPositive() {
		q = q.Add(one)
	}
	return int(q.IntPart())
}
