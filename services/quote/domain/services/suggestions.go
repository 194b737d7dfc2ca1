package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

type coverageRule struct {
	m2PerUnit decimal.Decimal
	rationale string // formatted with the total area, one decimal
}

var coverageRules = map[catalogmodels.AccessoryKind]coverageRule{
	catalogmodels.AccessoryMortar:      {decimal.RequireFromString("4.5"), "1 saco para cada 4-5 m² (%s m²)"},
	catalogmodels.AccessoryGrout:       {decimal.NewFromInt(9), "1kg para cada 8-10 m² (%s m²)"},
	catalogmodels.AccessorySpacerWedge: {decimal.RequireFromString("17.5"), "1 pacote para cada 15-20 m² (%s m²)"},
	catalogmodels.AccessorySpacerCross: {decimal.NewFromInt(11), "1 pacote para cada 10-12 m² (%s m²)"},
}

// SuggestAccessories proposes a quantity for each active accessory whose kind
// has a coverage rule. Zero quantities are dropped and input order is kept.
func SuggestAccessories(accessories []*catalogmodels.Accessory, totalAreaM2 decimal.Decimal) []models.AccessorySuggestion {
	out := make([]models.AccessorySuggestion, 0, len(accessories))
	if totalAreaM2.IsNegative() {
		return out
	}

	for _, a := range accessories {
		if !a.Active {
			continue
		}

		var (
			qty       int
			rationale string
		)
		switch a.Kind {
		case catalogmodels.AccessoryBaseboard:
			// Square-room approximation, not a measured perimeter.
			perimeter := 4 * math.Sqrt(totalAreaM2.InexactFloat64())
			qty = int(math.Ceil(perimeter))
			rationale = fmt.Sprintf("Estimativa baseada no perímetro (~%.1fm)", perimeter)
		default:
			rule, ok := coverageRules[a.Kind]
			if !ok {
				continue
			}
			qty = ceilDiv(totalAreaM2, rule.m2PerUnit)
			rationale = fmt.Sprintf(rule.rationale, totalAreaM2.StringFixed(1))
		}

		if qty <= 0 {
			continue
		}
		out = append(out, models.AccessorySuggestion{
			Accessory:         a,
			SuggestedQuantity: qty,
			Rationale:         rationale,
		})
	}
	return out
}
