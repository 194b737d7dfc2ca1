package services

import (
	"math"
	"sort"

	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// BuildReplenishment selects active products with stock <= minimum and
// suggests buying up to twice the minimum. The result is ordered by
// stock/minimum ascending; a zero minimum sorts after every positive one.
func BuildReplenishment(products []models.Product) []models.ReplenishmentSuggestion {
	out := make([]models.ReplenishmentSuggestion, 0)
	for _, p := range products {
		if !p.Active() {
			continue
		}
		cur, minimum := p.Stock()
		if cur > minimum {
			continue
		}
		out = append(out, models.ReplenishmentSuggestion{
			Product:           p,
			CurrentStock:      cur,
			MinStock:          minimum,
			SuggestedPurchase: max(minimum*2-cur, 0),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return criticality(out[i]) < criticality(out[j])
	})
	return out
}

func criticality(s models.ReplenishmentSuggestion) float64 {
	if s.MinStock == 0 {
		return math.Inf(1)
	}
	return float64(s.CurrentStock) / float64(s.MinStock)
}
