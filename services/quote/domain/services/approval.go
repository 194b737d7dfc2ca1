package services

import (
	"fmt"

	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

// ValidateApproval checks every line against its product snapshot. It never
// touches stock; committing the exits is a separate step.
func ValidateApproval(lines []models.ApprovalLine) models.ApprovalDecision {
	errs := make([]string, 0)
	for _, l := range lines {
		p := l.Product
		switch {
		case !p.Active:
			errs = append(errs, fmt.Sprintf("%s está inativo", p.Name))
		case p.StockBoxes < l.RequiredBoxes:
			errs = append(errs, fmt.Sprintf("%s: precisa de %d caixas, disponível %d", p.Name, l.RequiredBoxes, p.StockBoxes))
		}
	}
	return models.ApprovalDecision{Approved: len(errs) == 0, Errors: errs}
}
