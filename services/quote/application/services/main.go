package services

import (
	"github.com/ghuser/porcelarte/pkg/app"
	catalogservices "github.com/ghuser/porcelarte/services/catalog/application/services"
	"github.com/ghuser/porcelarte/services/catalog/infrastructure/persistence/postgres"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
)

// Services is the application-layer service container for the quote context.
type Services struct {
	Quotes *QuoteService
}

// New wires quotes onto the catalog for pricing and the inventory ledger for
// committing approved exits.
func New(a *app.Application, catalog *catalogservices.Services, inventory *inventoryservices.Services) *Services {
	return &Services{
		Quotes: NewQuoteService(
			catalog.Catalog,
			postgres.NewFloorRepository(a.Db),
			inventory.Ledger,
			SettingsFromConfig(a.Config),
			a.Logger,
		),
	}
}
