package services

import (
	"github.com/ghuser/porcelarte/pkg/app"
	"github.com/ghuser/porcelarte/pkg/cache"
	"github.com/ghuser/porcelarte/services/catalog/infrastructure/persistence/postgres"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalog services with the PostgreSQL repositories and, when
// Redis is available, the product read-model cache. Stock written by CSV
// imports goes through the inventory ledger.
func New(a *app.Application) *Services {
	var productCache *cache.ProductCache
	if a.Redis != nil {
		productCache = cache.NewProductCache(a.Redis)
	}
	return &Services{
		Catalog: NewCatalogService(
			postgres.NewFloorRepository(a.Db),
			postgres.NewAccessoryRepository(a.Db),
			productCache,
			a.Logger,
			WithStockSetter(inventoryservices.New(a).Ledger),
		),
	}
}
