package services

import (
	"context"

	"github.com/ghuser/porcelarte/pkg/app"
	"github.com/ghuser/porcelarte/pkg/cache"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the inventory context.
type Services struct {
	Ledger *LedgerService
}

// New wires the ledger with the PostgreSQL store. Movements are published to
// the event bus inside the commit transaction.
func New(a *app.Application) *Services {
	opts := []Option{WithLogger(a.Logger)}
	if a.Redis != nil {
		opts = append(opts, WithProductInvalidator(productCacheInvalidator{cache.NewProductCache(a.Redis)}))
	}
	return &Services{
		Ledger: NewLedgerService(postgres.NewLedgerStore(a.Db, a.EventBus), opts...),
	}
}

type productCacheInvalidator struct {
	cache *cache.ProductCache
}

func (i productCacheInvalidator) InvalidateProduct(ctx context.Context, ref catalogmodels.ProductRef) error {
	return i.cache.Delete(ctx, string(ref.Kind), ref.ID)
}
