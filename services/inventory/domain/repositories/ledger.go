package repositories

import (
	"context"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

// ApplyFunc computes the new stock level of product for movement m. The store
// passes the level as it stands after every earlier movement of the same batch.
type ApplyFunc func(product catalogmodels.Product, m *models.Movement) (int, error)

// LedgerStore owns stock levels and the movement history.
//
// Commit is the single serialization point for stock mutation: it locks every
// referenced product, calls apply in batch order, then writes the new levels
// and appends the movements as one unit of work. If apply or any write fails,
// nothing is persisted. Commit fills Seq, ProductSKU, ProductName,
// PreviousStock, NewStock and MinStock on each movement.
type LedgerStore interface {
	Commit(ctx context.Context, movements []*models.Movement, apply ApplyFunc) error

	// Product returns the current state of a product. Returns ErrProductNotFound.
	Product(ctx context.Context, ref catalogmodels.ProductRef) (catalogmodels.Product, error)

	// Movements returns matching movements newest first by CreatedAt. Movements
	// sharing a CreatedAt keep insertion order (Seq ascending).
	Movements(ctx context.Context, filter models.MovementFilter) ([]*models.Movement, error)
}
