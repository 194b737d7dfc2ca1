package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// FloorProductRepository is the persistence interface for floor products.
// The domain layer owns this interface; infrastructure implements it.
type FloorProductRepository interface {
	// Create stores a new product. Returns ErrSKUAlreadyExists when the SKU is taken.
	Create(ctx context.Context, p *models.FloorProduct) error

	// Update overwrites an existing product's descriptive fields. The stock
	// level is never written here; the inventory ledger owns it, and Update
	// refreshes p's stock with the committed level.
	// Returns ErrProductNotFound or ErrSKUAlreadyExists.
	Update(ctx context.Context, p *models.FloorProduct) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.FloorProduct, error)
	GetBySKU(ctx context.Context, sku string) (*models.FloorProduct, error)

	// List returns matching products ordered by name.
	List(ctx context.Context, filter models.FloorProductFilter) ([]*models.FloorProduct, error)
}

// AccessoryRepository is the persistence interface for accessories.
type AccessoryRepository interface {
	Create(ctx context.Context, a *models.Accessory) error
	// Update follows FloorProductRepository.Update: stock is left untouched.
	Update(ctx context.Context, a *models.Accessory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Accessory, error)
	List(ctx context.Context, filter models.AccessoryFilter) ([]*models.Accessory, error)
}
