package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/database"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

const accessoryColumns = `id, sku, name, kind, price_per_unit, stock_units, min_stock_units, active,
	coverage_note, updated_at`

// AccessoryRepository implements repositories.AccessoryRepository against PostgreSQL.
type AccessoryRepository struct {
	db *database.Database
}

// NewAccessoryRepository returns an AccessoryRepository backed by the given pool.
func NewAccessoryRepository(db *database.Database) *AccessoryRepository {
	return &AccessoryRepository{db: db}
}

func (r *AccessoryRepository) Create(ctx context.Context, a *models.Accessory) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO accessories (`+accessoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.SKU, a.Name, string(a.Kind), a.PricePerUnit, a.StockUnits, a.MinStockUnits, a.Active,
		a.CoverageNote, a.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return catalogdomain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("insert accessory: %w", err)
	}
	return nil
}

// Update leaves stock_units to the ledger and reads the committed level back into a.
func (r *AccessoryRepository) Update(ctx context.Context, a *models.Accessory) error {
	err := r.db.DB().QueryRowContext(ctx, `
		UPDATE accessories SET
			sku = $2, name = $3, kind = $4, price_per_unit = $5,
			min_stock_units = $6, active = $7, coverage_note = $8, updated_at = $9
		WHERE id = $1
		RETURNING stock_units`,
		a.ID, a.SKU, a.Name, string(a.Kind), a.PricePerUnit, a.MinStockUnits, a.Active,
		a.CoverageNote, a.UpdatedAt,
	).Scan(&a.StockUnits)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return catalogdomain.ErrProductNotFound
	case database.IsUniqueViolation(err):
		return catalogdomain.ErrSKUAlreadyExists
	case err != nil:
		return fmt.Errorf("update accessory: %w", err)
	}
	return nil
}

func (r *AccessoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Accessory, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+accessoryColumns+` FROM accessories WHERE id = $1`, id)
	a, err := scanAccessory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AccessoryRepository) List(ctx context.Context, f models.AccessoryFilter) ([]*models.Accessory, error) {
	var w database.Where
	if f.Search != "" {
		pattern := database.LikePattern(f.Search)
		w.Add("(name ILIKE ? OR sku ILIKE ?)", pattern, pattern)
	}
	if f.Kind != "" {
		w.Add("kind = ?", string(f.Kind))
	}
	if f.Active != nil {
		w.Add("active = ?", *f.Active)
	}
	if f.LowStockOnly {
		w.Add("stock_units <= min_stock_units")
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+accessoryColumns+` FROM accessories`+w.SQL()+` ORDER BY name, sku`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query accessories: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Accessory
	for rows.Next() {
		a, err := scanAccessory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accessories: %w", err)
	}
	return out, nil
}

func scanAccessory(s rowScanner) (*models.Accessory, error) {
	var (
		a    models.Accessory
		kind string
	)
	if err := s.Scan(
		&a.ID, &a.SKU, &a.Name, &kind, &a.PricePerUnit, &a.StockUnits, &a.MinStockUnits, &a.Active,
		&a.CoverageNote, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan accessory: %w", err)
	}
	a.Kind = models.AccessoryKind(kind)
	return &a, nil
}
