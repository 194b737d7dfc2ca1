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

const floorColumns = `id, sku, name, side_a_cm, side_b_cm, pieces_per_box, area_per_box_m2, finish,
	collection_color, price_per_m2, stock_boxes, min_stock_boxes, active, updated_at`

// FloorRepository implements repositories.FloorProductRepository against PostgreSQL.
type FloorRepository struct {
	db *database.Database
}

// NewFloorRepository returns a FloorRepository backed by the given pool.
func NewFloorRepository(db *database.Database) *FloorRepository {
	return &FloorRepository{db: db}
}

// Create inserts a new floor product. Returns ErrSKUAlreadyExists on a duplicate SKU.
func (r *FloorRepository) Create(ctx context.Context, p *models.FloorProduct) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO floor_products (`+floorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.SKU, p.Name, p.SideACm, p.SideBCm, p.PiecesPerBox, p.AreaPerBoxM2, string(p.Finish),
		p.CollectionColor, p.PricePerM2, p.StockBoxes, p.MinStockBoxes, p.Active, p.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return catalogdomain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("insert floor product: %w", err)
	}
	return nil
}

// Update overwrites the descriptive columns of an existing floor product.
// stock_boxes belongs to the ledger and is only read back into p.
func (r *FloorRepository) Update(ctx context.Context, p *models.FloorProduct) error {
	err := r.db.DB().QueryRowContext(ctx, `
		UPDATE floor_products SET
			sku = $2, name = $3, side_a_cm = $4, side_b_cm = $5, pieces_per_box = $6,
			area_per_box_m2 = $7, finish = $8, collection_color = $9, price_per_m2 = $10,
			min_stock_boxes = $11, active = $12, updated_at = $13
		WHERE id = $1
		RETURNING stock_boxes`,
		p.ID, p.SKU, p.Name, p.SideACm, p.SideBCm, p.PiecesPerBox, p.AreaPerBoxM2, string(p.Finish),
		p.CollectionColor, p.PricePerM2, p.MinStockBoxes, p.Active, p.UpdatedAt,
	).Scan(&p.StockBoxes)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return catalogdomain.ErrProductNotFound
	case database.IsUniqueViolation(err):
		return catalogdomain.ErrSKUAlreadyExists
	case err != nil:
		return fmt.Errorf("update floor product: %w", err)
	}
	return nil
}

// GetByID returns ErrProductNotFound when no row matches.
func (r *FloorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FloorProduct, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+floorColumns+` FROM floor_products WHERE id = $1`, id)
	return scanFloorRow(row)
}

// GetBySKU returns ErrProductNotFound when no row matches.
func (r *FloorRepository) GetBySKU(ctx context.Context, sku string) (*models.FloorProduct, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+floorColumns+` FROM floor_products WHERE sku = $1`, sku)
	return scanFloorRow(row)
}

// List returns matching floor products ordered by name.
func (r *FloorRepository) List(ctx context.Context, f models.FloorProductFilter) ([]*models.FloorProduct, error) {
	var w database.Where
	if f.Search != "" {
		pattern := database.LikePattern(f.Search)
		w.Add("(name ILIKE ? OR sku ILIKE ? OR collection_color ILIKE ?)", pattern, pattern, pattern)
	}
	if f.Finish != "" {
		w.Add("finish = ?", string(f.Finish))
	}
	if f.Active != nil {
		w.Add("active = ?", *f.Active)
	}
	if f.LowStockOnly {
		w.Add("stock_boxes <= min_stock_boxes")
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+floorColumns+` FROM floor_products`+w.SQL()+` ORDER BY name, sku`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query floor products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.FloorProduct
	for rows.Next() {
		p, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate floor products: %w", err)
	}
	return out, nil
}

func scanFloorRow(row *sql.Row) (*models.FloorProduct, error) {
	p, err := scanFloor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanFloor(s rowScanner) (*models.FloorProduct, error) {
	var (
		p      models.FloorProduct
		finish string
	)
	if err := s.Scan(
		&p.ID, &p.SKU, &p.Name, &p.SideACm, &p.SideBCm, &p.PiecesPerBox, &p.AreaPerBoxM2, &finish,
		&p.CollectionColor, &p.PricePerM2, &p.StockBoxes, &p.MinStockBoxes, &p.Active, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan floor product: %w", err)
	}
	p.Finish = models.Finish(finish)
	return &p, nil
}
