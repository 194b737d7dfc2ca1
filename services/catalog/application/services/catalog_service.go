package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/porcelarte/pkg/cache"
	"github.com/ghuser/porcelarte/pkg/logger"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/porcelarte/services/catalog/domain/services"
)

// CatalogService orchestrates floor products and accessories.
// GetFloorProduct is served from Redis when a cache is configured.
type CatalogService struct {
	floors      repositories.FloorProductRepository
	accessories repositories.AccessoryRepository
	cache       *pkgcache.ProductCache
	stock       StockSetter
	log         logger.Logger
	now         func() time.Time
}

// StockSetter moves a product to an absolute stock level by recording a
// ledger movement. The inventory LedgerService satisfies it.
type StockSetter interface {
	SetStock(ctx context.Context, ref models.ProductRef, level int, reason string, actorID uuid.UUID) error
}

const importStockReason = "Importação CSV"

// Option configures a CatalogService.
type Option func(*CatalogService)

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *CatalogService) { s.now = now }
}

// WithStockSetter lets ImportFloorCSV change the stock of existing products.
// Without one, a row that changes stock is rejected.
func WithStockSetter(st StockSetter) Option {
	return func(s *CatalogService) { s.stock = st }
}

// NewCatalogService returns a CatalogService. productCache may be nil.
func NewCatalogService(
	floors repositories.FloorProductRepository,
	accessories repositories.AccessoryRepository,
	productCache *pkgcache.ProductCache,
	log logger.Logger,
	opts ...Option,
) *CatalogService {
	s := &CatalogService{
		floors:      floors,
		accessories: accessories,
		cache:       productCache,
		log:         log,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFloorProduct validates and stores a new floor product. The area per
// box is derived from the geometry.
func (s *CatalogService) CreateFloorProduct(ctx context.Context, in models.FloorProductInput) (*models.FloorProduct, error) {
	p := &models.FloorProduct{
		ID:              uuid.New(),
		SKU:             in.SKU,
		Name:            in.Name,
		SideACm:         in.SideACm,
		SideBCm:         in.SideBCm,
		PiecesPerBox:    in.PiecesPerBox,
		Finish:          in.Finish,
		CollectionColor: in.CollectionColor,
		PricePerM2:      in.PricePerM2,
		StockBoxes:      in.StockBoxes,
		MinStockBoxes:   in.MinStockBoxes,
		Active:          in.Active,
		UpdatedAt:       s.now().UTC(),
	}
	p.RecomputeArea()

	if err := domainsvcs.ValidateFloorProduct(p); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if err := s.floors.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create floor product: %w", err)
	}

	s.log.InfoContext(ctx, "floor product created", "product_id", p.ID, "sku", p.SKU)
	return p, nil
}

// UpdateFloorProduct merges patch into the stored product. Returns
// ErrProductNotFound for an unknown id.
func (s *CatalogService) UpdateFloorProduct(ctx context.Context, id uuid.UUID, patch models.FloorProductPatch) (*models.FloorProduct, error) {
	p, err := s.floors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get floor product: %w", err)
	}

	patch.Apply(p)
	if err := domainsvcs.ValidateFloorProduct(p); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	p.UpdatedAt = s.now().UTC()

	if err := s.floors.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update floor product: %w", err)
	}
	s.evictFloor(ctx, id)
	return p, nil
}

// DeactivateFloorProduct hides a product from sale. History keeps referencing it.
func (s *CatalogService) DeactivateFloorProduct(ctx context.Context, id uuid.UUID) (*models.FloorProduct, error) {
	inactive := false
	return s.UpdateFloorProduct(ctx, id, models.FloorProductPatch{Active: &inactive})
}

// GetFloorProduct retrieves a floor product using a read-through cache:
//  1. Check Redis first, noting the product's cache generation.
//  2. On a miss or cache error, query the repository.
//  3. After a miss, warm the cache unless an eviction has bumped the
//     generation since step 1.
func (s *CatalogService) GetFloorProduct(ctx context.Context, id uuid.UUID) (*models.FloorProduct, error) {
	var (
		gen  int64
		warm bool
	)
	if s.cache != nil {
		cached, g, err := s.cache.GetFloor(ctx, id)
		switch {
		case err == nil:
			if p, convErr := fromCachedFloor(cached); convErr == nil {
				return p, nil
			}
			gen, warm = g, true
		case errors.Is(err, redis.Nil):
			gen, warm = g, true
		default:
			s.log.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
		}
	}

	p, err := s.floors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get floor product: %w", err)
	}

	if warm {
		if _, err := s.cache.SetFloor(ctx, toCachedFloor(p), gen); err != nil {
			s.log.WarnContext(ctx, "product cache write failed", "product_id", id, "error", err)
		}
	}
	return p, nil
}

// ListFloorProducts returns matching floor products ordered by name.
func (s *CatalogService) ListFloorProducts(ctx context.Context, filter models.FloorProductFilter) ([]*models.FloorProduct, error) {
	ps, err := s.floors.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list floor products: %w", err)
	}
	return ps, nil
}

// CreateAccessory validates and stores a new accessory.
func (s *CatalogService) CreateAccessory(ctx context.Context, in models.AccessoryInput) (*models.Accessory, error) {
	a := &models.Accessory{
		ID:            uuid.New(),
		SKU:           in.SKU,
		Name:          in.Name,
		Kind:          in.Kind,
		PricePerUnit:  in.PricePerUnit,
		StockUnits:    in.StockUnits,
		MinStockUnits: in.MinStockUnits,
		Active:        in.Active,
		CoverageNote:  in.CoverageNote,
		UpdatedAt:     s.now().UTC(),
	}
	if err := domainsvcs.ValidateAccessory(a); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if err := s.accessories.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create accessory: %w", err)
	}

	s.log.InfoContext(ctx, "accessory created", "product_id", a.ID, "sku", a.SKU)
	return a, nil
}

// UpdateAccessory merges patch into the stored accessory.
func (s *CatalogService) UpdateAccessory(ctx context.Context, id uuid.UUID, patch models.AccessoryPatch) (*models.Accessory, error) {
	a, err := s.accessories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get accessory: %w", err)
	}

	patch.Apply(a)
	if err := domainsvcs.ValidateAccessory(a); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	a.UpdatedAt = s.now().UTC()

	if err := s.accessories.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update accessory: %w", err)
	}
	return a, nil
}

// DeactivateAccessory hides an accessory from sale and suggestions.
func (s *CatalogService) DeactivateAccessory(ctx context.Context, id uuid.UUID) (*models.Accessory, error) {
	inactive := false
	return s.UpdateAccessory(ctx, id, models.AccessoryPatch{Active: &inactive})
}

func (s *CatalogService) GetAccessory(ctx context.Context, id uuid.UUID) (*models.Accessory, error) {
	a, err := s.accessories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get accessory: %w", err)
	}
	return a, nil
}

func (s *CatalogService) ListAccessories(ctx context.Context, filter models.AccessoryFilter) ([]*models.Accessory, error) {
	as, err := s.accessories.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	return as, nil
}

// ListProductsNeedingReplenishment returns active products of both kinds at or
// below their minimum, most critical first.
func (s *CatalogService) ListProductsNeedingReplenishment(ctx context.Context) ([]models.ReplenishmentSuggestion, error) {
	active := true
	floors, err := s.floors.List(ctx, models.FloorProductFilter{Active: &active, LowStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list floor products: %w", err)
	}
	accessories, err := s.accessories.List(ctx, models.AccessoryFilter{Active: &active, LowStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}

	products := make([]models.Product, 0, len(floors)+len(accessories))
	for _, p := range floors {
		products = append(products, models.FloorVariant(p))
	}
	for _, a := range accessories {
		products = append(products, models.AccessoryVariant(a))
	}
	return domainsvcs.BuildReplenishment(products), nil
}

// ImportFloorCSV upserts floor products by SKU. A header mismatch aborts with
// ErrImportHeaderMismatch; every other failure is reported per row and the
// remaining rows are still processed. Stock changes of existing products are
// recorded as ledger movements attributed to actorID.
func (s *CatalogService) ImportFloorCSV(ctx context.Context, actorID uuid.UUID, text string) (*models.ImportResult, error) {
	records, rowErrs, err := domainsvcs.DecodeFloorCSV(text)
	if err != nil {
		return nil, fmt.Errorf("decode floor csv: %w", err)
	}

	result := &models.ImportResult{}
	for _, rec := range records {
		created, err := s.upsertFloor(ctx, actorID, rec.Input)
		if err != nil {
			rowErrs = append(rowErrs, &catalogdomain.RowError{Line: rec.Line, Reason: importReason(err)})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	sort.SliceStable(rowErrs, func(i, j int) bool { return rowErrs[i].Line < rowErrs[j].Line })
	result.Errors = make([]string, 0, len(rowErrs))
	for _, re := range rowErrs {
		result.Errors = append(result.Errors, re.Error())
	}
	result.Success = len(result.Errors) == 0

	s.log.InfoContext(ctx, "floor csv imported",
		"created", result.Created,
		"updated", result.Updated,
		"errors", len(result.Errors),
	)
	return result, nil
}

// upsertFloor overwrites the product with the same SKU or creates it. The
// stock column of an existing product becomes an adjustment in the ledger.
func (s *CatalogService) upsertFloor(ctx context.Context, actorID uuid.UUID, in models.FloorProductInput) (bool, error) {
	existing, err := s.floors.GetBySKU(ctx, in.SKU)
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		_, err := s.CreateFloorProduct(ctx, in)
		return true, err
	case err != nil:
		return false, err
	}

	existing.Name = in.Name
	existing.SideACm = in.SideACm
	existing.SideBCm = in.SideBCm
	existing.PiecesPerBox = in.PiecesPerBox
	existing.Finish = in.Finish
	existing.CollectionColor = in.CollectionColor
	existing.PricePerM2 = in.PricePerM2
	existing.MinStockBoxes = in.MinStockBoxes
	existing.Active = in.Active
	existing.RecomputeArea()
	existing.UpdatedAt = s.now().UTC()

	if err := domainsvcs.ValidateFloorProduct(existing); err != nil {
		return false, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if in.StockBoxes < 0 {
		return false, fmt.Errorf("%w: estoque negativo", catalogdomain.ErrInvalidProduct)
	}
	if in.StockBoxes != existing.StockBoxes {
		if s.stock == nil {
			return false, fmt.Errorf("%w: estoque só muda pelo livro de movimentações", catalogdomain.ErrInvalidProduct)
		}
		ref := models.ProductRef{Kind: models.KindFloor, ID: existing.ID}
		if err := s.stock.SetStock(ctx, ref, in.StockBoxes, importStockReason, actorID); err != nil {
			return false, err
		}
	}
	if err := s.floors.Update(ctx, existing); err != nil {
		return false, err
	}
	s.evictFloor(ctx, existing.ID)
	return false, nil
}

func importReason(err error) string {
	return "Erro ao processar - " + err.Error()
}

// ExportFloorCSV serializes every floor product, active or not.
func (s *CatalogService) ExportFloorCSV(ctx context.Context) (string, error) {
	ps, err := s.floors.List(ctx, models.FloorProductFilter{})
	if err != nil {
		return "", fmt.Errorf("list floor products: %w", err)
	}
	return domainsvcs.EncodeFloorCSV(ps), nil
}

// ExportFloorXLSX writes the same rows as ExportFloorCSV as a spreadsheet.
func (s *CatalogService) ExportFloorXLSX(ctx context.Context, w io.Writer) error {
	ps, err := s.floors.List(ctx, models.FloorProductFilter{})
	if err != nil {
		return fmt.Errorf("list floor products: %w", err)
	}
	if err := domainsvcs.EncodeFloorXLSX(w, ps); err != nil {
		return fmt.Errorf("encode xlsx: %w", err)
	}
	return nil
}

// InvalidateProduct drops a cached product. It lets the inventory ledger and
// the movement subscriber evict entries without knowing the key layout.
func (s *CatalogService) InvalidateProduct(ctx context.Context, ref models.ProductRef) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, string(ref.Kind), ref.ID)
}

func (s *CatalogService) evictFloor(ctx context.Context, id uuid.UUID) {
	if err := s.InvalidateProduct(ctx, models.ProductRef{Kind: models.KindFloor, ID: id}); err != nil {
		s.log.WarnContext(ctx, "product cache eviction failed", "product_id", id, "error", err)
	}
}

func toCachedFloor(p *models.FloorProduct) *pkgcache.CachedFloorProduct {
	return &pkgcache.CachedFloorProduct{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		SideACm:         p.SideACm.String(),
		SideBCm:         p.SideBCm.String(),
		PiecesPerBox:    p.PiecesPerBox,
		AreaPerBoxM2:    p.AreaPerBoxM2.String(),
		Finish:          string(p.Finish),
		CollectionColor: p.CollectionColor,
		PricePerM2:      p.PricePerM2.String(),
		StockBoxes:      p.StockBoxes,
		MinStockBoxes:   p.MinStockBoxes,
		Active:          p.Active,
		UpdatedAt:       p.UpdatedAt,
	}
}

func fromCachedFloor(c *pkgcache.CachedFloorProduct) (*models.FloorProduct, error) {
	var (
		p   = &models.FloorProduct{}
		err error
	)
	parse := func(s string) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		var d decimal.Decimal
		d, err = decimal.NewFromString(s)
		return d
	}
	p.SideACm = parse(c.SideACm)
	p.SideBCm = parse(c.SideBCm)
	p.AreaPerBoxM2 = parse(c.AreaPerBoxM2)
	p.PricePerM2 = parse(c.PricePerM2)
	if err != nil {
		return nil, fmt.Errorf("cached floor product %s: %w", c.ID, err)
	}

	p.ID = c.ID
	p.SKU = c.SKU
	p.Name = c.Name
	p.PiecesPerBox = c.PiecesPerBox
	p.Finish = models.Finish(c.Finish)
	p.CollectionColor = c.CollectionColor
	p.StockBoxes = c.StockBoxes
	p.MinStockBoxes = c.MinStockBoxes
	p.Active = c.Active
	p.UpdatedAt = c.UpdatedAt
	return p, nil
}
