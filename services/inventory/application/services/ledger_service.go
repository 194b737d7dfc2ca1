package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/porcelarte/pkg/logger"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
	"github.com/ghuser/porcelarte/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/porcelarte/services/inventory/domain/services"
)

// RecordMovementCmd is the input of RecordMovement. ActorID comes from the
// authenticated session, never from the request body.
type RecordMovementCmd struct {
	Product  catalogmodels.ProductRef
	Type     models.MovementType
	Quantity int
	Reason   string
	ActorID  uuid.UUID
}

// ProductInvalidator drops cached product read models after stock changes.
type ProductInvalidator interface {
	InvalidateProduct(ctx context.Context, ref catalogmodels.ProductRef) error
}

// LedgerService is the only sanctioned path to mutate stock.
type LedgerService struct {
	store    repositories.LedgerStore
	cache    ProductInvalidator
	log      logger.Logger
	now      func() time.Time
	recorded metric.Int64Counter
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// WithProductInvalidator evicts cached products after each commit.
func WithProductInvalidator(c ProductInvalidator) Option {
	return func(s *LedgerService) { s.cache = c }
}

// WithLogger attaches a logger. Without one the service is silent.
func WithLogger(log logger.Logger) Option {
	return func(s *LedgerService) { s.log = log }
}

// NewLedgerService returns a LedgerService committing through store.
func NewLedgerService(store repositories.LedgerStore, opts ...Option) *LedgerService {
	s := &LedgerService{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	// The global provider is a no-op until telemetry.Setup installs one.
	counter, err := otel.Meter("porcelarte/inventory").Int64Counter(
		"inventory.movements.recorded",
		metric.WithDescription("Stock movements committed to the ledger"),
	)
	if err == nil {
		s.recorded = counter
	}
	return s
}

type commitOptions struct {
	strictExits bool
}

// CommitOption tunes a single RecordMovements call.
type CommitOption func(*commitOptions)

// WithStrictExits makes an exit larger than the locked stock level fail with
// ErrInsufficientStock instead of clamping at zero.
func WithStrictExits() CommitOption {
	return func(o *commitOptions) { o.strictExits = true }
}

// RecordMovement validates and commits one movement.
func (s *LedgerService) RecordMovement(ctx context.Context, cmd RecordMovementCmd) (*models.Movement, error) {
	ms, err := s.RecordMovements(ctx, []RecordMovementCmd{cmd})
	if err != nil {
		return nil, err
	}
	return ms[0], nil
}

// RecordMovements commits a batch as one unit of work. Either every movement
// is applied and appended to history or none is.
func (s *LedgerService) RecordMovements(ctx context.Context, cmds []RecordMovementCmd, opts ...CommitOption) ([]*models.Movement, error) {
	if len(cmds) == 0 {
		return nil, fmt.Errorf("%w: no movements given", inventorydomain.ErrInvalidMovement)
	}
	var o commitOptions
	for _, opt := range opts {
		opt(&o)
	}

	createdAt := s.now().UTC()
	movements := make([]*models.Movement, len(cmds))
	for i, cmd := range cmds {
		m := &models.Movement{
			ID:        uuid.New(),
			Product:   cmd.Product,
			Type:      cmd.Type,
			Quantity:  cmd.Quantity,
			Reason:    cmd.Reason,
			ActorID:   cmd.ActorID,
			CreatedAt: createdAt,
		}
		if err := domainsvcs.ValidateMovement(m); err != nil {
			return nil, err
		}
		movements[i] = m
	}

	apply := func(p catalogmodels.Product, m *models.Movement) (int, error) {
		current, _ := p.Stock()
		if o.strictExits && m.Type == models.MovementExit && m.Quantity > current {
			return 0, fmt.Errorf("%w: %s: precisa de %d %s, disponível %d",
				inventorydomain.ErrInsufficientStock, p.Name(), m.Quantity, p.Unit(), current)
		}
		return domainsvcs.ApplyMovement(current, m.Type, m.Quantity), nil
	}

	if err := s.store.Commit(ctx, movements, apply); err != nil {
		return nil, fmt.Errorf("commit movements: %w", err)
	}

	s.afterCommit(ctx, movements)
	return movements, nil
}

func (s *LedgerService) afterCommit(ctx context.Context, movements []*models.Movement) {
	for _, m := range movements {
		if s.recorded != nil {
			s.recorded.Add(ctx, 1, metric.WithAttributes(
				attribute.String("product_kind", string(m.Product.Kind)),
				attribute.String("movement_type", string(m.Type)),
			))
		}
		if s.cache != nil {
			if err := s.cache.InvalidateProduct(ctx, m.Product); err != nil && s.log != nil {
				s.log.WarnContext(ctx, "product cache invalidation failed", "product_id", m.Product.ID, "error", err)
			}
		}
		if s.log != nil {
			s.log.InfoContext(ctx, "stock movement recorded",
				"movement_id", m.ID,
				"product_kind", m.Product.Kind,
				"product_id", m.Product.ID,
				"movement_type", m.Type,
				"quantity", m.Quantity,
				"previous_stock", m.PreviousStock,
				"new_stock", m.NewStock,
			)
		}
	}
}

// SetStock brings a product to an absolute level through the ledger: an
// adjustment for a positive level, an exit of the whole stock for zero. It
// records nothing when the level already matches.
func (s *LedgerService) SetStock(ctx context.Context, ref catalogmodels.ProductRef, level int, reason string, actorID uuid.UUID) error {
	if level < 0 {
		return fmt.Errorf("%w: stock level %d", inventorydomain.ErrInvalidQuantity, level)
	}
	current, err := s.GetStock(ctx, ref)
	if err != nil {
		return err
	}
	if current == level {
		return nil
	}

	cmd := RecordMovementCmd{
		Product:  ref,
		Type:     models.MovementAdjustment,
		Quantity: level,
		Reason:   reason,
		ActorID:  actorID,
	}
	if level == 0 {
		// Exits clamp at zero, so a concurrent exit cannot leave stock behind.
		cmd.Type, cmd.Quantity = models.MovementExit, current
	}
	_, err = s.RecordMovement(ctx, cmd)
	return err
}

// ListMovements returns history newest first. Movements with the same
// timestamp, such as one batch, stay in the order they were recorded.
func (s *LedgerService) ListMovements(ctx context.Context, filter models.MovementFilter) ([]*models.Movement, error) {
	ms, err := s.store.Movements(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return ms, nil
}

// GetStock returns the committed stock level of a product.
func (s *LedgerService) GetStock(ctx context.Context, ref catalogmodels.ProductRef) (int, error) {
	p, err := s.store.Product(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("get stock: %w", err)
	}
	level, _ := p.Stock()
	return level, nil
}

// StockReport is a product's current level with its classification.
type StockReport struct {
	Product catalogmodels.Product
	Level   int
	Minimum int
	Status  models.StatusInfo
}

// StockStatus classifies a product's committed level, optionally against a
// requested quantity.
func (s *LedgerService) StockStatus(ctx context.Context, ref catalogmodels.ProductRef, requested *int) (*StockReport, error) {
	p, err := s.store.Product(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("stock status: %w", err)
	}
	level, minimum := p.Stock()
	return &StockReport{
		Product: p,
		Level:   level,
		Minimum: minimum,
		Status:  domainsvcs.ClassifyProduct(p, requested),
	}, nil
}
