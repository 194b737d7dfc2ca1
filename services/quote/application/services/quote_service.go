package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/catalog/domain/repositories"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
	inventorymodels "github.com/ghuser/porcelarte/services/inventory/domain/models"
	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
	domainsvcs "github.com/ghuser/porcelarte/services/quote/domain/services"
)

// ProductCatalog is the read side of the catalog used for pricing.
type ProductCatalog interface {
	GetFloorProduct(ctx context.Context, id uuid.UUID) (*catalogmodels.FloorProduct, error)
	GetAccessory(ctx context.Context, id uuid.UUID) (*catalogmodels.Accessory, error)
	ListAccessories(ctx context.Context, filter catalogmodels.AccessoryFilter) ([]*catalogmodels.Accessory, error)
}

// StockCommitter commits a batch of stock movements atomically and lists the
// history, which is how an already-committed quote is recognised.
type StockCommitter interface {
	RecordMovements(ctx context.Context, cmds []inventoryservices.RecordMovementCmd, opts ...inventoryservices.CommitOption) ([]*inventorymodels.Movement, error)
	ListMovements(ctx context.Context, filter inventorymodels.MovementFilter) ([]*inventorymodels.Movement, error)
}

// Settings are the store-wide quote defaults.
type Settings struct {
	StoreName          string
	DefaultLossPercent decimal.Decimal
	LeadTimeDays       int
	ValidityDays       int
}

// SettingsFromConfig reads quote defaults from the application config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		StoreName:          cfg.StoreName,
		DefaultLossPercent: decimal.NewFromFloat(cfg.QuoteDefaultLossPercent),
		LeadTimeDays:       cfg.QuoteLeadTimeDays,
		ValidityDays:       cfg.QuoteValidityDays,
	}
}

// LineRequest asks for a floor product over an area. LossPercent falls back
// to the store default when nil.
type LineRequest struct {
	ProductID   uuid.UUID
	AreaM2      decimal.Decimal
	LossPercent *decimal.Decimal
}

// AccessoryRequest adds an accessory with an explicit quantity.
type AccessoryRequest struct {
	AccessoryID uuid.UUID
	Quantity    int
}

// QuoteRequest is the input of Price.
type QuoteRequest struct {
	Customer    models.Customer
	Lines       []LineRequest
	Accessories []AccessoryRequest
	// IncludeSuggestions prices every suggested accessory not already listed
	// in Accessories. Suggestions are always returned on the quote.
	IncludeSuggestions bool
	Freight            decimal.Decimal
	Discount           decimal.Decimal
	LeadTimeDays       *int
	Notes              string
}

// ApprovalItem is one line of a quote being approved.
type ApprovalItem struct {
	ProductID     uuid.UUID `json:"product_id"`
	RequiredBoxes int       `json:"required_boxes"`
}

// ApproveCmd is the input of Approve. ActorID comes from the session.
type ApproveCmd struct {
	QuoteID uuid.UUID      `json:"quote_id"`
	Lines   []ApprovalItem `json:"lines"`
	ActorID uuid.UUID      `json:"actor_id"`
}

// ApprovalOutcome is the decision and, when approved, the exits committed.
type ApprovalOutcome struct {
	Decision  models.ApprovalDecision
	Movements []*inventorymodels.Movement
}

// QuoteService prices quotes and turns approved ones into stock exits.
type QuoteService struct {
	catalog   ProductCatalog
	floors    repositories.FloorProductRepository
	ledger    StockCommitter
	settings  Settings
	log       logger.Logger
	now       func() time.Time
	approvals metric.Int64Counter
}

// Option configures a QuoteService.
type Option func(*QuoteService)

// WithClock overrides the time source used for quote dates.
func WithClock(now func() time.Time) Option {
	return func(s *QuoteService) { s.now = now }
}

// NewQuoteService returns a QuoteService. Pricing reads through catalog;
// approval re-reads floors directly so it never sees a cached stock level.
func NewQuoteService(
	catalog ProductCatalog,
	floors repositories.FloorProductRepository,
	ledger StockCommitter,
	settings Settings,
	log logger.Logger,
	opts ...Option,
) *QuoteService {
	s := &QuoteService{
		catalog:  catalog,
		floors:   floors,
		ledger:   ledger,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	counter, err := otel.Meter("porcelarte/quote").Int64Counter(
		"quote.approvals",
		metric.WithDescription("Quote approval decisions"),
	)
	if err == nil {
		s.approvals = counter
	}
	return s
}

// Price computes lines, accessories, totals and the customer message.
// Nothing is persisted and no stock moves.
func (s *QuoteService) Price(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	if len(req.Lines) == 0 {
		return nil, quotedomain.ErrEmptyQuote
	}
	if req.Freight.IsNegative() || req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: freight and discount must not be negative", quotedomain.ErrInvalidQuantity)
	}

	lines := make([]models.Line, 0, len(req.Lines))
	for _, lr := range req.Lines {
		p, err := s.catalog.GetFloorProduct(ctx, lr.ProductID)
		if err != nil {
			return nil, wrapLookup(err)
		}
		if !p.Active {
			return nil, fmt.Errorf("%w: %s está inativo", quotedomain.ErrProductInactive, p.Name)
		}
		loss := s.settings.DefaultLossPercent
		if lr.LossPercent != nil {
			loss = *lr.LossPercent
		}
		line, err := domainsvcs.ComputeLine(p, lr.AreaM2, loss)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	accessories := make([]models.AccessoryLine, 0, len(req.Accessories))
	listed := make(map[uuid.UUID]bool, len(req.Accessories))
	for _, ar := range req.Accessories {
		a, err := s.catalog.GetAccessory(ctx, ar.AccessoryID)
		if err != nil {
			return nil, wrapLookup(err)
		}
		if !a.Active {
			return nil, fmt.Errorf("%w: %s está inativo", quotedomain.ErrProductInactive, a.Name)
		}
		line, err := domainsvcs.PriceAccessory(a, ar.Quantity)
		if err != nil {
			return nil, err
		}
		accessories = append(accessories, line)
		listed[a.ID] = true
	}

	area := domainsvcs.ComputeTotals(lines, nil, decimal.Zero, decimal.Zero).TotalAreaM2
	active := true
	available, err := s.catalog.ListAccessories(ctx, catalogmodels.AccessoryFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	suggestions := domainsvcs.SuggestAccessories(available, area)
	if req.IncludeSuggestions {
		for _, sg := range suggestions {
			if listed[sg.Accessory.ID] {
				continue
			}
			line, err := domainsvcs.PriceAccessory(sg.Accessory, sg.SuggestedQuantity)
			if err != nil {
				return nil, err
			}
			accessories = append(accessories, line)
		}
	}

	leadTime := s.settings.LeadTimeDays
	if req.LeadTimeDays != nil {
		if *req.LeadTimeDays < 0 {
			return nil, fmt.Errorf("%w: lead time must not be negative", quotedomain.ErrInvalidQuantity)
		}
		leadTime = *req.LeadTimeDays
	}

	now := s.now()
	totals := domainsvcs.ComputeTotals(lines, accessories, req.Freight, req.Discount)
	q := &models.Quote{
		ID:           uuid.New(),
		Customer:     req.Customer,
		Lines:        lines,
		Accessories:  accessories,
		Suggestions:  suggestions,
		Totals:       totals,
		LeadTimeDays: leadTime,
		ValidUntil:   now.AddDate(0, 0, s.settings.ValidityDays),
		Notes:        req.Notes,
		Status:       models.StatusDraft,
		CreatedAt:    now.UTC(),
	}
	q.Message = domainsvcs.ComposeMessage(domainsvcs.MessageInput{
		StoreName:    s.settings.StoreName,
		Customer:     q.Customer,
		Date:         now,
		Lines:        q.Lines,
		Accessories:  q.Accessories,
		Totals:       q.Totals,
		LeadTimeDays: q.LeadTimeDays,
		ValidityDays: s.settings.ValidityDays,
		Notes:        q.Notes,
	})
	link, err := domainsvcs.WhatsAppLink(q.Customer.Phone, q.Message)
	if err != nil {
		return nil, err
	}
	q.WhatsAppURL = link

	s.log.DebugContext(ctx, "quote priced", "quote_id", q.ID, "lines", len(lines), "final_value", totals.FinalValue.String())
	return q, nil
}

// Validate resolves every line's product afresh and checks it. Lines for the
// same product are summed first, so their combined demand is checked against
// the stock once. It never moves stock.
func (s *QuoteService) Validate(ctx context.Context, items []ApprovalItem) (models.ApprovalDecision, []models.ApprovalLine, error) {
	if len(items) == 0 {
		return models.ApprovalDecision{}, nil, quotedomain.ErrEmptyQuote
	}
	for _, it := range items {
		if it.RequiredBoxes <= 0 {
			return models.ApprovalDecision{}, nil, fmt.Errorf("%w: required boxes must be positive, got %d", quotedomain.ErrInvalidQuantity, it.RequiredBoxes)
		}
	}

	merged := mergeItems(items)
	lines := make([]models.ApprovalLine, 0, len(merged))
	for _, it := range merged {
		p, err := s.floors.GetByID(ctx, it.ProductID)
		if err != nil {
			return models.ApprovalDecision{}, nil, wrapLookup(err)
		}
		lines = append(lines, models.ApprovalLine{Product: p, RequiredBoxes: it.RequiredBoxes})
	}
	return domainsvcs.ValidateApproval(lines), lines, nil
}

// mergeItems sums RequiredBoxes per product, keeping first-seen order.
func mergeItems(items []ApprovalItem) []ApprovalItem {
	out := make([]ApprovalItem, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		if i, ok := index[it.ProductID]; ok {
			out[i].RequiredBoxes += it.RequiredBoxes
			continue
		}
		index[it.ProductID] = len(out)
		out = append(out, it)
	}
	return out
}

// Committed reports whether the exits of quoteID are already in the ledger.
func (s *QuoteService) Committed(ctx context.Context, quoteID uuid.UUID) (bool, error) {
	if quoteID == uuid.Nil {
		return false, nil
	}
	ms, err := s.ledger.ListMovements(ctx, inventorymodels.MovementFilter{
		Type:   inventorymodels.MovementExit,
		Search: quoteID.String(),
	})
	if err != nil {
		return false, fmt.Errorf("list quote movements: %w", err)
	}
	reason := commitReason(quoteID)
	for _, m := range ms {
		if m.Reason == reason {
			return true, nil
		}
	}
	return false, nil
}

// EnsureNotCommitted returns ErrAlreadySubmitted once quoteID has committed
// exits. A blocked or failed approval leaves the quote open for another try.
func (s *QuoteService) EnsureNotCommitted(ctx context.Context, quoteID uuid.UUID) error {
	done, err := s.Committed(ctx, quoteID)
	if err != nil {
		return err
	}
	if done {
		return fmt.Errorf("%w: %s", quotedomain.ErrAlreadySubmitted, quoteID)
	}
	return nil
}

func commitReason(quoteID uuid.UUID) string {
	if quoteID == uuid.Nil {
		return "Orçamento aprovado"
	}
	return fmt.Sprintf("Orçamento %s aprovado", quoteID)
}

// Commit issues one strict exit per line as a single batch. Stock is
// re-checked under the ledger lock, so a concurrent sale between Validate
// and Commit fails with ErrInsufficientStock and nothing is written.
// A quote whose exits are already committed fails with ErrAlreadySubmitted.
func (s *QuoteService) Commit(ctx context.Context, cmd ApproveCmd) ([]*inventorymodels.Movement, error) {
	if err := s.EnsureNotCommitted(ctx, cmd.QuoteID); err != nil {
		return nil, err
	}
	reason := commitReason(cmd.QuoteID)

	cmds := make([]inventoryservices.RecordMovementCmd, len(cmd.Lines))
	for i, it := range cmd.Lines {
		cmds[i] = inventoryservices.RecordMovementCmd{
			Product:  catalogmodels.ProductRef{Kind: catalogmodels.KindFloor, ID: it.ProductID},
			Type:     inventorymodels.MovementExit,
			Quantity: it.RequiredBoxes,
			Reason:   reason,
			ActorID:  cmd.ActorID,
		}
	}

	ms, err := s.ledger.RecordMovements(ctx, cmds, inventoryservices.WithStrictExits())
	if err != nil {
		return nil, fmt.Errorf("commit quote exits: %w", err)
	}
	return ms, nil
}

// Approve validates and, when every line passes, commits the exits.
// A blocked quote is returned as a decision, not as an error, and may be
// approved again later.
func (s *QuoteService) Approve(ctx context.Context, cmd ApproveCmd) (*ApprovalOutcome, error) {
	if err := s.EnsureNotCommitted(ctx, cmd.QuoteID); err != nil {
		return nil, err
	}
	decision, _, err := s.Validate(ctx, cmd.Lines)
	if err != nil {
		return nil, err
	}
	if !decision.Approved {
		s.recordDecision(ctx, false)
		s.log.WarnContext(ctx, "quote approval blocked", "quote_id", cmd.QuoteID, "errors", decision.Errors)
		return &ApprovalOutcome{Decision: decision}, nil
	}

	ms, err := s.Commit(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s.recordDecision(ctx, true)
	s.log.InfoContext(ctx, "quote approved", "quote_id", cmd.QuoteID, "actor_id", cmd.ActorID, "movements", len(ms))
	return &ApprovalOutcome{Decision: decision, Movements: ms}, nil
}

// RecordDecision counts an approval verdict reached outside Approve, e.g.
// by the approval workflow.
func (s *QuoteService) RecordDecision(ctx context.Context, approved bool) {
	s.recordDecision(ctx, approved)
}

func (s *QuoteService) recordDecision(ctx context.Context, approved bool) {
	if s.approvals != nil {
		s.approvals.Add(ctx, 1, metric.WithAttributes(attribute.Bool("approved", approved)))
	}
}

func wrapLookup(err error) error {
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return fmt.Errorf("%w: %w", quotedomain.ErrProductNotFound, err)
	}
	return fmt.Errorf("load product: %w", err)
}
