// Package postgres implements the inventory LedgerStore against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/database"
	"github.com/ghuser/porcelarte/pkg/events"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	domainevents "github.com/ghuser/porcelarte/services/inventory/domain/events"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
	"github.com/ghuser/porcelarte/services/inventory/domain/repositories"
)

// LedgerStore implements repositories.LedgerStore. Products are read from the
// catalog tables; only the fields the ledger needs (identity, name, stock,
// minimum, active) are loaded.
type LedgerStore struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore returns a LedgerStore. When bus is non-nil every committed
// movement publishes a StockMovementRecordedEvent in the same transaction.
func NewLedgerStore(db *database.Database, bus *events.EventBus) *LedgerStore {
	return &LedgerStore{db: db, bus: bus}
}

// Commit locks every referenced product row with SELECT ... FOR UPDATE, applies
// the batch in order and writes stock, history and outbox rows in one transaction.
func (s *LedgerStore) Commit(ctx context.Context, movements []*models.Movement, apply repositories.ApplyFunc) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		working, err := lockProducts(ctx, tx, movements)
		if err != nil {
			return err
		}

		for _, m := range movements {
			p := working[m.Product]
			prev, minimum := p.Stock()
			next, err := apply(p, m)
			if err != nil {
				return err
			}
			p.SetStock(next)

			m.ProductSKU = p.SKU()
			m.ProductName = p.Name()
			m.PreviousStock = prev
			m.NewStock = next
			m.MinStock = minimum
		}

		for _, m := range movements {
			if err := updateStock(ctx, tx, working[m.Product], m); err != nil {
				return err
			}
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO stock_movements (
					id, product_kind, product_id, product_sku, product_name, movement_type, quantity,
					reason, actor_id, previous_stock, new_stock, min_stock, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				RETURNING seq`,
				m.ID, string(m.Product.Kind), m.Product.ID, m.ProductSKU, m.ProductName, string(m.Type), m.Quantity,
				m.Reason, m.ActorID, m.PreviousStock, m.NewStock, m.MinStock, m.CreatedAt,
			).Scan(&m.Seq); err != nil {
				return fmt.Errorf("insert movement: %w", err)
			}

			if s.bus != nil {
				if err := s.publishRecorded(ctx, tx, m); err != nil {
					return fmt.Errorf("publish movement recorded: %w", err)
				}
			}
		}
		return nil
	})
}

// lockProducts loads each distinct product once, in a stable order so two
// concurrent batches touching the same rows cannot deadlock.
func lockProducts(ctx context.Context, tx *sql.Tx, movements []*models.Movement) (map[catalogmodels.ProductRef]catalogmodels.Product, error) {
	refs := make([]catalogmodels.ProductRef, 0, len(movements))
	seen := make(map[catalogmodels.ProductRef]bool, len(movements))
	for _, m := range movements {
		if !seen[m.Product] {
			seen[m.Product] = true
			refs = append(refs, m.Product)
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].ID.String() < refs[j].ID.String()
	})

	working := make(map[catalogmodels.ProductRef]catalogmodels.Product, len(refs))
	for _, ref := range refs {
		p, err := loadProduct(ctx, tx, ref, true)
		if err != nil {
			return nil, err
		}
		working[ref] = p
	}
	return working, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadProduct(ctx context.Context, q queryer, ref catalogmodels.ProductRef, forUpdate bool) (catalogmodels.Product, error) {
	lock := ""
	if forUpdate {
		lock = " FOR UPDATE"
	}

	var err error
	var p catalogmodels.Product
	switch ref.Kind {
	case catalogmodels.KindFloor:
		f := &catalogmodels.FloorProduct{}
		err = q.QueryRowContext(ctx,
			`SELECT id, sku, name, stock_boxes, min_stock_boxes, active FROM floor_products WHERE id = $1`+lock,
			ref.ID,
		).Scan(&f.ID, &f.SKU, &f.Name, &f.StockBoxes, &f.MinStockBoxes, &f.Active)
		p = catalogmodels.FloorVariant(f)
	case catalogmodels.KindAccessory:
		a := &catalogmodels.Accessory{}
		err = q.QueryRowContext(ctx,
			`SELECT id, sku, name, stock_units, min_stock_units, active FROM accessories WHERE id = $1`+lock,
			ref.ID,
		).Scan(&a.ID, &a.SKU, &a.Name, &a.StockUnits, &a.MinStockUnits, &a.Active)
		p = catalogmodels.AccessoryVariant(a)
	default:
		return catalogmodels.Product{}, fmt.Errorf("%w: unknown product kind %q", inventorydomain.ErrInvalidMovement, ref.Kind)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalogmodels.Product{}, fmt.Errorf("%w: %s %s", inventorydomain.ErrProductNotFound, ref.Kind, ref.ID)
		}
		return catalogmodels.Product{}, fmt.Errorf("load product: %w", err)
	}
	return p, nil
}

func updateStock(ctx context.Context, tx *sql.Tx, p catalogmodels.Product, m *models.Movement) error {
	var query string
	switch p.Kind {
	case catalogmodels.KindFloor:
		query = `UPDATE floor_products SET stock_boxes = $2, updated_at = $3 WHERE id = $1`
	case catalogmodels.KindAccessory:
		query = `UPDATE accessories SET stock_units = $2, updated_at = $3 WHERE id = $1`
	}
	if _, err := tx.ExecContext(ctx, query, p.ID(), m.NewStock, m.CreatedAt); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

func (s *LedgerStore) publishRecorded(ctx context.Context, tx *sql.Tx, m *models.Movement) error {
	event := domainevents.StockMovementRecordedEvent{
		EventID:       uuid.New(),
		Version:       domainevents.StockMovementRecordedVersion,
		MovementID:    m.ID,
		ProductKind:   string(m.Product.Kind),
		ProductID:     m.Product.ID,
		ProductName:   m.ProductName,
		MovementType:  string(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		MinStock:      m.MinStock,
		ActorID:       m.ActorID,
		OccurredAt:    m.CreatedAt,
	}
	msg, err := events.NewJSONMessage(event.EventID.String(), domainevents.StockMovementRecordedVersion, event)
	if err != nil {
		return err
	}
	events.InjectTrace(ctx, msg)
	p, err := s.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicStockMovementRecorded, msg)
}

// Product returns the committed state of a product without locking it.
func (s *LedgerStore) Product(ctx context.Context, ref catalogmodels.ProductRef) (catalogmodels.Product, error) {
	return loadProduct(ctx, s.db.DB(), ref, false)
}

// Movements lists history newest first; equal timestamps keep insertion order.
func (s *LedgerStore) Movements(ctx context.Context, f models.MovementFilter) ([]*models.Movement, error) {
	var w database.Where
	if f.Kind != "" {
		w.Add("product_kind = ?", string(f.Kind))
	}
	if f.ProductID != uuid.Nil {
		w.Add("product_id = ?", f.ProductID)
	}
	if f.Type != "" {
		w.Add("movement_type = ?", string(f.Type))
	}
	if f.ActorID != uuid.Nil {
		w.Add("actor_id = ?", f.ActorID)
	}
	if !f.Since.IsZero() {
		w.Add("created_at >= ?", f.Since)
	}
	if !f.Until.IsZero() {
		w.Add("created_at <= ?", f.Until)
	}
	if f.Search != "" {
		pattern := database.LikePattern(f.Search)
		w.Add("(product_name ILIKE ? OR product_sku ILIKE ? OR reason ILIKE ?)", pattern, pattern, pattern)
	}

	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT id, seq, product_kind, product_id, product_sku, product_name, movement_type, quantity,
			reason, actor_id, previous_stock, new_stock, min_stock, created_at
		FROM stock_movements`+w.SQL()+`
		ORDER BY created_at DESC, seq ASC`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]*models.Movement, 0)
	for rows.Next() {
		var (
			m        models.Movement
			kind, mt string
		)
		if err := rows.Scan(
			&m.ID, &m.Seq, &kind, &m.Product.ID, &m.ProductSKU, &m.ProductName, &mt, &m.Quantity,
			&m.Reason, &m.ActorID, &m.PreviousStock, &m.NewStock, &m.MinStock, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Product.Kind = catalogmodels.ProductKind(kind)
		m.Type = models.MovementType(mt)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return out, nil
}
