// Package memory is a process-local implementation of the catalog repositories
// and the inventory LedgerStore. A single mutex guards products and history so
// ledger commits are atomic with respect to every other read and write.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	invmodels "github.com/ghuser/porcelarte/services/inventory/domain/models"
	"github.com/ghuser/porcelarte/services/inventory/domain/repositories"
)

// Store holds floor products, accessories and the movement history.
// Construct one per process or per test; it has no package-level state.
type Store struct {
	mu          sync.Mutex
	floors      map[uuid.UUID]*models.FloorProduct
	accessories map[uuid.UUID]*models.Accessory
	movements   []*invmodels.Movement
	seq         int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		floors:      make(map[uuid.UUID]*models.FloorProduct),
		accessories: make(map[uuid.UUID]*models.Accessory),
	}
}

// Floors returns the floor product repository view of the store.
func (s *Store) Floors() *FloorRepository { return &FloorRepository{s: s} }

// Accessories returns the accessory repository view of the store.
func (s *Store) Accessories() *AccessoryRepository { return &AccessoryRepository{s: s} }

// Ledger returns the LedgerStore view of the store.
func (s *Store) Ledger() *Ledger { return &Ledger{s: s} }

// FloorRepository implements repositories.FloorProductRepository.
type FloorRepository struct{ s *Store }

func (r *FloorRepository) Create(_ context.Context, p *models.FloorProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.floorSKUTaken(p.SKU, p.ID) {
		return catalogdomain.ErrSKUAlreadyExists
	}
	r.s.floors[p.ID] = p.Clone()
	return nil
}

// Update keeps the stored stock level, which only the Ledger writes, and
// copies it back into p.
func (r *FloorRepository) Update(_ context.Context, p *models.FloorProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.floors[p.ID]
	if !ok {
		return catalogdomain.ErrProductNotFound
	}
	if r.s.floorSKUTaken(p.SKU, p.ID) {
		return catalogdomain.ErrSKUAlreadyExists
	}
	p.StockBoxes = stored.StockBoxes
	r.s.floors[p.ID] = p.Clone()
	return nil
}

func (r *FloorRepository) GetByID(_ context.Context, id uuid.UUID) (*models.FloorProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.floors[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (r *FloorRepository) GetBySKU(_ context.Context, sku string) (*models.FloorProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.floors {
		if p.SKU == sku {
			return p.Clone(), nil
		}
	}
	return nil, catalogdomain.ErrProductNotFound
}

func (r *FloorRepository) List(_ context.Context, f models.FloorProductFilter) ([]*models.FloorProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.FloorProduct, 0, len(r.s.floors))
	for _, p := range r.s.floors {
		if f.Finish != "" && p.Finish != f.Finish {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		if f.LowStockOnly && p.StockBoxes > p.MinStockBoxes {
			continue
		}
		if !containsFold(f.Search, p.Name, p.SKU, p.CollectionColor) {
			continue
		}
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (s *Store) floorSKUTaken(sku string, self uuid.UUID) bool {
	for id, p := range s.floors {
		if id != self && p.SKU == sku {
			return true
		}
	}
	return false
}

// AccessoryRepository implements repositories.AccessoryRepository.
type AccessoryRepository struct{ s *Store }

func (r *AccessoryRepository) Create(_ context.Context, a *models.Accessory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.accessorySKUTaken(a.SKU, a.ID) {
		return catalogdomain.ErrSKUAlreadyExists
	}
	r.s.accessories[a.ID] = a.Clone()
	return nil
}

func (r *AccessoryRepository) Update(_ context.Context, a *models.Accessory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.accessories[a.ID]
	if !ok {
		return catalogdomain.ErrProductNotFound
	}
	if r.s.accessorySKUTaken(a.SKU, a.ID) {
		return catalogdomain.ErrSKUAlreadyExists
	}
	a.StockUnits = stored.StockUnits
	r.s.accessories[a.ID] = a.Clone()
	return nil
}

func (r *AccessoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accessories[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return a.Clone(), nil
}

func (r *AccessoryRepository) List(_ context.Context, f models.AccessoryFilter) ([]*models.Accessory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Accessory, 0, len(r.s.accessories))
	for _, a := range r.s.accessories {
		if f.Kind != "" && a.Kind != f.Kind {
			continue
		}
		if f.Active != nil && a.Active != *f.Active {
			continue
		}
		if f.LowStockOnly && a.StockUnits > a.MinStockUnits {
			continue
		}
		if !containsFold(f.Search, a.Name, a.SKU) {
			continue
		}
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (s *Store) accessorySKUTaken(sku string, self uuid.UUID) bool {
	for id, a := range s.accessories {
		if id != self && a.SKU == sku {
			return true
		}
	}
	return false
}

// Ledger implements repositories.LedgerStore.
type Ledger struct{ s *Store }

var _ repositories.LedgerStore = (*Ledger)(nil)

func (l *Ledger) Commit(_ context.Context, movements []*invmodels.Movement, apply repositories.ApplyFunc) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	// Work on copies so a failure part-way leaves the store untouched.
	working := make(map[models.ProductRef]models.Product, len(movements))
	for _, m := range movements {
		p, ok := working[m.Product]
		if !ok {
			found, err := l.s.productLocked(m.Product)
			if err != nil {
				return err
			}
			p = found.Clone()
			working[m.Product] = p
		}

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
		p := working[m.Product]
		switch p.Kind {
		case models.KindFloor:
			p.Floor.UpdatedAt = m.CreatedAt
			l.s.floors[p.Floor.ID] = p.Floor.Clone()
		case models.KindAccessory:
			p.Accessory.UpdatedAt = m.CreatedAt
			l.s.accessories[p.Accessory.ID] = p.Accessory.Clone()
		}
		l.s.seq++
		m.Seq = l.s.seq
		stored := *m
		l.s.movements = append(l.s.movements, &stored)
	}
	return nil
}

func (l *Ledger) Product(_ context.Context, ref models.ProductRef) (models.Product, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	p, err := l.s.productLocked(ref)
	if err != nil {
		return models.Product{}, err
	}
	return p.Clone(), nil
}

func (l *Ledger) Movements(_ context.Context, f invmodels.MovementFilter) ([]*invmodels.Movement, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	out := make([]*invmodels.Movement, 0, len(l.s.movements))
	for _, m := range l.s.movements {
		if f.Matches(m) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

func (s *Store) productLocked(ref models.ProductRef) (models.Product, error) {
	switch ref.Kind {
	case models.KindFloor:
		if p, ok := s.floors[ref.ID]; ok {
			return models.FloorVariant(p), nil
		}
	case models.KindAccessory:
		if a, ok := s.accessories[ref.ID]; ok {
			return models.AccessoryVariant(a), nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s %s", inventorydomain.ErrProductNotFound, ref.Kind, ref.ID)
}

func containsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
