package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	"github.com/ghuser/porcelarte/services/inventory/domain/models"
)

func intPtr(n int) *int { return &n }

func TestApplyMovement(t *testing.T) {
	tests := []struct {
		name    string
		current int
		typ     models.MovementType
		qty     int
		want    int
	}{
		{"entry adds", 80, models.MovementEntry, 25, 105},
		{"exit subtracts", 40, models.MovementExit, 37, 3},
		{"exit clamps at zero", 10, models.MovementExit, 25, 0},
		{"adjustment is absolute", 80, models.MovementAdjustment, 12, 12},
		{"adjustment upward", 3, models.MovementAdjustment, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyMovement(tt.current, tt.typ, tt.qty); got != tt.want {
				t.Fatalf("ApplyMovement(%d, %s, %d) = %d, want %d", tt.current, tt.typ, tt.qty, got, tt.want)
			}
		})
	}
}

func TestApplyMovement_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []models.MovementType{models.MovementEntry, models.MovementExit, models.MovementAdjustment}

	stock := 0
	for i := 0; i < 2000; i++ {
		typ := types[rng.Intn(len(types))]
		qty := rng.Intn(100) + 1
		stock = ApplyMovement(stock, typ, qty)
		if stock < 0 {
			t.Fatalf("step %d: stock went negative (%d)", i, stock)
		}
		if typ == models.MovementAdjustment && stock != qty {
			t.Fatalf("step %d: adjustment to %d left stock at %d", i, qty, stock)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		minimum    int
		active     bool
		requested  *int
		unit       string
		wantStatus models.StockStatus
		wantMsg    string
	}{
		{"inactive wins", 0, 10, false, intPtr(5), "caixas", models.StatusInactive, "Produto inativo"},
		{"insufficient", 20, 10, true, intPtr(37), "caixas", models.StatusInsufficient, "Estoque insuficiente: precisa de 37 caixas, disponível 20"},
		{"insufficient beats out of stock", 0, 10, true, intPtr(1), "unidades", models.StatusInsufficient, "Estoque insuficiente: precisa de 1 unidades, disponível 0"},
		{"out of stock", 0, 10, true, nil, "caixas", models.StatusOutOfStock, "Sem estoque"},
		{"low at minimum", 20, 20, true, nil, "caixas", models.StatusLow, "Estoque baixo: 20 caixas (mín: 20)"},
		{"low under minimum", 5, 15, true, intPtr(5), "caixas", models.StatusLow, "Estoque baixo: 5 caixas (mín: 15)"},
		{"ok", 80, 20, true, nil, "caixas", models.StatusOK, "Estoque OK: 80 caixas"},
		{"ok with satisfiable request", 150, 30, true, intPtr(100), "unidades", models.StatusOK, "Estoque OK: 150 unidades"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.level, tt.minimum, tt.active, tt.requested, tt.unit)
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestStockStatus_Badge(t *testing.T) {
	tests := map[models.StockStatus]models.Badge{
		models.StatusOK:           models.BadgeGreen,
		models.StatusLow:          models.BadgeYellow,
		models.StatusOutOfStock:   models.BadgeRed,
		models.StatusInsufficient: models.BadgeRed,
		models.StatusInactive:     models.BadgeGrey,
	}
	for status, want := range tests {
		if got := status.Badge(); got != want {
			t.Errorf("%s.Badge() = %s, want %s", status, got, want)
		}
	}
}

func TestClassifyProduct_UsesKindUnit(t *testing.T) {
	acc := catalogmodels.AccessoryVariant(&catalogmodels.Accessory{StockUnits: 150, MinStockUnits: 30, Active: true})
	if got := ClassifyProduct(acc, nil); got.Message != "Estoque OK: 150 unidades" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestValidateMovement(t *testing.T) {
	valid := func() *models.Movement {
		return &models.Movement{
			Product:  catalogmodels.ProductRef{Kind: catalogmodels.KindFloor, ID: uuid.New()},
			Type:     models.MovementEntry,
			Quantity: 10,
			Reason:   "Recebimento fornecedor",
			ActorID:  uuid.New(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(m *models.Movement)
		wantErr error
	}{
		{"valid", func(m *models.Movement) {}, nil},
		{"zero quantity", func(m *models.Movement) { m.Quantity = 0 }, inventorydomain.ErrInvalidQuantity},
		{"negative quantity", func(m *models.Movement) { m.Quantity = -3 }, inventorydomain.ErrInvalidQuantity},
		{"blank reason", func(m *models.Movement) { m.Reason = "   " }, inventorydomain.ErrInvalidMovement},
		{"unknown type", func(m *models.Movement) { m.Type = "transfer" }, inventorydomain.ErrInvalidMovement},
		{"unknown kind", func(m *models.Movement) { m.Product.Kind = "pallet" }, inventorydomain.ErrInvalidMovement},
		{"missing actor", func(m *models.Movement) { m.ActorID = uuid.Nil }, inventorydomain.ErrInvalidMovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := ValidateMovement(m)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
