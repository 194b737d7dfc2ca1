package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
	catalogservices "github.com/ghuser/porcelarte/services/catalog/application/services"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/catalog/infrastructure/persistence/memory"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	inventorymodels "github.com/ghuser/porcelarte/services/inventory/domain/models"
	"github.com/ghuser/porcelarte/services/quote/application/services"
	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store  *memory.Store
	ledger *inventoryservices.LedgerService
	quotes *services.QuoteService
	actor  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	log := logger.New(&config.Config{LogLevel: "error"})
	catalog := catalogservices.NewCatalogService(store.Floors(), store.Accessories(), nil, log)
	ledger := inventoryservices.NewLedgerService(store.Ledger())
	settings := services.Settings{
		StoreName:          "Porcelarte",
		DefaultLossPercent: decimal.NewFromInt(10),
		LeadTimeDays:       7,
		ValidityDays:       15,
	}
	return &fixture{
		store:  store,
		ledger: ledger,
		quotes: services.NewQuoteService(catalog, store.Floors(), ledger, settings, log,
			services.WithClock(func() time.Time { return fixedNow })),
		actor: uuid.New(),
	}
}

func (f *fixture) addFloor(t *testing.T, name string, stock int, active bool) uuid.UUID {
	t.Helper()
	p := &catalogmodels.FloorProduct{
		ID:            uuid.New(),
		SKU:           "SKU-" + name,
		Name:          name,
		SideACm:       decimal.NewFromInt(62),
		SideBCm:       decimal.NewFromInt(120),
		PiecesPerBox:  2,
		Finish:        catalogmodels.FinishPolished,
		PricePerM2:    decimal.RequireFromString("129.90"),
		StockBoxes:    stock,
		MinStockBoxes: 10,
		Active:        active,
	}
	p.RecomputeArea()
	if err := f.store.Floors().Create(context.Background(), p); err != nil {
		t.Fatalf("seed floor: %v", err)
	}
	return p.ID
}

func (f *fixture) addAccessory(t *testing.T, name string, kind catalogmodels.AccessoryKind, price string) uuid.UUID {
	t.Helper()
	a := &catalogmodels.Accessory{
		ID:           uuid.New(),
		SKU:          "ACC-" + name,
		Name:         name,
		Kind:         kind,
		PricePerUnit: decimal.RequireFromString(price),
		StockUnits:   100,
		Active:       true,
	}
	if err := f.store.Accessories().Create(context.Background(), a); err != nil {
		t.Fatalf("seed accessory: %v", err)
	}
	return a.ID
}

func (f *fixture) stock(t *testing.T, id uuid.UUID) int {
	t.Helper()
	level, err := f.ledger.GetStock(context.Background(), catalogmodels.ProductRef{Kind: catalogmodels.KindFloor, ID: id})
	if err != nil {
		t.Fatalf("get stock: %v", err)
	}
	return level
}

func TestPrice_DefaultLossAndSuggestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 40, true)
	f.addAccessory(t, "Rejunte", catalogmodels.AccessoryGrout, "18.50")

	q, err := f.quotes.Price(ctx, services.QuoteRequest{
		Customer: quoteCustomer(),
		Lines:    []services.LineRequest{{ProductID: floorID, AreaM2: decimal.NewFromInt(50)}},
	})
	if err != nil {
		t.Fatalf("price: %v", err)
	}

	if len(q.Lines) != 1 || q.Lines[0].RequiredBoxes != 37 {
		t.Fatalf("expected one line of 37 boxes, got %+v", q.Lines)
	}
	if !q.Totals.FinalValue.Equal(decimal.RequireFromString("7144.5")) {
		t.Fatalf("FinalValue = %s, want 7144.5", q.Totals.FinalValue)
	}
	if len(q.Suggestions) != 1 || q.Suggestions[0].SuggestedQuantity != 7 {
		t.Fatalf("expected a grout suggestion of 7, got %+v", q.Suggestions)
	}
	if len(q.Accessories) != 0 {
		t.Fatalf("suggestions should not be priced unless asked, got %+v", q.Accessories)
	}
	if !strings.HasPrefix(q.Message, "🏠 *ORÇAMENTO PORCELARTE*") || !strings.Contains(q.Message, "📅 *Data:* 10/03/2025") {
		t.Fatalf("unexpected message:\n%s", q.Message)
	}
	if !q.ValidUntil.Equal(fixedNow.AddDate(0, 0, 15)) {
		t.Fatalf("ValidUntil = %v", q.ValidUntil)
	}
	if f.stock(t, floorID) != 40 {
		t.Fatal("pricing must not move stock")
	}
}

func TestPrice_IncludeSuggestionsKeepsExplicitQuantities(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 40, true)
	mortarID := f.addAccessory(t, "Argamassa", catalogmodels.AccessoryMortar, "32.90")
	f.addAccessory(t, "Rejunte", catalogmodels.AccessoryGrout, "18.50")

	zeroLoss := decimal.Zero
	leadTime := 3
	q, err := f.quotes.Price(ctx, services.QuoteRequest{
		Customer:           quoteCustomer(),
		Lines:              []services.LineRequest{{ProductID: floorID, AreaM2: decimal.NewFromInt(45), LossPercent: &zeroLoss}},
		Accessories:        []services.AccessoryRequest{{AccessoryID: mortarID, Quantity: 3}},
		IncludeSuggestions: true,
		Freight:            decimal.NewFromInt(150),
		Discount:           decimal.NewFromInt(50),
		LeadTimeDays:       &leadTime,
	})
	if err != nil {
		t.Fatalf("price: %v", err)
	}

	if len(q.Accessories) != 2 {
		t.Fatalf("expected mortar and grout lines, got %+v", q.Accessories)
	}
	if q.Accessories[0].Accessory.ID != mortarID || q.Accessories[0].Quantity != 3 {
		t.Fatalf("explicit mortar line changed: %+v", q.Accessories[0])
	}
	if q.Accessories[1].Quantity != 5 {
		t.Fatalf("grout quantity = %d, want 5", q.Accessories[1].Quantity)
	}

	// 45 * 129.90 + 3 * 32.90 + 5 * 18.50 + 150 - 50
	want := decimal.RequireFromString("6136.7")
	if !q.Totals.FinalValue.Equal(want) {
		t.Fatalf("FinalValue = %s, want %s", q.Totals.FinalValue, want)
	}
	if q.LeadTimeDays != 3 || !strings.Contains(q.Message, "3 dias úteis") {
		t.Fatalf("lead time override not applied: %d", q.LeadTimeDays)
	}
}

func TestPrice_Rejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	activeID := f.addFloor(t, "Calacata", 40, true)
	inactiveID := f.addFloor(t, "Travertino", 40, false)

	tests := []struct {
		name    string
		req     services.QuoteRequest
		wantErr error
	}{
		{"no lines", services.QuoteRequest{}, quotedomain.ErrEmptyQuote},
		{
			"unknown product",
			services.QuoteRequest{Lines: []services.LineRequest{{ProductID: uuid.New(), AreaM2: decimal.NewFromInt(10)}}},
			quotedomain.ErrProductNotFound,
		},
		{
			"inactive product",
			services.QuoteRequest{Lines: []services.LineRequest{{ProductID: inactiveID, AreaM2: decimal.NewFromInt(10)}}},
			quotedomain.ErrProductInactive,
		},
		{
			"zero area",
			services.QuoteRequest{Lines: []services.LineRequest{{ProductID: activeID, AreaM2: decimal.Zero}}},
			quotedomain.ErrInvalidQuantity,
		},
		{
			"negative freight",
			services.QuoteRequest{
				Lines:   []services.LineRequest{{ProductID: activeID, AreaM2: decimal.NewFromInt(10)}},
				Freight: decimal.NewFromInt(-1),
			},
			quotedomain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.quotes.Price(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPrice_UnknownProductKeepsCatalogCause(t *testing.T) {
	f := newFixture(t)
	_, err := f.quotes.Price(context.Background(), services.QuoteRequest{
		Lines: []services.LineRequest{{ProductID: uuid.New(), AreaM2: decimal.NewFromInt(10)}},
	})
	if !errors.Is(err, catalogdomain.ErrProductNotFound) {
		t.Fatalf("expected catalog ErrProductNotFound in chain, got %v", err)
	}
}

func TestApprove_CommitsExits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 40, true)
	quoteID := uuid.New()

	out, err := f.quotes.Approve(ctx, services.ApproveCmd{
		QuoteID: quoteID,
		Lines:   []services.ApprovalItem{{ProductID: floorID, RequiredBoxes: 37}},
		ActorID: f.actor,
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !out.Decision.Approved || len(out.Decision.Errors) != 0 {
		t.Fatalf("expected approval, got %+v", out.Decision)
	}
	if got := f.stock(t, floorID); got != 3 {
		t.Fatalf("stock = %d, want 3", got)
	}

	history, err := f.ledger.ListMovements(ctx, inventorymodels.MovementFilter{})
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(history))
	}
	m := history[0]
	if m.Type != inventorymodels.MovementExit || m.Quantity != 37 || m.ActorID != f.actor {
		t.Fatalf("unexpected movement %+v", m)
	}
	if m.Reason != "Orçamento "+quoteID.String()+" aprovado" {
		t.Fatalf("Reason = %q", m.Reason)
	}
}

func TestApprove_BlockedIsNotAnError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 20, true)

	out, err := f.quotes.Approve(ctx, services.ApproveCmd{
		Lines:   []services.ApprovalItem{{ProductID: floorID, RequiredBoxes: 37}},
		ActorID: f.actor,
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if out.Decision.Approved {
		t.Fatal("expected the quote to be blocked")
	}
	want := []string{"Calacata: precisa de 37 caixas, disponível 20"}
	if len(out.Decision.Errors) != 1 || out.Decision.Errors[0] != want[0] {
		t.Fatalf("Errors = %q, want %q", out.Decision.Errors, want)
	}
	if len(out.Movements) != 0 || f.stock(t, floorID) != 20 {
		t.Fatal("a blocked approval must not move stock")
	}
}

func TestCommit_StockTakenAfterValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := f.addFloor(t, "Calacata", 40, true)
	second := f.addFloor(t, "Marmo", 10, true)
	cmd := services.ApproveCmd{
		Lines: []services.ApprovalItem{
			{ProductID: first, RequiredBoxes: 37},
			{ProductID: second, RequiredBoxes: 10},
		},
		ActorID: f.actor,
	}

	decision, _, err := f.quotes.Validate(ctx, cmd.Lines)
	if err != nil || !decision.Approved {
		t.Fatalf("expected a passing validation, got %+v, %v", decision, err)
	}

	// Another sale takes Marmo stock before the commit.
	if _, err := f.ledger.RecordMovement(ctx, inventoryservices.RecordMovementCmd{
		Product:  catalogmodels.ProductRef{Kind: catalogmodels.KindFloor, ID: second},
		Type:     inventorymodels.MovementExit,
		Quantity: 5,
		Reason:   "Venda balcão",
		ActorID:  f.actor,
	}); err != nil {
		t.Fatalf("competing exit: %v", err)
	}

	_, err = f.quotes.Commit(ctx, cmd)
	if !errors.Is(err, inventorydomain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if f.stock(t, first) != 40 || f.stock(t, second) != 5 {
		t.Fatal("a failed commit must not write any line")
	}
}

func TestValidate_Rejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 40, true)

	tests := []struct {
		name    string
		items   []services.ApprovalItem
		wantErr error
	}{
		{"no lines", nil, quotedomain.ErrEmptyQuote},
		{"zero boxes", []services.ApprovalItem{{ProductID: floorID, RequiredBoxes: 0}}, quotedomain.ErrInvalidQuantity},
		{"unknown product", []services.ApprovalItem{{ProductID: uuid.New(), RequiredBoxes: 1}}, quotedomain.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.quotes.Validate(ctx, tt.items)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func quoteCustomer() models.Customer {
	return models.Customer{Name: "Maria Souza", Phone: "11999990000", City: "Campinas"}
}

func TestApprove_BlockedQuoteCanBeRetriedButNotCommittedTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 20, true)
	cmd := services.ApproveCmd{
		QuoteID: uuid.New(),
		Lines:   []services.ApprovalItem{{ProductID: floorID, RequiredBoxes: 37}},
		ActorID: f.actor,
	}

	out, err := f.quotes.Approve(ctx, cmd)
	if err != nil || out.Decision.Approved {
		t.Fatalf("first approval = %+v, %v; want blocked", out, err)
	}

	ref := catalogmodels.ProductRef{Kind: catalogmodels.KindFloor, ID: floorID}
	if _, err := f.ledger.RecordMovement(ctx, inventoryservices.RecordMovementCmd{
		Product: ref, Type: inventorymodels.MovementEntry, Quantity: 30, Reason: "NF 4411", ActorID: f.actor,
	}); err != nil {
		t.Fatalf("restock: %v", err)
	}

	out, err = f.quotes.Approve(ctx, cmd)
	if err != nil || !out.Decision.Approved {
		t.Fatalf("second approval = %+v, %v; want approved", out, err)
	}
	if got := f.stock(t, floorID); got != 13 {
		t.Fatalf("stock = %d, want 13", got)
	}

	if _, err := f.quotes.Approve(ctx, cmd); !errors.Is(err, quotedomain.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if _, err := f.quotes.Commit(ctx, cmd); !errors.Is(err, quotedomain.ErrAlreadySubmitted) {
		t.Fatalf("Commit: expected ErrAlreadySubmitted, got %v", err)
	}
	if got := f.stock(t, floorID); got != 13 {
		t.Fatalf("stock after repeated approval = %d, want 13", got)
	}
}

func TestApprove_LinesOfSameProductAreCheckedTogether(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	floorID := f.addFloor(t, "Calacata", 40, true)

	out, err := f.quotes.Approve(ctx, services.ApproveCmd{
		QuoteID: uuid.New(),
		Lines: []services.ApprovalItem{
			{ProductID: floorID, RequiredBoxes: 30},
			{ProductID: floorID, RequiredBoxes: 30},
		},
		ActorID: f.actor,
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	want := "Calacata: precisa de 60 caixas, disponível 40"
	if out.Decision.Approved || len(out.Decision.Errors) != 1 || out.Decision.Errors[0] != want {
		t.Fatalf("Decision = %+v, want blocked with %q", out.Decision, want)
	}
	if got := f.stock(t, floorID); got != 40 {
		t.Fatalf("stock = %d, want 40", got)
	}

	out, err = f.quotes.Approve(ctx, services.ApproveCmd{
		QuoteID: uuid.New(),
		Lines: []services.ApprovalItem{
			{ProductID: floorID, RequiredBoxes: 20},
			{ProductID: floorID, RequiredBoxes: 15},
		},
		ActorID: f.actor,
	})
	if err != nil || !out.Decision.Approved || len(out.Movements) != 2 {
		t.Fatalf("approve = %+v, %v; want two exits", out, err)
	}
	if got := f.stock(t, floorID); got != 5 {
		t.Fatalf("stock = %d, want 5", got)
	}
}
