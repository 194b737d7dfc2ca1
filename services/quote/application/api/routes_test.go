package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
	catalogservices "github.com/ghuser/porcelarte/services/catalog/application/services"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/catalog/infrastructure/persistence/memory"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
	"github.com/ghuser/porcelarte/services/quote/application/api"
	"github.com/ghuser/porcelarte/services/quote/application/handlers"
	appsvcs "github.com/ghuser/porcelarte/services/quote/application/services"
)

type fixture struct {
	router http.Handler
	floor  uuid.UUID
	actor  uuid.UUID
}

func newFixture(t *testing.T, stock int, active bool) *fixture {
	t.Helper()
	store := memory.NewStore()
	p := &catalogmodels.FloorProduct{
		ID:            uuid.New(),
		SKU:           "CALA62x120-P",
		Name:          "Calacata Bianco 62×120",
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
	if err := store.Floors().Create(context.Background(), p); err != nil {
		t.Fatalf("seed floor: %v", err)
	}

	log := logger.New(&config.Config{LogLevel: "error"})
	settings := appsvcs.Settings{
		StoreName:          "Porcelarte",
		DefaultLossPercent: decimal.NewFromInt(10),
		LeadTimeDays:       7,
		ValidityDays:       15,
	}
	svcs := &appsvcs.Services{
		Quotes: appsvcs.NewQuoteService(
			catalogservices.NewCatalogService(store.Floors(), store.Accessories(), nil, log),
			store.Floors(),
			inventoryservices.NewLedgerService(store.Ledger()),
			settings,
			log,
		),
	}

	r := chi.NewRouter()
	api.Mount(r, svcs, nil, "")
	return &fixture{router: r, floor: p.ID, actor: uuid.New()}
}

func (f *fixture) do(t *testing.T, path, body string, signedIn bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signedIn {
		req = req.WithContext(auth.WithActorID(req.Context(), f.actor))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPriceQuote(t *testing.T) {
	f := newFixture(t, 40, true)
	body := fmt.Sprintf(`{
		"customer": {"name": "Maria Souza", "phone": "(11) 98765-4321", "city": "Campinas"},
		"lines": [{"product_id": %q, "area_m2": "50"}],
		"freight": "150",
		"discount": "100"
	}`, f.floor)

	w := f.do(t, "/quotes/price", body, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got handlers.QuoteResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].RequiredBoxes != 37 {
		t.Fatalf("unexpected lines %+v", got.Lines)
	}
	if !got.Totals.FinalValue.Equal(decimal.RequireFromString("7194.5")) {
		t.Fatalf("final value = %s, want 7194.5", got.Totals.FinalValue)
	}
	if got.Status != "draft" || !strings.Contains(got.Message, "Maria Souza") {
		t.Fatalf("unexpected quote status %q or message:\n%s", got.Status, got.Message)
	}
	if !strings.HasPrefix(got.WhatsAppURL, "https://wa.me/5511987654321?text=") {
		t.Fatalf("whatsapp_url = %q", got.WhatsAppURL)
	}
}

func TestPriceQuote_InvalidPhone(t *testing.T) {
	f := newFixture(t, 40, true)
	body := fmt.Sprintf(`{
		"customer": {"name": "Maria Souza", "phone": "12"},
		"lines": [{"product_id": %q, "area_m2": "50"}]
	}`, f.floor)

	if w := f.do(t, "/quotes/price", body, true); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPriceQuote_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		body   string
		want   int
	}{
		{"no lines", true, `{"customer":{"name":"Maria"},"lines":[]}`, http.StatusUnprocessableEntity},
		{"bad product id", true, `{"customer":{"name":"Maria"},"lines":[{"product_id":"nope","area_m2":"10"}]}`, http.StatusUnprocessableEntity},
		{"unknown product", true, fmt.Sprintf(`{"customer":{"name":"Maria"},"lines":[{"product_id":%q,"area_m2":"10"}]}`, uuid.New()), http.StatusNotFound},
		{"inactive product", false, "", http.StatusUnprocessableEntity},
		{"zero area", true, "", http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 40, tc.active)
			body := tc.body
			if body == "" {
				area := "10"
				if tc.name == "zero area" {
					area = "0"
				}
				body = fmt.Sprintf(`{"customer":{"name":"Maria"},"lines":[{"product_id":%q,"area_m2":%q}]}`, f.floor, area)
			}
			w := f.do(t, "/quotes/price", body, true)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func approveBody(id uuid.UUID, boxes int) string {
	return fmt.Sprintf(`{"lines":[{"product_id":%q,"required_boxes":%d}]}`, id, boxes)
}

func TestApproveQuote(t *testing.T) {
	f := newFixture(t, 40, true)

	w := f.do(t, "/quotes/"+uuid.NewString()+"/approve", approveBody(f.floor, 37), true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got handlers.ApproveQuoteResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Approved || len(got.MovementIDs) != 1 || len(got.Errors) != 0 {
		t.Fatalf("unexpected approval %+v", got)
	}

	// The stock left is 3, so a second identical quote is blocked.
	w = f.do(t, "/quotes/"+uuid.NewString()+"/approve", approveBody(f.floor, 37), true)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	got = handlers.ApproveQuoteResponse{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := "Calacata Bianco 62×120: precisa de 37 caixas, disponível 3"
	if got.Approved || len(got.Errors) != 1 || got.Errors[0] != want {
		t.Fatalf("errors = %v, want [%q]", got.Errors, want)
	}
}

func TestApproveQuote_RequiresActor(t *testing.T) {
	f := newFixture(t, 40, true)
	w := f.do(t, "/quotes/"+uuid.NewString()+"/approve", approveBody(f.floor, 1), false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestApproveQuote_BadID(t *testing.T) {
	f := newFixture(t, 40, true)
	w := f.do(t, "/quotes/not-a-uuid/approve", approveBody(f.floor, 1), true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestApproveQuote_SameQuoteTwice(t *testing.T) {
	f := newFixture(t, 80, true)
	path := "/quotes/" + uuid.NewString() + "/approve"

	if w := f.do(t, path, approveBody(f.floor, 37), true); w.Code != http.StatusOK {
		t.Fatalf("first approval: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w := f.do(t, path, approveBody(f.floor, 37), true)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected an error body, got %v", body)
	}
}
