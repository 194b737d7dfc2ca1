package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/pkg/auth"
	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
	"github.com/ghuser/porcelarte/services/catalog/application/api"
	"github.com/ghuser/porcelarte/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/infrastructure/persistence/memory"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
)

var actorID = uuid.MustParse("6f1c2a44-5b1e-4c8e-9d1f-1a2b3c4d5e6f")

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	svcs := &appsvcs.Services{
		Catalog: appsvcs.NewCatalogService(store.Floors(), store.Accessories(), nil, logger.New(&config.Config{LogLevel: "error"}),
			appsvcs.WithStockSetter(inventoryservices.NewLedgerService(store.Ledger()))),
	}
	r := chi.NewRouter()
	api.Mount(r, svcs)
	return r
}

// do sends the request as an authenticated actor.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(auth.WithActorID(req.Context(), actorID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const calacata = `{
	"sku": "CALA62x120-P",
	"name": "Calacata Bianco 62×120",
	"side_a_cm": "62",
	"side_b_cm": "120",
	"pieces_per_box": 2,
	"finish": "polido",
	"collection_color": "Calacata",
	"price_per_m2": "129.90",
	"stock_boxes": 80,
	"min_stock_boxes": 20
}`

func TestCreateFloorProduct(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/catalog/floor", calacata)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var got handlers.FloorProductResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AreaPerBoxM2.String() != "1.488" {
		t.Fatalf("area_per_box_m2 = %s, want 1.488", got.AreaPerBoxM2)
	}
	if got.Finish != "polished" || !got.Active {
		t.Fatalf("unexpected product %+v", got)
	}

	w = do(t, r, http.MethodGet, "/catalog/floor/"+got.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
}

func TestCreateFloorProduct_DuplicateSKU(t *testing.T) {
	r := newRouter(t)
	if w := do(t, r, http.MethodPost, "/catalog/floor", calacata); w.Code != http.StatusCreated {
		t.Fatalf("first create: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodPost, "/catalog/floor", calacata); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateFloorProduct_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"sku":`, http.StatusBadRequest},
		{"missing sku", `{"name":"X","pieces_per_box":1,"finish":"matte"}`, http.StatusUnprocessableEntity},
		{"unknown finish", strings.Replace(calacata, `"polido"`, `"satin"`, 1), http.StatusUnprocessableEntity},
		{"zero side", strings.Replace(calacata, `"side_a_cm": "62"`, `"side_a_cm": "0"`, 1), http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, newRouter(t), http.MethodPost, "/catalog/floor", tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetFloorProduct_NotFound(t *testing.T) {
	w := do(t, newRouter(t), http.MethodGet, "/catalog/floor/"+uuid.NewString(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestImportFloorCSV(t *testing.T) {
	r := newRouter(t)

	doc := strings.Join([]string{
		catalogdomain.FloorCSVHeader,
		`CALA62x120-P,"Calacata Bianco 62×120",62,120,2,129.90,polido,"Calacata",80,20,TRUE`,
		`MARM60x60-F,"Marmo Grigio 60×60",60,60,4,abc,fosco,"Marmo",5,15,TRUE`,
	}, "\n")

	w := do(t, r, http.MethodPost, "/catalog/floor/import", doc)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got handlers.ImportResultResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Success || got.Created != 1 || len(got.Errors) != 1 {
		t.Fatalf("unexpected import result %+v", got)
	}
	if !strings.HasPrefix(got.Errors[0], "Linha 3") {
		t.Fatalf("row error should name line 3, got %q", got.Errors[0])
	}
}

func TestImportFloorCSV_RequiresActor(t *testing.T) {
	doc := catalogdomain.FloorCSVHeader + "\n" +
		`CALA62x120-P,"Calacata Bianco 62×120",62,120,2,129.90,polido,"Calacata",80,20,TRUE`
	req := httptest.NewRequest(http.MethodPost, "/catalog/floor/import", strings.NewReader(doc))
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestImportFloorCSV_StockChangeIsRecordedInLedger(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodPost, "/catalog/floor", calacata)
	var created handlers.FloorProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	doc := catalogdomain.FloorCSVHeader + "\n" +
		`CALA62x120-P,"Calacata Bianco 62×120",62,120,2,129.90,polido,"Calacata",55,20,TRUE`
	w = do(t, r, http.MethodPost, "/catalog/floor/import", doc)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/catalog/floor/"+created.ID.String(), "")
	var got handlers.FloorProductResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.StockBoxes != 55 {
		t.Fatalf("stock = %d, want 55", got.StockBoxes)
	}
}

func TestImportFloorCSV_HeaderMismatch(t *testing.T) {
	w := do(t, newRouter(t), http.MethodPost, "/catalog/floor/import", "sku,name\nX,Y")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportFloorCSV(t *testing.T) {
	r := newRouter(t)
	do(t, r, http.MethodPost, "/catalog/floor", calacata)

	w := do(t, r, http.MethodGet, "/catalog/floor/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="pisos_`) || !strings.HasSuffix(cd, `.csv"`) {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if lines[0] != catalogdomain.FloorCSVHeader || len(lines) != 2 {
		t.Fatalf("unexpected export:\n%s", w.Body.String())
	}
}

func TestAccessories(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/catalog/accessories", `{
		"sku": "REJ-CZ-1",
		"name": "Rejunte Cinza 1kg",
		"kind": "grout",
		"price_per_unit": "12.5",
		"stock_units": 4,
		"min_stock_units": 10
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/catalog/accessories?low_stock=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list handlers.ListAccessoriesResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("expected one low-stock accessory, got %d", list.Total)
	}

	w = do(t, r, http.MethodGet, "/catalog/replenishment", "")
	var sugg []handlers.ReplenishmentResponse
	if err := json.NewDecoder(w.Body).Decode(&sugg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sugg) != 1 || sugg[0].SKU != "REJ-CZ-1" || sugg[0].SuggestedPurchase <= 0 {
		t.Fatalf("unexpected replenishment %+v", sugg)
	}
}

func TestListAccessories_BadBool(t *testing.T) {
	w := do(t, newRouter(t), http.MethodGet, "/catalog/accessories?active=maybe", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
