package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa sobre un almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu      sync.Mutex
	stock   map[string]decimal.Decimal
	entries []entity.LedgerEntry
}

type memStockRepo struct{ store *memStore }

func (m *memStockRepo) Get(_ context.Context, productID string) (*entity.StockLevel, error) {
	return &entity.StockLevel{ProductID: productID, Quantity: m.store.stock[productID]}, nil
}

func (m *memStockRepo) Increment(_ context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, error) {
	newQty := m.store.stock[productID].Add(qty)
	m.store.stock[productID] = newQty
	return newQty, nil
}

func (m *memStockRepo) DecrementIfAvailable(_ context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, bool, error) {
	current := m.store.stock[productID]
	if current.LessThan(qty) {
		return decimal.Zero, false, nil
	}
	m.store.stock[productID] = current.Sub(qty)
	return m.store.stock[productID], true, nil
}

func (m *memStockRepo) ListView(_ context.Context, _ string) ([]*entity.StockView, error) {
	return []*entity.StockView{
		{ProductID: "p1", Name: "गहू", UnitMeasure: "quintal", Quantity: m.store.stock["p1"]},
	}, nil
}

type memLedgerRepo struct{ store *memStore }

func (m *memLedgerRepo) Create(_ context.Context, entry *entity.LedgerEntry) error {
	m.store.entries = append(m.store.entries, *entry)
	return nil
}

// List devuelve los asientos más recientes primero, como la consulta real.
func (m *memLedgerRepo) List(_ context.Context, _ repository.LedgerFilter) ([]*entity.LedgerEntryView, error) {
	views := make([]*entity.LedgerEntryView, 0, len(m.store.entries))
	for i := len(m.store.entries) - 1; i >= 0; i-- {
		e := m.store.entries[i]
		views = append(views, &entity.LedgerEntryView{
			ID:           e.ID,
			ProductID:    e.ProductID,
			ProductName:  "गहू",
			Kind:         e.Kind,
			Quantity:     e.Quantity,
			Counterparty: e.Counterparty,
			CreatedAt:    e.CreatedAt,
		})
	}
	return views, nil
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snapshot := make(map[string]decimal.Decimal, len(r.store.stock))
	for k, v := range r.store.stock {
		snapshot[k] = v
	}
	mark := len(r.store.entries)
	if err := fn(&memStockRepo{store: r.store}, &memLedgerRepo{store: r.store}); err != nil {
		r.store.stock = snapshot
		r.store.entries = r.store.entries[:mark]
		return err
	}
	return nil
}

type memProductRepo struct{}

func (memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if id == "p1" {
		return &entity.Product{ID: "p1", Name: "गहू", UnitMeasure: "quintal"}, nil
	}
	return nil, nil
}

func (memProductRepo) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }

func buildTestApp(initialStock int64) (*fiber.App, *memStore) {
	store := &memStore{stock: map[string]decimal.Decimal{"p1": decimal.NewFromInt(initialStock)}}
	recordUC := ledger.NewRecordEntryUseCase(&memTxRunner{store: store}, memProductRepo{})
	reportUC := ledger.NewReportUseCase(&memStockRepo{store: store}, &memLedgerRepo{store: store}, memProductRepo{}, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{RecordEntry: recordUC, Reports: reportUC})
	return app, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPurchase_Created(t *testing.T) {
	app, store := buildTestApp(0)
	resp := postJSON(t, app, "/api/purchases", map[string]any{
		"product_id": "p1", "quantity": 5, "dealer_name": "DealerX",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "purchase recorded", body["message"])
	assert.Equal(t, "p1", body["product_id"])
	assert.Len(t, store.entries, 1)
}

func TestRecordSale_InsuficienteDevuelve409(t *testing.T) {
	app, store := buildTestApp(3)
	resp := postJSON(t, app, "/api/sales", map[string]any{
		"product_id": "p1", "quantity": 10, "customer_name": "Bob",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Empty(t, store.entries, "el rechazo no deja asiento")
	assert.True(t, store.stock["p1"].Equal(decimal.NewFromInt(3)), "el rechazo no muta el stock")
}

// El mensaje de error respeta Accept-Language (marathi, como el front original).
func TestRecordSale_MensajeLocalizadoMarathi(t *testing.T) {
	app, _ := buildTestApp(0)
	resp := postJSON(t, app, "/api/sales", map[string]any{
		"product_id": "p1", "quantity": 1, "customer_name": "Bob",
	}, map[string]string{fiber.HeaderAcceptLanguage: "mr"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "पुरेसा साठा उपलब्ध नाही", body["message"])
}

func TestRecordSale_Exito(t *testing.T) {
	app, store := buildTestApp(10)
	resp := postJSON(t, app, "/api/sales", map[string]any{
		"product_id": "p1", "quantity": 4, "customer_name": "Alice",
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "sale recorded", body["message"])
	assert.True(t, store.stock["p1"].Equal(decimal.NewFromInt(6)))
	require.Len(t, store.entries, 1)
	assert.True(t, store.entries[0].Quantity.Equal(decimal.NewFromInt(-4)))
}

func TestRecordPurchase_ProductoDesconocido404(t *testing.T) {
	app, _ := buildTestApp(0)
	resp := postJSON(t, app, "/api/purchases", map[string]any{
		"product_id": "nope", "quantity": 5,
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNKNOWN_PRODUCT", body["code"])
}

func TestRecordPurchase_CantidadInvalida400(t *testing.T) {
	app, _ := buildTestApp(0)
	for _, quantity := range []any{0, -2, 2.5} {
		resp := postJSON(t, app, "/api/purchases", map[string]any{
			"product_id": "p1", "quantity": quantity,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cantidad %v debe ser rechazada", quantity)
		resp.Body.Close()
	}
}

func TestGetStock_OK(t *testing.T) {
	app, _ := buildTestApp(7)
	req := httptest.NewRequest(http.MethodGet, "/api/stock?product_id=p1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "गहू", rows[0]["display_name"])
	assert.Equal(t, "quintal", rows[0]["unit"])
}

// Un kind desconocido se rechaza con su propio mensaje, no con el del mes.
func TestLedger_KindInvalido400(t *testing.T) {
	app, _ := buildTestApp(0)
	req := httptest.NewRequest(http.MethodGet, "/api/ledger?kind=ajuste", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "kind must be purchase or sale", body["message"])
}

// La respuesta conserva el orden del repositorio: más reciente primero.
func TestLedger_MasRecientePrimero(t *testing.T) {
	app, _ := buildTestApp(0)
	for _, dealer := range []string{"primero", "segundo", "tercero"} {
		resp := postJSON(t, app, "/api/purchases", map[string]any{
			"product_id": "p1", "quantity": 1, "dealer_name": dealer,
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ledger", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "tercero", rows[0]["counterparty"])
	assert.Equal(t, "segundo", rows[1]["counterparty"])
	assert.Equal(t, "primero", rows[2]["counterparty"])
}

func TestMonthlyReport_SinMes400(t *testing.T) {
	app, _ := buildTestApp(0)
	req := httptest.NewRequest(http.MethodGet, "/api/reports/monthly", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "MISSING_MONTH", body["code"])
}
