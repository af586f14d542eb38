package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/album-inventory/internal/interfaces/http"
)

// buildRouterApp monta el router completo sobre el almacén en memoria.
func buildRouterApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := zerolog.Nop()
	barcodes := inventory.NewBarcodeResolver(store)
	ledger := inventory.NewApplyMovementUseCase(store, barcodes, nil, log)
	transfers := inventory.NewTransferUseCase(ledger, barcodes, nil, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Ledger:    ledger,
		Transfers: transfers,
		Bulk:      inventory.NewBulkTransferUseCase(transfers, nil, log, 1, 10),
		Queries:   inventory.NewStockQueryUseCase(store),
		Barcodes:  barcodes,
		Periods:   inventory.NewPeriodUseCase(store, log),
		Scopes:    store,
		JWTSecret: testJWTSecret,
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func getList(t *testing.T, app *fiber.App, path, auth string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func movementIn(key string, qty int) dto.MovementRequest {
	return dto.MovementRequest{
		ItemRef:        dto.ItemRef{Artist: "Artist1", Category: "album", AlbumVersion: "V1"},
		Location:       "A",
		Direction:      "in",
		Quantity:       qty,
		IdempotencyKey: key,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_CreaYRepite(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("m-1", 5))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(5), body["closing"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("m-1", 5))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["duplicated"])
	assert.Equal(t, float64(5), body["closing"])
}

func TestApplyMovement_ValidacionDevuelve400ConPaso(t *testing.T) {
	app, _ := buildRouterApp(t)
	req := movementIn("m-2", 1)
	req.Direction = "OUT"

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/movements", tokenForRole(t, entity.RoleOperator), req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "validate", body["step"])
}

func TestApplyMovement_ViewerNoPuedeEscribir(t *testing.T) {
	app, _ := buildRouterApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/movements", tokenForRole(t, entity.RoleViewer), movementIn("m-3", 1))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApplyMovement_RolConAlcanceFueraDeUbicacion(t *testing.T) {
	app, store := buildRouterApp(t)
	store.SetScope(entity.LocationScope{UserID: testUserID, PrimaryLocation: "Z", SubLocations: []string{"Y"}})

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/movements", tokenForRole(t, entity.RoleScopedOperator), movementIn("m-4", 1))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "authorize", body["step"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_YConsultaDeStock(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)

	_, created := doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("seed", 10))
	itemID, _ := created["item_id"].(string)
	require.NotEmpty(t, itemID)

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/transfers", auth, dto.TransferRequest{
		ItemRef:        dto.ItemRef{ItemID: itemID},
		FromLocation:   "A",
		ToLocation:     "B",
		Quantity:       4,
		Memo:           "reposición",
		IdempotencyKey: "T-1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/inventory/stock?item_id="+itemID+"&location=B", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4), body["quantity"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/inventory/items/"+itemID+"/stock", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10), body["total"])
}

func TestTransfer_ConflictoDeCodigoDevuelve409(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/items/barcodes", auth, dto.BarcodeRequest{
		ItemRef: dto.ItemRef{Artist: "Artist1", Category: "album", AlbumVersion: "V1"},
		Barcode: "880001",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/items/barcodes/880001?artist=Artist2&album_version=V2", auth, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	conflict, _ := body["conflict"].(map[string]any)
	assert.Equal(t, "Artist1", conflict["artist"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/inventory/transfers", auth, dto.TransferRequest{
		ItemRef:      dto.ItemRef{Artist: "Artist2", AlbumVersion: "V2"},
		FromLocation: "A",
		ToLocation:   "B",
		Quantity:     1,
		Memo:         "m",
		Barcode:      "880001",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, "barcode", body["step"])
}

func TestBulkTransfer_ReporteConFallas(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleFullAdmin)
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("seed", 10))

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/transfers/bulk", auth, dto.BulkTransferRequest{
		ToLocation:     "B",
		Memo:           "lote",
		IdempotencyKey: "BULK-1",
		Items: []dto.BulkTransferLine{
			{ItemRef: dto.ItemRef{Artist: "Artist1", Category: "album", AlbumVersion: "V1"}, FromLocation: "A", Quantity: 2},
			{ItemRef: dto.ItemRef{Artist: "Artist1", Category: "album", AlbumVersion: "V1"}, FromLocation: "A", Quantity: -1},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["succeeded"])
	assert.Equal(t, float64(1), body["failed"])
	failures, _ := body["failures"].([]any)
	require.Len(t, failures, 1)
	first, _ := failures[0].(map[string]any)
	assert.Equal(t, "validate", first["failing_step"])
}

func TestListMovements_FechaInvalida(t *testing.T) {
	app, _ := buildRouterApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/api/inventory/movements?from=ayer", tokenForRole(t, entity.RoleViewer), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestListMovements_DiaNoSeCombinaConRango(t *testing.T) {
	app, _ := buildRouterApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/api/inventory/movements?day=2026-01-02&from=2026-01-01",
		tokenForRole(t, entity.RoleViewer), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestSummarizeMovements_FiltroPorAnio(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("seed", 10))
	out := movementIn("sale", 3)
	out.Direction = "OUT"
	out.Memo = "venta"
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, out)

	year := strconv.Itoa(time.Now().Year())
	resp, nets := getList(t, app, "/api/inventory/movements/summary?year="+year, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, nets, 1)
	assert.Equal(t, float64(7), nets[0]["net"])
	assert.Equal(t, "A", nets[0]["location"])

	resp, nets = getList(t, app, "/api/inventory/movements/summary?year=2000", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, nets)
}

func TestListAnomalies_LimiteCeroONegativo(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("seed", 1))
	out := movementIn("sale", 4)
	out.Direction = "OUT"
	out.Memo = "venta"
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, out)

	for _, q := range []string{"?limit=0", "?limit=-1", "?offset=-3"} {
		resp, list := getList(t, app, "/api/inventory/anomalies"+q, auth)
		assert.Equal(t, http.StatusOK, resp.StatusCode, q)
		assert.Len(t, list, 1, q)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Períodos
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriods_IniciarYConsultarApertura(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)
	doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, movementIn("seed", 6))

	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/periods", auth, dto.PeriodRequest{Period: "2026-04"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "2026-04", body["current"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/inventory/periods", auth, dto.PeriodRequest{Period: "2026-04"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/inventory/periods/openings", tokenForRole(t, entity.RoleViewer), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2026-04", body["period"])
	openings, _ := body["openings"].([]any)
	require.Len(t, openings, 1)
	first, _ := openings[0].(map[string]any)
	assert.Equal(t, float64(6), first["quantity"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/inventory/periods/openings?period=2020-01", auth, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestPeriods_RolConAlcanceNoIniciaPeriodo(t *testing.T) {
	app, store := buildRouterApp(t)
	store.SetScope(entity.LocationScope{UserID: testUserID, PrimaryLocation: "A"})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/inventory/periods", tokenForRole(t, entity.RoleScopedManager), dto.PeriodRequest{Period: "2026-04"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEvents_SalidaAbiertaYDevolucion(t *testing.T) {
	app, _ := buildRouterApp(t)
	auth := tokenForRole(t, entity.RoleOperator)

	out := movementIn("ev-out", 2)
	out.Direction = "OUT"
	out.Memo = "exhibición"
	out.Event = true
	resp, body := doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	eventID, _ := body["event_id"].(string)
	require.NotEmpty(t, eventID)

	resp, body = doJSON(t, app, http.MethodGet, "/api/inventory/movements?open_events=true", auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	items, _ := body["items"].([]any)
	assert.Len(t, items, 1)

	back := movementIn("ev-in", 2)
	back.EventID = eventID
	resp, _ = doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, back)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	back.IdempotencyKey = "ev-in-2"
	resp, body = doJSON(t, app, http.MethodPost, "/api/inventory/movements", auth, back)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "event", body["step"])

	_, body = doJSON(t, app, http.MethodGet, "/api/inventory/movements?open_events=true", auth, nil)
	items, _ = body["items"].([]any)
	assert.Empty(t, items)
}
