package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/catalog"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/report"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Kardex-api/internal/interfaces/http"
)

const (
	apiProductID = "11111111-1111-1111-1111-111111111111"
	apiLocationA = "22222222-2222-2222-2222-222222222222"
	apiLocationB = "33333333-3333-3333-3333-333333333333"
)

// buildAPIApp monta la API completa (router + middlewares) sobre un Store en
// memoria con un producto y dos ubicaciones de catálogo.
func buildAPIApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	productRepo := memory.NewProductRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{
		ID: apiProductID, SKU: "MAT-001", Name: "Lámina de acero",
		Category: entity.ProductCategoryMaterial, UOM: "unidad",
		UnitPrice: decimal.NewFromInt(100), IsActive: true,
	}))
	locationRepo := memory.NewLocationRepository(store)
	require.NoError(t, locationRepo.Create(&entity.Location{
		ID: apiLocationA, Code: "BOD-01", Name: "Bodega principal",
		Type: entity.LocationTypeWarehouse, IsActive: true,
	}))
	require.NoError(t, locationRepo.Create(&entity.Location{
		ID: apiLocationB, Code: "PISO-01", Name: "Piso de producción",
		Type: entity.LocationTypeProductionFloor, IsActive: true,
	}))

	txRunner := memory.NewTxRunner(store)
	ledgerRepo := memory.NewLedgerRepository(store)
	balanceRepo := memory.NewBalanceRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Movements:  inventory.NewMovementUseCase(txRunner, productRepo, locationRepo, inventory.Policy{}),
		Queries:    inventory.NewQueryUseCase(ledgerRepo, balanceRepo),
		Audit:      inventory.NewAuditUseCase(txRunner, ledgerRepo, balanceRepo),
		Reports:    report.NewReportUseCase(memory.NewReportRepository(store), 10),
		ProductUC:  catalog.NewProductUseCase(productRepo),
		LocationUC: catalog.NewLocationUseCase(locationRepo),
		JWTSecret:  testJWTSecret,
	})
	return app, store
}

// apiRequest lanza una petición autenticada con body JSON opcional.
func apiRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección de rutas
// ──────────────────────────────────────────────────────────────────────────────

// Toda la API vive detrás del middleware de auth.
func TestAPI_RutasProtegidas(t *testing.T) {
	app, _ := buildAPIApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/balances", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de movimientos vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Compra → saldo consultable → kardex con el asiento firmado por el actor.
func TestAPI_MovimientoCompleto(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypePurchase,
		"direction":        "in",
		"qty":              100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movement struct {
		ReferenceID string `json:"reference_id"`
		Entries     []struct {
			Qty       int64  `json:"qty"`
			CreatedBy string `json:"created_by"`
		} `json:"entries"`
		Balances []struct {
			CurrentQty int64 `json:"current_qty"`
		} `json:"balances"`
	}
	decodeJSON(t, resp, &movement)
	require.Len(t, movement.Entries, 1)
	assert.Equal(t, int64(100), movement.Entries[0].Qty)
	assert.Equal(t, testUserID, movement.Entries[0].CreatedBy,
		"created_by sale del token del actor")
	require.Len(t, movement.Balances, 1)
	assert.Equal(t, int64(100), movement.Balances[0].CurrentQty)

	// El saldo queda consultable.
	resp = apiRequest(t, app, http.MethodGet,
		"/api/inventory/balances?product_id="+apiProductID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var balances struct {
		Total    int `json:"total"`
		Balances []struct {
			CurrentQty int64 `json:"current_qty"`
		} `json:"balances"`
	}
	decodeJSON(t, resp, &balances)
	require.Equal(t, 1, balances.Total)
	assert.Equal(t, int64(100), balances.Balances[0].CurrentQty)
}

// Traslado HTTP: dos asientos en la respuesta con la misma referencia.
func TestAPI_Traslado(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypePurchase,
		"direction":        "in",
		"qty":              100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"from_location_id": apiLocationA,
		"to_location_id":   apiLocationB,
		"transaction_type": entity.TransactionTypeTransfer,
		"qty":              40,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movement struct {
		ReferenceID string `json:"reference_id"`
		Entries     []struct {
			LocationID string `json:"location_id"`
			Qty        int64  `json:"qty"`
			RefID      string `json:"ref_id"`
		} `json:"entries"`
	}
	decodeJSON(t, resp, &movement)
	require.Len(t, movement.Entries, 2)
	assert.Equal(t, movement.ReferenceID, movement.Entries[0].RefID)
	assert.Equal(t, movement.ReferenceID, movement.Entries[1].RefID)
}

// Validación → 400, stock insuficiente → 409.
func TestAPI_ErroresDeDominio(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypePurchase,
		"direction":        "in",
		"qty":              0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cantidad cero → 400")
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypeSale,
		"direction":        "out",
		"qty":              10,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "sin stock → 409")

	var body struct {
		Code string `json:"code"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Corromper el saldo por fuera del proyector y reconciliar por API:
// recompute detecta, repair corrige, recompute queda limpio.
func TestAPI_AuditoriaEndToEnd(t *testing.T) {
	app, store := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypePurchase,
		"direction":        "in",
		"qty":              100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, memory.NewBalanceRepository(store).Upsert(&entity.StockBalance{
		ProductID: apiProductID, LocationID: apiLocationA,
		CurrentQty: 175, LastUpdated: time.Now(),
	}))

	var audit struct {
		CheckedPairs int `json:"checked_pairs"`
		Drifted      []struct {
			ExpectedQty int64 `json:"expected_qty"`
			ActualQty   int64 `json:"actual_qty"`
		} `json:"drifted"`
	}
	resp = apiRequest(t, app, http.MethodPost, "/api/inventory/audit/recompute", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &audit)
	require.Len(t, audit.Drifted, 1)
	assert.Equal(t, int64(100), audit.Drifted[0].ExpectedQty)
	assert.Equal(t, int64(175), audit.Drifted[0].ActualQty)

	var repair struct {
		Repaired []struct {
			ExpectedQty int64 `json:"expected_qty"`
		} `json:"repaired"`
	}
	resp = apiRequest(t, app, http.MethodPost, "/api/inventory/audit/repair", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &repair)
	require.Len(t, repair.Repaired, 1)

	resp = apiRequest(t, app, http.MethodPost, "/api/inventory/audit/recompute", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &audit)
	assert.Empty(t, audit.Drifted, "tras reparar no debe quedar desviación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y catálogo vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ReporteDeInventario(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id":       apiProductID,
		"location_id":      apiLocationA,
		"transaction_type": entity.TransactionTypePurchase,
		"direction":        "in",
		"qty":              80,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var summary struct {
		TotalProducts   int    `json:"total_products"`
		TotalUnits      int64  `json:"total_units"`
		TotalStockValue string `json:"total_stock_value"`
	}
	resp = apiRequest(t, app, http.MethodGet, "/api/reports/inventory", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &summary)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, int64(80), summary.TotalUnits)
	assert.Equal(t, "8000", summary.TotalStockValue, "80 × 100 valorizado")
}

func TestAPI_CatalogoCRUD(t *testing.T) {
	app, _ := buildAPIApp(t)

	resp := apiRequest(t, app, http.MethodPost, "/api/products", fiber.Map{
		"sku": "FG-001", "name": "Motor ensamblado",
		"category": entity.ProductCategoryFinishedGood, "uom": "unidad",
		"unit_price": "300.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &product)
	require.NotEmpty(t, product.ID)

	// SKU duplicado → 409.
	resp = apiRequest(t, app, http.MethodPost, "/api/products", fiber.Map{
		"sku": "FG-001", "name": "Otro motor",
		"category": entity.ProductCategoryFinishedGood, "uom": "unidad",
		"unit_price": "1.00",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodGet, "/api/products/"+product.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
