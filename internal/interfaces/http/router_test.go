package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zogen/backoffice-api/internal/application/crm"
	"github.com/zogen/backoffice-api/internal/application/dto"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
	"github.com/zogen/backoffice-api/internal/application/usecase"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/infrastructure/contacts"
	"github.com/zogen/backoffice-api/internal/infrastructure/kvstore"
	"github.com/zogen/backoffice-api/internal/infrastructure/webhook"
	apphttp "github.com/zogen/backoffice-api/internal/interfaces/http"
	"github.com/zogen/backoffice-api/pkg/idgen"
	"github.com/zogen/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta la aplicación completa sobre un directorio temporal,
// con el webhook apuntando a upstreamURL (puede ser "" si el test no lo usa).
func buildTestApp(t *testing.T, upstreamURL string) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	store, err := kvstore.New(dir)
	require.NoError(t, err)
	contactRepo, err := contacts.NewFileRepository(dir + "/contacts.json")
	require.NoError(t, err)

	productRepo := kvstore.NewProductRepository(store)
	warehouseRepo := kvstore.NewWarehouseRepository(store)
	clientRepo := kvstore.NewClientRepository(store)
	itemRepo := kvstore.NewInventoryItemRepository(store)
	movRepo := kvstore.NewMovementRepository(store)
	saleRepo := kvstore.NewSaleRepository(store)

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	catalogIDs := idgen.NewEpochMillis("")
	movementIDs := idgen.NewEpochMillis("mv-")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(productRepo, itemRepo, movRepo, catalogIDs),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo, itemRepo, movRepo, catalogIDs),
		ClientUC:    usecase.NewClientUseCase(clientRepo, catalogIDs),
		RegisterMovement: appinventory.NewRegisterMovementUseCase(
			movRepo, itemRepo, productRepo, warehouseRepo, movementIDs, catalogIDs, log,
		),
		InventoryUC: appinventory.NewUseCase(movRepo, itemRepo, productRepo, movementIDs, catalogIDs),
		ContactUC:   usecase.NewContactUseCase(contactRepo),
		SaleUC:      usecase.NewSaleUseCase(saleRepo, clientRepo),
		SolicitudUC: usecase.NewSolicitudUseCase(
			kvstore.NewSolicitudRepository(store),
			crm.NewCache[dto.SolicitudResponse](time.Minute),
		),
		ProspectoUC: usecase.NewProspectoUseCase(kvstore.NewProspectoRepository(store)),
		DashboardUC: usecase.NewDashboardUseCase(productRepo, warehouseRepo, itemRepo, movRepo, saleRepo),
		WebhookClient: webhook.NewClient(upstreamURL, upstreamURL, 2*time.Second),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ProductoCrearYLeer(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{
		"name": "Kit PCR", "type": "reactivo", "price": "850",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Kit PCR", got.Name)
}

func TestAPI_ProductoTipoInvalidoEs400(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{
		"name": "X", "type": "mueble",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ProductoInexistenteEs404(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func seedCatalog(t *testing.T, app *fiber.App) (productID, warehouseID string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "Kit", "type": "reactivo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID = decode[dto.ProductResponse](t, resp).ID

	resp = doJSON(t, app, http.MethodPost, "/api/warehouses/", fiber.Map{"name": "CDMX"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	warehouseID = decode[dto.WarehouseResponse](t, resp).ID
	return productID, warehouseID
}

func TestAPI_FlujoDeMovimientos(t *testing.T) {
	app := buildTestApp(t, "")
	productID, warehouseID := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "entrada", "warehouse_id": warehouseID, "product_id": productID, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, entity.MovementTypeEntrada, mov.Type)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "salida", "warehouse_id": warehouseID, "product_id": productID, "quantity": 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/warehouses/"+warehouseID+"/inventory", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]dto.InventoryItemResponse](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAPI_MovimientoInvalidoEs400(t *testing.T) {
	app := buildTestApp(t, "")
	productID, warehouseID := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "traspaso", "warehouse_id": warehouseID, "product_id": productID, "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_DeleteProductoReferenciadoEs409(t *testing.T) {
	app := buildTestApp(t, "")
	productID, warehouseID := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "entrada", "warehouse_id": warehouseID, "product_id": productID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+productID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "REFERENCED", body.Code)
}

func TestAPI_AjusteDejaConstanciaEnElLog(t *testing.T) {
	app := buildTestApp(t, "")
	productID, warehouseID := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "entrada", "warehouse_id": warehouseID, "product_id": productID, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"warehouse_id": warehouseID, "product_id": productID, "new_quantity": 7, "notes": "conteo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, 7, item.Quantity)

	resp = doJSON(t, app, http.MethodGet, "/api/warehouses/"+warehouseID+"/movements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movs := decode[[]dto.MovementResponse](t, resp)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTypeAjuste, movs[0].Type)
	assert.Equal(t, -3, movs[0].Delta)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contactos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ContactosUpsertYListado(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodPut, "/api/contacts/", fiber.Map{
		"phoneNumber": "+5215512345678", "contactName": "Dra. Pérez", "status": "activo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.ContactResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Dra. Pérez", list[0].ContactName)
	assert.False(t, list[0].UpdatedAt.IsZero(), "el upsert sella updatedAt")
}

func TestAPI_ContactoSinTelefonoEs400(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodPut, "/api/contacts/", fiber.Map{"contactName": "Anónimo"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proxy CRM
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ProxyReflejaStatusDelUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/patients" {
			fmt.Fprint(w, `{"patients":[]}`)
			return
		}
		http.Error(w, "falló", http.StatusBadGateway)
	}))
	defer upstream.Close()

	app := buildTestApp(t, upstream.URL)

	resp := doJSON(t, app, http.MethodGet, "/api/crm/patients", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/crm/payment-methods", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestAPI_StatsSinPhoneNumberIdEs400(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/crm/stats", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DashboardSummary(t *testing.T) {
	app := buildTestApp(t, "")
	productID, warehouseID := seedCatalog(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/movements", fiber.Map{
		"type": "entrada", "warehouse_id": warehouseID, "product_id": productID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryResponse](t, resp)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, 1, summary.TotalWarehouses)
	assert.Equal(t, 1, summary.MovementsToday)
}
