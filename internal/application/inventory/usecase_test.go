package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// AdjustInventory
// ──────────────────────────────────────────────────────────────────────────────

// El ajuste fija la cantidad y deja constancia en el log con el delta firmado,
// de modo que el replay del log reproduce la corrección.
func TestAdjustInventory_RegistraAjusteConDelta(t *testing.T) {
	f := newFixture(t)
	f.register(t, entity.MovementTypeEntrada, 10)

	item, err := f.uc.AdjustInventory(context.Background(), testWarehouseID, testProductID, 7, "conteo físico")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	movs, err := f.movRepo.ListByPair(testWarehouseID, testProductID)
	require.NoError(t, err)
	require.Len(t, movs, 2)

	// Prepend: el ajuste queda al frente del log.
	ajuste := movs[0]
	assert.Equal(t, entity.MovementTypeAjuste, ajuste.Type)
	assert.Equal(t, -3, ajuste.Delta)
	assert.Equal(t, 3, ajuste.Quantity, "la cantidad del ajuste es el valor absoluto del delta")
	assert.Equal(t, "conteo físico", ajuste.Notes)
}

func TestAdjustInventory_SinCambioNoRegistraMovimiento(t *testing.T) {
	f := newFixture(t)
	f.register(t, entity.MovementTypeEntrada, 10)

	_, err := f.uc.AdjustInventory(context.Background(), testWarehouseID, testProductID, 10, "")
	require.NoError(t, err)

	movs, err := f.movRepo.ListByPair(testWarehouseID, testProductID)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "un ajuste a la misma cantidad no ensucia el log")
}

// A diferencia de una salida, el ajuste sobre un par sin rastrear sí crea el
// item: es una corrección explícita del operador.
func TestAdjustInventory_ParSinRastrearCreaItem(t *testing.T) {
	f := newFixture(t)

	item, err := f.uc.AdjustInventory(context.Background(), testWarehouseID, testProductID, 5, "")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	got, err := f.itemRepo.GetByPair(testWarehouseID, testProductID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Quantity)
}

func TestAdjustInventory_CantidadNegativaRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AdjustInventory(context.Background(), testWarehouseID, testProductID, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateMinimumStock y estado derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateMinimumStock_DerivaEstado(t *testing.T) {
	f := newFixture(t)
	f.register(t, entity.MovementTypeEntrada, 6)

	_, err := f.uc.UpdateMinimumStock(testWarehouseID, testProductID, 5)
	require.NoError(t, err)

	items, err := f.uc.InventoryByWarehouse(testWarehouseID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.StockStatusOptimo, items[0].Status, "6 >= 5 es óptimo")

	// Tras consumir 3, queda por debajo del mínimo.
	f.register(t, entity.MovementTypeSalida, 3)
	items, err = f.uc.InventoryByWarehouse(testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusReorden, items[0].Status)
}

func TestUpdateMinimumStock_ParSinRastrear(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateMinimumStock(testWarehouseID, testProductID, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el mínimo solo aplica a pares rastreados")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas del log
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentMovements_TopeDiezDescendente(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 13; i++ {
		f.register(t, entity.MovementTypeEntrada, i+1)
	}

	movs, err := f.uc.RecentMovementsByWarehouse(testWarehouseID)
	require.NoError(t, err)
	require.Len(t, movs, 10, "el listado reciente corta en 10")

	// Descendente por fecha: el último registrado (cantidad 13) va primero.
	assert.Equal(t, 13, movs[0].Quantity)
	for i := 1; i < len(movs); i++ {
		assert.False(t, movs[i].Fecha.After(movs[i-1].Fecha), "el orden debe ser descendente")
	}
}

func TestMovementHistory_Paginado(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 25; i++ {
		f.register(t, entity.MovementTypeEntrada, i+1)
	}

	page, err := f.uc.MovementHistory(testWarehouseID, dto.PageRequest{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Page.Total)
	assert.Len(t, page.Items, 5, "la última página trae el resto")

	// Offset fuera de rango devuelve página vacía, no error.
	page, err = f.uc.MovementHistory(testWarehouseID, dto.PageRequest{Limit: 10, Offset: 100})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.Page.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// RebuildQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Si la existencia materializada diverge del log (salida sin item previo),
// rebuild la reconstituye reproduciendo el log en orden cronológico.
func TestRebuildQuantity_ReproduceElLog(t *testing.T) {
	f := newFixture(t)

	// Salida sin item: queda en el log sin existencia.
	f.register(t, entity.MovementTypeSalida, 5)
	// Luego una entrada crea el item en 10, ignorando la salida previa.
	f.register(t, entity.MovementTypeEntrada, 10)
	assert.Equal(t, 10, f.quantity(t))

	// El replay cronológico aplica salida (0, recortada) y entrada (10).
	item, err := f.uc.RebuildQuantity(context.Background(), testWarehouseID, testProductID)
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)

	// Con un ajuste de por medio el replay también lo respeta.
	_, err = f.uc.AdjustInventory(context.Background(), testWarehouseID, testProductID, 4, "")
	require.NoError(t, err)
	item, err = f.uc.RebuildQuantity(context.Background(), testWarehouseID, testProductID)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
}

func TestRebuildQuantity_ParDesconocido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RebuildQuantity(context.Background(), testWarehouseID, "prod-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReorderList
// ──────────────────────────────────────────────────────────────────────────────

func TestReorderList_SugiereFaltantesOrdenados(t *testing.T) {
	f := newFixture(t)
	f.register(t, entity.MovementTypeEntrada, 2)
	_, err := f.uc.UpdateMinimumStock(testWarehouseID, testProductID, 10)
	require.NoError(t, err)

	list, err := f.uc.ReorderList(testWarehouseID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, testProductID, list[0].ProductID)
	assert.Equal(t, "Kit PCR", list[0].ProductName)
	assert.Equal(t, 8, list[0].SuggestedOrderQty, "sugerido = mínimo - existencia")
}

func TestReorderList_SinFaltantesEsVacia(t *testing.T) {
	f := newFixture(t)
	f.register(t, entity.MovementTypeEntrada, 20)
	_, err := f.uc.UpdateMinimumStock(testWarehouseID, testProductID, 10)
	require.NoError(t, err)

	list, err := f.uc.ReorderList(testWarehouseID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
