package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSuma(t *testing.T) {
	got := inventory.ApplyMovement(10, entity.Movement{Type: entity.MovementTypeEntrada, Quantity: 5})
	assert.Equal(t, 15, got)
}

func TestApplyMovement_SalidaResta(t *testing.T) {
	got := inventory.ApplyMovement(10, entity.Movement{Type: entity.MovementTypeSalida, Quantity: 4})
	assert.Equal(t, 6, got)
}

// La salida que excede la existencia recorta en cero, no rechaza.
func TestApplyMovement_SalidaRecortaEnCero(t *testing.T) {
	got := inventory.ApplyMovement(6, entity.Movement{Type: entity.MovementTypeSalida, Quantity: 10})
	assert.Equal(t, 0, got, "la existencia nunca baja de cero")
}

func TestApplyMovement_AjusteAplicaDeltaConSigno(t *testing.T) {
	got := inventory.ApplyMovement(10, entity.Movement{Type: entity.MovementTypeAjuste, Quantity: 3, Delta: -3})
	assert.Equal(t, 7, got)

	got = inventory.ApplyMovement(10, entity.Movement{Type: entity.MovementTypeAjuste, Quantity: 5, Delta: 5})
	assert.Equal(t, 15, got)
}

func TestApplyMovement_AjusteNegativoRecortaEnCero(t *testing.T) {
	got := inventory.ApplyMovement(2, entity.Movement{Type: entity.MovementTypeAjuste, Quantity: 9, Delta: -9})
	assert.Equal(t, 0, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReplayQuantity
// ──────────────────────────────────────────────────────────────────────────────

// El replay aplica el recorte paso a paso: una salida excedida seguida de una
// entrada no "recupera" lo recortado.
func TestReplayQuantity_RecorteEsPasoAPaso(t *testing.T) {
	movs := []entity.Movement{
		{Type: entity.MovementTypeEntrada, Quantity: 10},
		{Type: entity.MovementTypeSalida, Quantity: 4},
		{Type: entity.MovementTypeSalida, Quantity: 10}, // 6 - 10 → 0
		{Type: entity.MovementTypeEntrada, Quantity: 3},
	}
	assert.Equal(t, 3, inventory.ReplayQuantity(movs))
}

func TestReplayQuantity_LogVacioEsCero(t *testing.T) {
	assert.Equal(t, 0, inventory.ReplayQuantity(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// StockStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestStockStatus_FronteraDelMinimo(t *testing.T) {
	assert.Equal(t, entity.StockStatusOptimo, inventory.StockStatus(6, 5), "6 >= 5 es óptimo")
	assert.Equal(t, entity.StockStatusOptimo, inventory.StockStatus(5, 5), "igual al mínimo sigue siendo óptimo")
	assert.Equal(t, entity.StockStatusReorden, inventory.StockStatus(3, 5), "por debajo del mínimo pide reorden")
	assert.Equal(t, entity.StockStatusOptimo, inventory.StockStatus(0, 0), "sin mínimo configurado nunca hay reorden")
}
