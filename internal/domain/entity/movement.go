package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
	MovementTypeAjuste  = "ajuste" // corrección manual, también queda en el log
)

// Movement representa un evento inmutable del ledger de inventario contra un
// par (almacén, producto). La colección persistida se mantiene en orden
// más-reciente-primero y solo crece (append-only).
type Movement struct {
	ID          string    `json:"id"`
	Fecha       time.Time `json:"fecha"`
	Type        string    `json:"tipo"` // entrada, salida, ajuste
	WarehouseID string    `json:"almacenId"`
	ProductID   string    `json:"productoId"`
	Quantity    int       `json:"cantidad"`        // entero positivo
	Delta       int       `json:"delta,omitempty"` // solo ajustes: delta con signo aplicado a la existencia
	Reference   string    `json:"referencia,omitempty"`
	Notes       string    `json:"notas,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidMovementType reporta si el tipo es uno de los del ledger.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida || t == MovementTypeAjuste
}
