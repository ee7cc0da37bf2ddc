package entity

import "time"

// Estados de inventario derivados para presentación.
const (
	StockStatusOptimo  = "optimo"
	StockStatusReorden = "reorden"
)

// InventoryItem representa la existencia actual de un producto en un almacén:
// cantidad materializada del log de movimientos y umbral de reorden.
// Invariante: a lo más un InventoryItem por par (almacén, producto).
type InventoryItem struct {
	ID           string    `json:"id"`
	WarehouseID  string    `json:"almacenId"`
	ProductID    string    `json:"productoId"`
	Quantity     int       `json:"cantidad"` // entero >= 0 (recortado en 0)
	MinimumStock int       `json:"stockMinimo"`
	Lot          string    `json:"lote,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
