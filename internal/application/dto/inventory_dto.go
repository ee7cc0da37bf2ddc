package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	Type        string `json:"type" validate:"required,oneof=entrada salida"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Reference   string `json:"reference,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// AdjustInventoryRequest body para POST /api/inventory/adjustments:
// corrección manual de existencias, registrada también en el log.
type AdjustInventoryRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	NewQuantity int    `json:"new_quantity" validate:"min=0"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateMinimumStockRequest body para PUT /api/inventory/minimum-stock.
type UpdateMinimumStockRequest struct {
	WarehouseID  string `json:"warehouse_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	MinimumStock int    `json:"minimum_stock" validate:"min=0"`
}

// RebuildQuantityRequest body para POST /api/inventory/rebuild.
type RebuildQuantityRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	Fecha       time.Time `json:"fecha"`
	Type        string    `json:"type"`
	WarehouseID string    `json:"warehouse_id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Delta       int       `json:"delta,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// InventoryItemResponse salida de una existencia con su estado derivado.
type InventoryItemResponse struct {
	ID           string    `json:"id"`
	WarehouseID  string    `json:"warehouse_id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	MinimumStock int       `json:"minimum_stock"`
	Lot          string    `json:"lot,omitempty"`
	Status       string    `json:"status"` // optimo | reorden
	UpdatedAt    time.Time `json:"updated_at"`
}

// MovementListResponse lista de movimientos (reciente-primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReorderSuggestionDTO representa un producto por debajo de su stock mínimo
// en un almacén, con la cantidad sugerida de pedido.
type ReorderSuggestionDTO struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	WarehouseID       string `json:"warehouse_id"`
	Quantity          int    `json:"quantity"`
	MinimumStock      int    `json:"minimum_stock"`
	SuggestedOrderQty int    `json:"suggested_order_qty"` // MinimumStock - Quantity
}
