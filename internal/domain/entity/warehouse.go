package entity

import "time"

// Warehouse representa un almacén donde se guarda inventario (multi-almacén).
type Warehouse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Location  string    `json:"ubicacion"`
	CreatedAt time.Time `json:"createdAt"`
}
