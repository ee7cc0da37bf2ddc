package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto del catálogo médico.
const (
	ProductTypeReactivo = "reactivo"
	ProductTypeEquipo   = "equipo-medico"
)

// Product representa un producto del catálogo (reactivo de diagnóstico o
// equipo médico). Price es el precio de lista en MXN; el stock se maneja por
// almacén en InventoryItem.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Price       decimal.Decimal `json:"precio"`
	Description string          `json:"descripcion,omitempty"`
	Type        string          `json:"tipo"` // reactivo, equipo-medico
	CreatedAt   time.Time       `json:"createdAt"`
}

// ValidProductType reporta si el tipo es uno de los del catálogo.
func ValidProductType(t string) bool {
	return t == ProductTypeReactivo || t == ProductTypeEquipo
}
