package entity

import "time"

// Client representa un cliente del catálogo comercial (laboratorio, clínica
// o persona física). Nunca es referenciado por el ledger de inventario.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
