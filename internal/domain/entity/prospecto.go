package entity

import "time"

// Estados del embudo de prospectos.
const (
	ProspectoNuevo      = "nuevo"
	ProspectoContactado = "contactado"
	ProspectoConvertido = "convertido"
)

// Prospecto representa un lead del pipeline de ventas por WhatsApp.
type Prospecto struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Phone     string    `json:"telefono,omitempty"`
	Estado    string    `json:"estado"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
