package entity

import "time"

// Estados del ciclo de vida de una solicitud.
const (
	SolicitudPendiente = "pendiente"
	SolicitudEnProceso = "en-proceso"
	SolicitudCompleta  = "completada"
)

// Solicitud representa una solicitud de servicio u orden interna del
// back-office (estudios, mantenimientos, pedidos).
type Solicitud struct {
	ID        string    `json:"id"`
	Paciente  string    `json:"paciente,omitempty"`
	Tipo      string    `json:"tipo"`
	Estado    string    `json:"estado"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
