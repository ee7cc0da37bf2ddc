package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada en el back-office (monto en MXN).
type Sale struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"clienteId,omitempty"`
	Concept   string          `json:"concepto"`
	Total     decimal.Decimal `json:"total"`
	Fecha     time.Time       `json:"fecha"`
	CreatedAt time.Time       `json:"createdAt"`
}
