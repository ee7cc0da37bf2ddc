package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertContactRequest body para PUT /api/contacts.
type UpsertContactRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	ContactName string `json:"contactName,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	PhoneNumber string    `json:"phoneNumber"`
	ContactName string    `json:"contactName,omitempty"`
	Status      string    `json:"status,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ClientID string          `json:"client_id"`
	Concept  string          `json:"concept" validate:"required"`
	Total    decimal.Decimal `json:"total"`
	Fecha    *time.Time      `json:"fecha"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id,omitempty"`
	Concept   string          `json:"concept"`
	Total     decimal.Decimal `json:"total"`
	Fecha     time.Time       `json:"fecha"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateSolicitudRequest entrada para crear una solicitud.
type CreateSolicitudRequest struct {
	Paciente string `json:"paciente"`
	Tipo     string `json:"tipo" validate:"required"`
	Notas    string `json:"notas"`
}

// UpdateSolicitudRequest entrada para actualizar una solicitud.
type UpdateSolicitudRequest struct {
	Estado *string `json:"estado" validate:"omitempty,oneof=pendiente en-proceso completada"`
	Notas  *string `json:"notas"`
}

// SolicitudResponse salida de una solicitud.
type SolicitudResponse struct {
	ID        string    `json:"id"`
	Paciente  string    `json:"paciente,omitempty"`
	Tipo      string    `json:"tipo"`
	Estado    string    `json:"estado"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProspectoRequest entrada para crear un prospecto.
type CreateProspectoRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Notas string `json:"notas"`
}

// UpdateProspectoRequest entrada para actualizar un prospecto.
type UpdateProspectoRequest struct {
	Estado *string `json:"estado" validate:"omitempty,oneof=nuevo contactado convertido"`
	Notas  *string `json:"notas"`
}

// ProspectoResponse salida de un prospecto.
type ProspectoResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Estado    string    `json:"estado"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
