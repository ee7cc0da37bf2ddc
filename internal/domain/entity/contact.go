package entity

import "time"

// Contact representa un contacto de WhatsApp del pipeline comercial.
// Se persiste en data/contacts.json como objeto indexado por teléfono.
type Contact struct {
	PhoneNumber string    `json:"phoneNumber"`
	ContactName string    `json:"contactName,omitempty"`
	Status      string    `json:"status,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
