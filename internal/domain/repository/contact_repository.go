package repository

import "github.com/zogen/backoffice-api/internal/domain/entity"

// ContactRepository define el puerto del archivo de contactos
// (objeto JSON indexado por teléfono, lectura/escritura completa).
type ContactRepository interface {
	List() ([]*entity.Contact, error)
	GetByPhone(phone string) (*entity.Contact, error)
	Upsert(contact *entity.Contact) error
}
