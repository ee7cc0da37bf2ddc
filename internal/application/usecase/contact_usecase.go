package usecase

import (
	"time"

	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

// ContactUseCase casos de uso del archivo de contactos de WhatsApp.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// List devuelve todos los contactos.
func (uc *ContactUseCase) List() ([]dto.ContactResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Upsert inserta o reemplaza el contacto del teléfono, estampando updatedAt.
func (uc *ContactUseCase) Upsert(in dto.UpsertContactRequest) (*dto.ContactResponse, error) {
	if in.PhoneNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	contact := &entity.Contact{
		PhoneNumber: in.PhoneNumber,
		ContactName: in.ContactName,
		Status:      in.Status,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(contact); err != nil {
		return nil, err
	}
	out := toContactResponse(contact)
	return &out, nil
}

func toContactResponse(c *entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		PhoneNumber: c.PhoneNumber,
		ContactName: c.ContactName,
		Status:      c.Status,
		UpdatedAt:   c.UpdatedAt,
	}
}
