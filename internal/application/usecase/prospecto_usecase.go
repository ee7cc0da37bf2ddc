package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
	"github.com/zogen/backoffice-api/pkg/textutil"
)

// ProspectoUseCase casos de uso del embudo de prospectos.
type ProspectoUseCase struct {
	repo repository.ProspectoRepository
}

// NewProspectoUseCase construye el caso de uso.
func NewProspectoUseCase(repo repository.ProspectoRepository) *ProspectoUseCase {
	return &ProspectoUseCase{repo: repo}
}

// Create crea un prospecto en estado nuevo.
func (uc *ProspectoUseCase) Create(in dto.CreateProspectoRequest) (*dto.ProspectoResponse, error) {
	p := &entity.Prospecto{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Estado:    entity.ProspectoNuevo,
		Notas:     in.Notas,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	out := toProspectoResponse(p)
	return &out, nil
}

// GetByID obtiene un prospecto por ID.
func (uc *ProspectoUseCase) GetByID(id string) (*dto.ProspectoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProspectoResponse(p)
	return &out, nil
}

// Update actualiza estado y notas de un prospecto.
func (uc *ProspectoUseCase) Update(id string, in dto.UpdateProspectoRequest) (*dto.ProspectoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.Notas != nil {
		p.Notas = *in.Notas
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	out := toProspectoResponse(p)
	return &out, nil
}

// List devuelve todos los prospectos.
func (uc *ProspectoUseCase) List() ([]dto.ProspectoResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProspectoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProspectoResponse(p))
	}
	return out, nil
}

// Search filtra prospectos por nombre o teléfono, ignorando mayúsculas y
// acentos (los nombres llegan de WhatsApp con acentuación inconsistente).
func (uc *ProspectoUseCase) Search(query string) ([]dto.ProspectoResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProspectoResponse, 0)
	for _, p := range list {
		if textutil.Matches(p.Name, query) || textutil.Matches(p.Phone, query) {
			out = append(out, toProspectoResponse(p))
		}
	}
	return out, nil
}

// Delete elimina un prospecto.
func (uc *ProspectoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProspectoResponse(p *entity.Prospecto) dto.ProspectoResponse {
	return dto.ProspectoResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Estado:    p.Estado,
		Notas:     p.Notas,
		CreatedAt: p.CreatedAt,
	}
}
