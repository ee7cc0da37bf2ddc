package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zogen/backoffice-api/internal/application/crm"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

// SolicitudUseCase casos de uso de solicitudes. Las lecturas de listado pasan
// por el cache inyectado; toda mutación lo invalida.
type SolicitudUseCase struct {
	repo  repository.SolicitudRepository
	cache *crm.Cache[dto.SolicitudResponse]
}

// NewSolicitudUseCase construye el caso de uso con su cache.
func NewSolicitudUseCase(repo repository.SolicitudRepository, cache *crm.Cache[dto.SolicitudResponse]) *SolicitudUseCase {
	return &SolicitudUseCase{repo: repo, cache: cache}
}

// Create crea una solicitud en estado pendiente.
func (uc *SolicitudUseCase) Create(in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	now := time.Now()
	s := &entity.Solicitud{
		ID:        uuid.New().String(),
		Paciente:  in.Paciente,
		Tipo:      in.Tipo,
		Estado:    entity.SolicitudPendiente,
		Notas:     in.Notas,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	out := toSolicitudResponse(s)
	return &out, nil
}

// GetByID obtiene una solicitud por ID.
func (uc *SolicitudUseCase) GetByID(id string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	out := toSolicitudResponse(s)
	return &out, nil
}

// Update actualiza estado y notas de una solicitud.
func (uc *SolicitudUseCase) Update(id string, in dto.UpdateSolicitudRequest) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Estado != nil {
		s.Estado = *in.Estado
	}
	if in.Notas != nil {
		s.Notas = *in.Notas
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	out := toSolicitudResponse(s)
	return &out, nil
}

// List devuelve todas las solicitudes, servidas desde el cache mientras siga
// vigente.
func (uc *SolicitudUseCase) List() ([]dto.SolicitudResponse, error) {
	return uc.cache.Get(func() ([]dto.SolicitudResponse, error) {
		list, err := uc.repo.ListAll()
		if err != nil {
			return nil, err
		}
		out := make([]dto.SolicitudResponse, 0, len(list))
		for _, s := range list {
			out = append(out, toSolicitudResponse(s))
		}
		return out, nil
	})
}

// Delete elimina una solicitud.
func (uc *SolicitudUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}

func toSolicitudResponse(s *entity.Solicitud) dto.SolicitudResponse {
	return dto.SolicitudResponse{
		ID:        s.ID,
		Paciente:  s.Paciente,
		Tipo:      s.Tipo,
		Estado:    s.Estado,
		Notas:     s.Notas,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
