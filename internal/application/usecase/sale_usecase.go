package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas del back-office.
type SaleUseCase struct {
	repo       repository.SaleRepository
	clientRepo repository.ClientRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, clientRepo repository.ClientRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, clientRepo: clientRepo}
}

// Create registra una venta. Si trae cliente, el cliente debe existir.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Concept == "" || in.Total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Concept:   in.Concept,
		Total:     in.Total,
		Fecha:     fecha,
		CreatedAt: now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	return &out, nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	out := toSaleResponse(sale)
	return &out, nil
}

// List lista ventas con paginación.
func (uc *SaleUseCase) List(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una venta.
func (uc *SaleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		Concept:   s.Concept,
		Total:     s.Total,
		Fecha:     s.Fecha,
		CreatedAt: s.CreatedAt,
	}
}
