package usecase

import (
	"time"

	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
	"github.com/zogen/backoffice-api/pkg/idgen"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	itemRepo repository.InventoryItemRepository
	movRepo  repository.MovementRepository
	ids      idgen.Generator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.MovementRepository,
	ids idgen.Generator,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, itemRepo: itemRepo, movRepo: movRepo, ids: ids}
}

// Create crea un producto nuevo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidProductType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          uc.ids.NewID(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Type:        in.Type,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables (nombre, precio, descripción).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto. Se bloquea con ErrReferenced si el ledger
// (movimientos o existencias) lo referencia: conteo de referencias, sin
// cascada ni huérfanos.
func (uc *ProductUseCase) Delete(id string) error {
	if ref, err := uc.movRepo.References("", id); err != nil {
		return err
	} else if ref {
		return domain.ErrReferenced
	}
	if ref, err := uc.itemRepo.References("", id); err != nil {
		return err
	} else if ref {
		return domain.ErrReferenced
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Type:        p.Type,
		CreatedAt:   p.CreatedAt,
	}
}
