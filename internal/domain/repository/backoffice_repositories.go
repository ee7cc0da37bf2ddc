package repository

import "github.com/zogen/backoffice-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListAll() ([]*entity.Sale, error)
	Delete(id string) error
}

// SolicitudRepository define el puerto de persistencia para solicitudes.
type SolicitudRepository interface {
	Create(s *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	Update(s *entity.Solicitud) error
	ListAll() ([]*entity.Solicitud, error)
	Delete(id string) error
}

// ProspectoRepository define el puerto de persistencia para prospectos.
type ProspectoRepository interface {
	Create(p *entity.Prospecto) error
	GetByID(id string) (*entity.Prospecto, error)
	Update(p *entity.Prospecto) error
	ListAll() ([]*entity.Prospecto, error)
	Delete(id string) error
}
