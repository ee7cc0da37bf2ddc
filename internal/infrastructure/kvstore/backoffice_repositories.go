package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository      = (*SaleRepo)(nil)
	_ repository.SolicitudRepository = (*SolicitudRepo)(nil)
	_ repository.ProspectoRepository = (*ProspectoRepo)(nil)
)

// SaleRepo persiste ventas bajo la clave meddev-ventas.
type SaleRepo struct {
	col *Collection[entity.Sale]
}

// NewSaleRepository construye el adaptador de persistencia de ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{col: NewCollection[entity.Sale](store, KeyVentas)}
}

// Create agrega una venta nueva.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	return r.col.Update(func(items []entity.Sale) ([]entity.Sale, error) {
		return append(items, *sale), nil
	})
}

// GetByID obtiene una venta por ID; nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var found *entity.Sale
	err := r.col.View(func(items []entity.Sale) error {
		for i := range items {
			if items[i].ID == id {
				s := items[i]
				found = &s
				return nil
			}
		}
		return nil
	})
	return found, err
}

// List devuelve ventas con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.col.View(func(items []entity.Sale) error {
		out = paginate(items, limit, offset)
		return nil
	})
	return out, err
}

// ListAll devuelve todas las ventas (para agregados del dashboard).
func (r *SaleRepo) ListAll() ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.col.View(func(items []entity.Sale) error {
		for i := range items {
			s := items[i]
			out = append(out, &s)
		}
		return nil
	})
	return out, err
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Sale) ([]entity.Sale, error) {
		next := items[:0:0]
		for _, s := range items {
			if s.ID != id {
				next = append(next, s)
			}
		}
		return next, nil
	})
}

// SolicitudRepo persiste solicitudes bajo la clave zogen-solicitudes.
type SolicitudRepo struct {
	col *Collection[entity.Solicitud]
}

// NewSolicitudRepository construye el adaptador de persistencia de solicitudes.
func NewSolicitudRepository(store *Store) *SolicitudRepo {
	return &SolicitudRepo{col: NewCollection[entity.Solicitud](store, KeySolicitudes)}
}

// Create agrega una solicitud nueva.
func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	return r.col.Update(func(items []entity.Solicitud) ([]entity.Solicitud, error) {
		return append(items, *s), nil
	})
}

// GetByID obtiene una solicitud por ID; nil si no existe.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	var found *entity.Solicitud
	err := r.col.View(func(items []entity.Solicitud) error {
		for i := range items {
			if items[i].ID == id {
				s := items[i]
				found = &s
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza la solicitud con el mismo ID.
func (r *SolicitudRepo) Update(s *entity.Solicitud) error {
	return r.col.Update(func(items []entity.Solicitud) ([]entity.Solicitud, error) {
		for i := range items {
			if items[i].ID == s.ID {
				items[i] = *s
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// ListAll devuelve todas las solicitudes.
func (r *SolicitudRepo) ListAll() ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	err := r.col.View(func(items []entity.Solicitud) error {
		for i := range items {
			s := items[i]
			out = append(out, &s)
		}
		return nil
	})
	return out, err
}

// Delete elimina una solicitud por ID.
func (r *SolicitudRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Solicitud) ([]entity.Solicitud, error) {
		next := items[:0:0]
		for _, s := range items {
			if s.ID != id {
				next = append(next, s)
			}
		}
		return next, nil
	})
}

// ProspectoRepo persiste prospectos bajo la clave zogen-prospectos.
type ProspectoRepo struct {
	col *Collection[entity.Prospecto]
}

// NewProspectoRepository construye el adaptador de persistencia de prospectos.
func NewProspectoRepository(store *Store) *ProspectoRepo {
	return &ProspectoRepo{col: NewCollection[entity.Prospecto](store, KeyProspectos)}
}

// Create agrega un prospecto nuevo.
func (r *ProspectoRepo) Create(p *entity.Prospecto) error {
	return r.col.Update(func(items []entity.Prospecto) ([]entity.Prospecto, error) {
		return append(items, *p), nil
	})
}

// GetByID obtiene un prospecto por ID; nil si no existe.
func (r *ProspectoRepo) GetByID(id string) (*entity.Prospecto, error) {
	var found *entity.Prospecto
	err := r.col.View(func(items []entity.Prospecto) error {
		for i := range items {
			if items[i].ID == id {
				p := items[i]
				found = &p
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el prospecto con el mismo ID.
func (r *ProspectoRepo) Update(p *entity.Prospecto) error {
	return r.col.Update(func(items []entity.Prospecto) ([]entity.Prospecto, error) {
		for i := range items {
			if items[i].ID == p.ID {
				items[i] = *p
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// ListAll devuelve todos los prospectos.
func (r *ProspectoRepo) ListAll() ([]*entity.Prospecto, error) {
	var out []*entity.Prospecto
	err := r.col.View(func(items []entity.Prospecto) error {
		for i := range items {
			p := items[i]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

// Delete elimina un prospecto por ID.
func (r *ProspectoRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Prospecto) ([]entity.Prospecto, error) {
		next := items[:0:0]
		for _, p := range items {
			if p.ID != id {
				next = append(next, p)
			}
		}
		return next, nil
	})
}
