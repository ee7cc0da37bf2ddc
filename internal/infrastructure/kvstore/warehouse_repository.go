package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre el
// adaptador de archivos JSON (clave meddev-almacenes).
type WarehouseRepo struct {
	col *Collection[entity.Warehouse]
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{col: NewCollection[entity.Warehouse](store, KeyAlmacenes)}
}

// Create agrega un almacén nuevo.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	return r.col.Update(func(items []entity.Warehouse) ([]entity.Warehouse, error) {
		for _, w := range items {
			if w.ID == warehouse.ID {
				return nil, domain.ErrDuplicate
			}
		}
		return append(items, *warehouse), nil
	})
}

// GetByID obtiene un almacén por ID; nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	var found *entity.Warehouse
	err := r.col.View(func(items []entity.Warehouse) error {
		for i := range items {
			if items[i].ID == id {
				w := items[i]
				found = &w
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el almacén con el mismo ID.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	return r.col.Update(func(items []entity.Warehouse) ([]entity.Warehouse, error) {
		for i := range items {
			if items[i].ID == warehouse.ID {
				items[i] = *warehouse
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// List devuelve almacenes con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	err := r.col.View(func(items []entity.Warehouse) error {
		out = paginate(items, limit, offset)
		return nil
	})
	return out, err
}

// Delete elimina el almacén por ID.
func (r *WarehouseRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Warehouse) ([]entity.Warehouse, error) {
		next := items[:0:0]
		for _, w := range items {
			if w.ID != id {
				next = append(next, w)
			}
		}
		return next, nil
	})
}
