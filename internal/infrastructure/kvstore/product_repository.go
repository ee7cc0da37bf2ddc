package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el adaptador
// de archivos JSON (clave meddev-productos).
type ProductRepo struct {
	col *Collection[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{col: NewCollection[entity.Product](store, KeyProductos)}
}

// Create agrega un producto nuevo a la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.col.Update(func(items []entity.Product) ([]entity.Product, error) {
		for _, p := range items {
			if p.ID == product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		return append(items, *product), nil
	})
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var found *entity.Product
	err := r.col.View(func(items []entity.Product) error {
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

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.col.Update(func(items []entity.Product) ([]entity.Product, error) {
		for i := range items {
			if items[i].ID == product.ID {
				items[i] = *product
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// List devuelve productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.col.View(func(items []entity.Product) error {
		out = paginate(items, limit, offset)
		return nil
	})
	return out, err
}

// Delete elimina el producto por ID. La verificación de referencias del
// ledger vive en el caso de uso, no aquí.
func (r *ProductRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Product) ([]entity.Product, error) {
		next := items[:0:0]
		for _, p := range items {
			if p.ID != id {
				next = append(next, p)
			}
		}
		return next, nil
	})
}

// paginate devuelve punteros a copias del tramo [offset, offset+limit).
func paginate[T any](items []T, limit, offset int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*T, 0, end-offset)
	for i := offset; i < end; i++ {
		v := items[i]
		out = append(out, &v)
	}
	return out
}
