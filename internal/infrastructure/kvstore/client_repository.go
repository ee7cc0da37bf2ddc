package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre el adaptador de
// archivos JSON (clave meddev-clientes).
type ClientRepo struct {
	col *Collection[entity.Client]
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(store *Store) *ClientRepo {
	return &ClientRepo{col: NewCollection[entity.Client](store, KeyClientes)}
}

// Create agrega un cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	return r.col.Update(func(items []entity.Client) ([]entity.Client, error) {
		for _, c := range items {
			if c.ID == client.ID {
				return nil, domain.ErrDuplicate
			}
		}
		return append(items, *client), nil
	})
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var found *entity.Client
	err := r.col.View(func(items []entity.Client) error {
		for i := range items {
			if items[i].ID == id {
				c := items[i]
				found = &c
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClientRepo) Update(client *entity.Client) error {
	return r.col.Update(func(items []entity.Client) ([]entity.Client, error) {
		for i := range items {
			if items[i].ID == client.ID {
				items[i] = *client
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// List devuelve clientes con paginación.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.col.View(func(items []entity.Client) error {
		out = paginate(items, limit, offset)
		return nil
	})
	return out, err
}

// Delete elimina el cliente por ID. Los clientes no son referenciados por el
// ledger, así que no hay verificación de referencias.
func (r *ClientRepo) Delete(id string) error {
	return r.col.Update(func(items []entity.Client) ([]entity.Client, error) {
		next := items[:0:0]
		for _, c := range items {
			if c.ID != id {
				next = append(next, c)
			}
		}
		return next, nil
	})
}
