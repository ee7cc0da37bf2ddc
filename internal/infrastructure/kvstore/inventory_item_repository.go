package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto de existencias materializadas
// sobre el adaptador de archivos JSON (clave meddev-inventario).
type InventoryItemRepo struct {
	col *Collection[entity.InventoryItem]
}

// NewInventoryItemRepository construye el adaptador de persistencia de existencias.
func NewInventoryItemRepository(store *Store) *InventoryItemRepo {
	return &InventoryItemRepo{col: NewCollection[entity.InventoryItem](store, KeyInventario)}
}

// GetByPair busca linealmente el item del par (almacén, producto); nil si el
// par no está rastreado.
func (r *InventoryItemRepo) GetByPair(warehouseID, productID string) (*entity.InventoryItem, error) {
	var found *entity.InventoryItem
	err := r.col.View(func(items []entity.InventoryItem) error {
		for i := range items {
			if items[i].WarehouseID == warehouseID && items[i].ProductID == productID {
				it := items[i]
				found = &it
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Upsert inserta o reemplaza el item de su par. La búsqueda lineal previa
// mantiene el invariante de a lo más un item por par.
func (r *InventoryItemRepo) Upsert(item *entity.InventoryItem) error {
	return r.col.Update(func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		for i := range items {
			if items[i].WarehouseID == item.WarehouseID && items[i].ProductID == item.ProductID {
				items[i] = *item
				return items, nil
			}
		}
		return append(items, *item), nil
	})
}

// ListByWarehouse filtra las existencias por almacén; sin garantía de orden.
func (r *InventoryItemRepo) ListByWarehouse(warehouseID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := r.col.View(func(items []entity.InventoryItem) error {
		for i := range items {
			if items[i].WarehouseID == warehouseID {
				it := items[i]
				out = append(out, &it)
			}
		}
		return nil
	})
	return out, err
}

// ListAll devuelve todas las existencias.
func (r *InventoryItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := r.col.View(func(items []entity.InventoryItem) error {
		for i := range items {
			it := items[i]
			out = append(out, &it)
		}
		return nil
	})
	return out, err
}

// References reporta si algún item referencia el almacén o el producto.
func (r *InventoryItemRepo) References(warehouseID, productID string) (bool, error) {
	found := false
	err := r.col.View(func(items []entity.InventoryItem) error {
		for i := range items {
			if (warehouseID != "" && items[i].WarehouseID == warehouseID) ||
				(productID != "" && items[i].ProductID == productID) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}
