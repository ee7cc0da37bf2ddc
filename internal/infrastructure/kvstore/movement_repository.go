package kvstore

import (
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto del log de movimientos sobre el
// adaptador de archivos JSON (clave meddev-movimientos). La colección crece
// sin límite; la política de retención es paginar las consultas, no compactar.
type MovementRepo struct {
	col *Collection[entity.Movement]
}

// NewMovementRepository construye el adaptador de persistencia del log.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{col: NewCollection[entity.Movement](store, KeyMovimientos)}
}

// Prepend agrega el movimiento al frente (orden más-reciente-primero).
func (r *MovementRepo) Prepend(mov *entity.Movement) error {
	return r.col.Update(func(items []entity.Movement) ([]entity.Movement, error) {
		next := make([]entity.Movement, 0, len(items)+1)
		next = append(next, *mov)
		next = append(next, items...)
		return next, nil
	})
}

// ListByWarehouse filtra movimientos por almacén, conservando el orden guardado.
func (r *MovementRepo) ListByWarehouse(warehouseID string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return m.WarehouseID == warehouseID
	})
}

// ListByPair filtra movimientos por par (almacén, producto).
func (r *MovementRepo) ListByPair(warehouseID, productID string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return m.WarehouseID == warehouseID && m.ProductID == productID
	})
}

// ListAll devuelve el log completo.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	return r.filter(func(*entity.Movement) bool { return true })
}

// References reporta si algún movimiento referencia el almacén o el producto.
func (r *MovementRepo) References(warehouseID, productID string) (bool, error) {
	found := false
	err := r.col.View(func(items []entity.Movement) error {
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

func (r *MovementRepo) filter(pred func(*entity.Movement) bool) ([]*entity.Movement, error) {
	var out []*entity.Movement
	err := r.col.View(func(items []entity.Movement) error {
		for i := range items {
			m := items[i]
			if pred(&m) {
				out = append(out, &m)
			}
		}
		return nil
	})
	return out, err
}
