package repository

import "github.com/zogen/backoffice-api/internal/domain/entity"

// MovementRepository define el puerto del log de movimientos (append-only).
type MovementRepository interface {
	// Prepend agrega el movimiento al frente de la colección persistida
	// (orden más-reciente-primero).
	Prepend(mov *entity.Movement) error
	ListByWarehouse(warehouseID string) ([]*entity.Movement, error)
	ListByPair(warehouseID, productID string) ([]*entity.Movement, error)
	ListAll() ([]*entity.Movement, error)
	// References reporta si algún movimiento referencia el producto o el
	// almacén (cualquiera de los dos argumentos puede ser vacío).
	References(warehouseID, productID string) (bool, error)
}
