package repository

import "github.com/zogen/backoffice-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para las
// existencias materializadas. No hay Delete: un par rastreado nunca vuelve a
// no-rastreado.
type InventoryItemRepository interface {
	// GetByPair devuelve el item del par (almacén, producto) o nil si el par
	// no está rastreado.
	GetByPair(warehouseID, productID string) (*entity.InventoryItem, error)
	// Upsert inserta o reemplaza el item de su par.
	Upsert(item *entity.InventoryItem) error
	ListByWarehouse(warehouseID string) ([]*entity.InventoryItem, error)
	ListAll() ([]*entity.InventoryItem, error)
	// References reporta si algún item referencia el producto o el almacén
	// (cualquiera de los dos argumentos puede ser vacío).
	References(warehouseID, productID string) (bool, error)
}
