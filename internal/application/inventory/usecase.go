package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	domaininv "github.com/zogen/backoffice-api/internal/domain/inventory"
	"github.com/zogen/backoffice-api/internal/domain/repository"
	"github.com/zogen/backoffice-api/pkg/idgen"
)

// recentMovementsCap tope duro del listado reciente por almacén. Es un
// contrato de presentación, no un cursor de paginación.
const recentMovementsCap = 10

// UseCase consultas y correcciones del ledger de inventario.
type UseCase struct {
	movRepo     repository.MovementRepository
	itemRepo    repository.InventoryItemRepository
	productRepo repository.ProductRepository
	movementIDs idgen.Generator
	itemIDs     idgen.Generator
}

// NewUseCase construye el caso de uso de consultas/correcciones.
func NewUseCase(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	movementIDs, itemIDs idgen.Generator,
) *UseCase {
	return &UseCase{
		movRepo:     movRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		movementIDs: movementIDs,
		itemIDs:     itemIDs,
	}
}

// InventoryByWarehouse devuelve las existencias de un almacén con su estado
// derivado. Sin garantía de orden (se respeta el orden de la colección).
func (uc *UseCase) InventoryByWarehouse(warehouseID string) ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse(it))
	}
	return out, nil
}

// RecentMovementsByWarehouse devuelve los movimientos de un almacén en orden
// descendente por fecha, recortados al tope de presentación (10).
func (uc *UseCase) RecentMovementsByWarehouse(warehouseID string) ([]dto.MovementResponse, error) {
	movs, err := uc.sortedByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if len(movs) > recentMovementsCap {
		movs = movs[:recentMovementsCap]
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// MovementHistory devuelve el log de un almacén paginado (descendente por
// fecha). Es la política de consulta del log sin tope de 10.
func (uc *UseCase) MovementHistory(warehouseID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movs, err := uc.sortedByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	total := len(movs)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	items := make([]dto.MovementResponse, 0, end-start)
	for _, m := range movs[start:end] {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// AdjustInventory corrige la existencia de un par a un valor absoluto. La
// corrección queda registrada como movimiento `ajuste` con su delta, de modo
// que el log sigue siendo la fuente de verdad. Un ajuste contra un par sin
// rastrear crea el item (es una corrección explícita, a diferencia de una
// salida). Devuelve el item resultante.
func (uc *UseCase) AdjustInventory(ctx context.Context, warehouseID, productID string, newQuantity int, notes string) (*entity.InventoryItem, error) {
	if warehouseID == "" || productID == "" || newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByPair(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	current := 0
	if item != nil {
		current = item.Quantity
	}
	delta := newQuantity - current

	if delta != 0 {
		abs := delta
		if abs < 0 {
			abs = -abs
		}
		mov := &entity.Movement{
			ID:          uc.movementIDs.NewID(),
			Fecha:       now,
			Type:        entity.MovementTypeAjuste,
			WarehouseID: warehouseID,
			ProductID:   productID,
			Quantity:    abs,
			Delta:       delta,
			Notes:       notes,
			CreatedAt:   now,
		}
		if err := uc.movRepo.Prepend(mov); err != nil {
			return nil, err
		}
	}

	if item == nil {
		item = &entity.InventoryItem{
			ID:          uc.itemIDs.NewID(),
			WarehouseID: warehouseID,
			ProductID:   productID,
		}
	}
	item.Quantity = newQuantity
	item.UpdatedAt = now
	if err := uc.itemRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMinimumStock actualiza el umbral de reorden del par. El stock mínimo
// no se deriva del log, así que es una escritura directa.
func (uc *UseCase) UpdateMinimumStock(warehouseID, productID string, value int) (*entity.InventoryItem, error) {
	if warehouseID == "" || productID == "" || value < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByPair(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.MinimumStock = value
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RebuildQuantity reproduce el log del par en orden cronológico y sobrescribe
// la cantidad materializada con el resultado. Es la herramienta de reparación
// para una existencia que divergió del log.
func (uc *UseCase) RebuildQuantity(ctx context.Context, warehouseID, productID string) (*entity.InventoryItem, error) {
	if warehouseID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.movRepo.ListByPair(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByPair(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	if len(movs) == 0 && item == nil {
		return nil, domain.ErrNotFound
	}

	chronological := make([]entity.Movement, 0, len(movs))
	for _, m := range movs {
		chronological = append(chronological, *m)
	}
	sort.SliceStable(chronological, func(i, j int) bool {
		return chronological[i].Fecha.Before(chronological[j].Fecha)
	})
	replayed := domaininv.ReplayQuantity(chronological)

	if item == nil {
		item = &entity.InventoryItem{
			ID:          uc.itemIDs.NewID(),
			WarehouseID: warehouseID,
			ProductID:   productID,
		}
	}
	item.Quantity = replayed
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ReorderList devuelve los productos de un almacén por debajo de su stock
// mínimo con la cantidad sugerida de pedido, los más deficitarios primero.
func (uc *UseCase) ReorderList(warehouseID string) ([]dto.ReorderSuggestionDTO, error) {
	items, err := uc.itemRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReorderSuggestionDTO, 0)
	for _, it := range items {
		if domaininv.StockStatus(it.Quantity, it.MinimumStock) != entity.StockStatusReorden {
			continue
		}
		name := it.ProductID
		if p, err := uc.productRepo.GetByID(it.ProductID); err == nil && p != nil {
			name = p.Name
		}
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ProductID:         it.ProductID,
			ProductName:       name,
			WarehouseID:       it.WarehouseID,
			Quantity:          it.Quantity,
			MinimumStock:      it.MinimumStock,
			SuggestedOrderQty: it.MinimumStock - it.Quantity,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].SuggestedOrderQty > suggestions[j].SuggestedOrderQty
	})
	return suggestions, nil
}

func (uc *UseCase) sortedByWarehouse(warehouseID string) ([]*entity.Movement, error) {
	movs, err := uc.movRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Fecha.After(movs[j].Fecha)
	})
	return movs, nil
}

// ItemResponse proyecta un item con su estado derivado (optimo/reorden).
func ItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:           it.ID,
		WarehouseID:  it.WarehouseID,
		ProductID:    it.ProductID,
		Quantity:     it.Quantity,
		MinimumStock: it.MinimumStock,
		Lot:          it.Lot,
		Status:       domaininv.StockStatus(it.Quantity, it.MinimumStock),
		UpdatedAt:    it.UpdatedAt,
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Fecha:       m.Fecha,
		Type:        m.Type,
		WarehouseID: m.WarehouseID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		Delta:       m.Delta,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}
