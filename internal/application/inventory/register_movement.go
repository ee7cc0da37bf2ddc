package inventory

import (
	"context"
	"time"

	"github.com/zogen/backoffice-api/internal/domain"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	domaininv "github.com/zogen/backoffice-api/internal/domain/inventory"
	"github.com/zogen/backoffice-api/internal/domain/repository"
	"github.com/zogen/backoffice-api/pkg/idgen"
	"github.com/zogen/backoffice-api/pkg/logger"
)

// RegisterMovementUseCase registra entradas y salidas en el ledger: agrega el
// movimiento al log (append-only, reciente-primero) y actualiza la existencia
// materializada del par (almacén, producto).
type RegisterMovementUseCase struct {
	movRepo       repository.MovementRepository
	itemRepo      repository.InventoryItemRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementIDs   idgen.Generator
	itemIDs       idgen.Generator
	log           *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementIDs, itemIDs idgen.Generator,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movRepo:       movRepo,
		itemRepo:      itemRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementIDs:   movementIDs,
		itemIDs:       itemIDs,
		log:           log,
	}
}

// MovementInput entrada para registrar un movimiento (entrada o salida; los
// ajustes manuales van por AdjustInventory).
type MovementInput struct {
	Type        string
	WarehouseID string
	ProductID   string
	Quantity    int
	Reference   string
	Notes       string
}

// Register valida la entrada, agrega el movimiento al frente del log y
// actualiza la existencia del par:
//
//   - par rastreado: cantidad = max(0, cantidad + delta)
//   - par sin rastrear y entrada: crea el item con stockMinimo 0
//   - par sin rastrear y salida: el movimiento queda en el log pero no se
//     crea item; la divergencia se reporta como warning estructurado
//
// Devuelve el movimiento creado.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSalida {
		return nil, domain.ErrInvalidInput
	}
	if in.WarehouseID == "" || in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if product == nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:          uc.movementIDs.NewID(),
		Fecha:       now,
		Type:        in.Type,
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Reference:   in.Reference,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	if err := uc.movRepo.Prepend(mov); err != nil {
		return nil, err
	}

	item, err := uc.itemRepo.GetByPair(in.WarehouseID, in.ProductID)
	if err != nil {
		return nil, err
	}
	switch {
	case item != nil:
		item.Quantity = domaininv.ApplyMovement(item.Quantity, *mov)
		item.UpdatedAt = now
		if err := uc.itemRepo.Upsert(item); err != nil {
			return nil, err
		}
	case in.Type == entity.MovementTypeEntrada:
		item = &entity.InventoryItem{
			ID:           uc.itemIDs.NewID(),
			WarehouseID:  in.WarehouseID,
			ProductID:    in.ProductID,
			Quantity:     in.Quantity,
			MinimumStock: 0,
			UpdatedAt:    now,
		}
		if err := uc.itemRepo.Upsert(item); err != nil {
			return nil, err
		}
	default:
		// Salida contra un par sin rastrear: el log y la existencia divergen
		// a propósito (comportamiento heredado del sistema original).
		uc.log.Warn().
			Str("movement_id", mov.ID).
			Str("warehouse_id", in.WarehouseID).
			Str("product_id", in.ProductID).
			Int("quantity", in.Quantity).
			Msg("salida contra par sin existencia; no se creó item de inventario")
	}

	return mov, nil
}
