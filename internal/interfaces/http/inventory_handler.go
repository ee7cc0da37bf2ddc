package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
)

// InventoryHandler maneja el ledger de inventario: registro de movimientos,
// ajustes manuales, stock mínimo y reconstrucción de existencias desde el log.
type InventoryHandler struct {
	registerUC *appinventory.RegisterMovementUseCase
	uc         *appinventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *appinventory.RegisterMovementUseCase, uc *appinventory.UseCase) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar un movimiento de inventario (entrada o salida)
// @Description  Agrega el movimiento al log append-only y actualiza la existencia del par (almacén, producto). Las salidas sobre pares sin rastrear quedan registradas sin crear item.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.registerUC.Register(c.Context(), appinventory.MovementInput{
		Type:        in.Type,
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Reference:   in.Reference,
		Notes:       in.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	recordMovementMetric(mov.Type)
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:          mov.ID,
		Fecha:       mov.Fecha,
		Type:        mov.Type,
		WarehouseID: mov.WarehouseID,
		ProductID:   mov.ProductID,
		Quantity:    mov.Quantity,
		Delta:       mov.Delta,
		Reference:   mov.Reference,
		Notes:       mov.Notes,
		CreatedAt:   mov.CreatedAt,
	})
}

// Adjust godoc
// @Summary      Ajustar existencias de un par (corrección manual)
// @Description  Fija la cantidad del par al valor indicado y deja constancia en el log como movimiento de tipo ajuste con el delta firmado.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "Ajuste"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewQuantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_quantity no puede ser negativo"})
	}
	item, err := h.uc.AdjustInventory(c.Context(), in.WarehouseID, in.ProductID, in.NewQuantity, in.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(appinventory.ItemResponse(item))
}

// UpdateMinimumStock godoc
// @Summary      Actualizar el stock mínimo de un par rastreado
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMinimumStockRequest  true  "Nuevo mínimo"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/minimum-stock [put]
func (h *InventoryHandler) UpdateMinimumStock(c *fiber.Ctx) error {
	var in dto.UpdateMinimumStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MinimumStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minimum_stock no puede ser negativo"})
	}
	item, err := h.uc.UpdateMinimumStock(in.WarehouseID, in.ProductID, in.MinimumStock)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(appinventory.ItemResponse(item))
}

// Rebuild godoc
// @Summary      Reconstruir la existencia de un par reproduciendo el log
// @Description  Reproduce los movimientos del par en orden cronológico con la misma regla de aplicación (clamp en 0) y sobreescribe la cantidad materializada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RebuildQuantityRequest  true  "Par a reconstruir"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/rebuild [post]
func (h *InventoryHandler) Rebuild(c *fiber.Ctx) error {
	var in dto.RebuildQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.RebuildQuantity(c.Context(), in.WarehouseID, in.ProductID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(appinventory.ItemResponse(item))
}
