package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
	"github.com/zogen/backoffice-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP de almacenes y sus vistas de
// inventario (existencias, movimientos recientes, historial, reorden).
type WarehouseHandler struct {
	uc    *usecase.WarehouseUseCase
	invUC *appinventory.UseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, invUC *appinventory.UseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, invUC: invUC}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar almacén
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almacenes
// @Tags         warehouses
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar almacén (bloqueado si el inventario lo referencia)
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      204  "Sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inventory godoc
// @Summary      Existencias del almacén con estado derivado (optimo/reorden)
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/warehouses/{id}/inventory [get]
func (h *WarehouseHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.invUC.InventoryByWarehouse(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RecentMovements godoc
// @Summary      Movimientos recientes del almacén (máximo 10, descendente)
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/warehouses/{id}/movements [get]
func (h *WarehouseHandler) RecentMovements(c *fiber.Ctx) error {
	out, err := h.invUC.RecentMovementsByWarehouse(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// MovementHistory godoc
// @Summary      Historial de movimientos del almacén (paginado)
// @Tags         warehouses
// @Produce      json
// @Param        id      path   string  true   "ID del almacén"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/warehouses/{id}/movements/history [get]
func (h *WarehouseHandler) MovementHistory(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.invUC.MovementHistory(c.Params("id"), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ReorderList godoc
// @Summary      Productos bajo stock mínimo con cantidad sugerida de pedido
// @Tags         warehouses
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/warehouses/{id}/reorder-list [get]
func (h *WarehouseHandler) ReorderList(c *fiber.Ctx) error {
	out, err := h.invUC.ReorderList(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "reorders": out})
}
