package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/application/usecase"
)

// ProspectoHandler maneja los prospectos comerciales.
type ProspectoHandler struct {
	uc *usecase.ProspectoUseCase
}

func NewProspectoHandler(uc *usecase.ProspectoUseCase) *ProspectoHandler {
	return &ProspectoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear prospecto
// @Tags         prospectos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProspectoRequest  true  "Prospecto"
// @Success      201   {object}  dto.ProspectoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prospectos [post]
func (h *ProspectoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProspectoRequest
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
// @Summary      Obtener prospecto por ID
// @Tags         prospectos
// @Produce      json
// @Param        id   path  string  true  "ID del prospecto"
// @Success      200  {object}  dto.ProspectoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prospectos/{id} [get]
func (h *ProspectoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar prospecto
// @Tags         prospectos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del prospecto"
// @Param        body  body  dto.UpdateProspectoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProspectoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prospectos/{id} [put]
func (h *ProspectoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProspectoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar prospectos
// @Tags         prospectos
// @Produce      json
// @Success      200  {array}  dto.ProspectoResponse
// @Router       /api/prospectos [get]
func (h *ProspectoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar prospectos por nombre o teléfono
// @Description  Búsqueda insensible a mayúsculas y acentos sobre nombre y teléfono.
// @Tags         prospectos
// @Produce      json
// @Param        q    query  string  true  "Término de búsqueda"
// @Success      200  {array}  dto.ProspectoResponse
// @Router       /api/prospectos/search [get]
func (h *ProspectoHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar prospecto
// @Tags         prospectos
// @Produce      json
// @Param        id   path  string  true  "ID del prospecto"
// @Success      204  "Sin contenido"
// @Router       /api/prospectos/{id} [delete]
func (h *ProspectoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
