package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/application/usecase"
)

// SolicitudHandler maneja las solicitudes de estudio.
type SolicitudHandler struct {
	uc *usecase.SolicitudUseCase
}

func NewSolicitudHandler(uc *usecase.SolicitudUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de estudio
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitudRequest  true  "Solicitud"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         solicitudes
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado o notas de una solicitud
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateSolicitudRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SolicitudResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [put]
func (h *SolicitudHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes (servidas desde caché con TTL)
// @Tags         solicitudes
// @Produce      json
// @Success      200  {array}  dto.SolicitudResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Tags         solicitudes
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      204  "Sin contenido"
// @Router       /api/solicitudes/{id} [delete]
func (h *SolicitudHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
