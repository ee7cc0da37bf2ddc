package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/application/usecase"
)

// ContactHandler maneja la libreta de contactos de WhatsApp.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List godoc
// @Summary      Listar contactos ordenados por teléfono
// @Tags         contacts
// @Produce      json
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar un contacto por teléfono
// @Description  El teléfono es la clave; si ya existe se sobreescriben nombre y estado y se sella updatedAt.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertContactRequest  true  "Contacto"
// @Success      200   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contacts [put]
func (h *ContactHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phoneNumber es requerido"})
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
