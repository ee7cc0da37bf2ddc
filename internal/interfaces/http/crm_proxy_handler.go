package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/infrastructure/webhook"
)

// CRMProxyHandler expone los webhooks externos del CRM como endpoints de solo
// lectura. Las respuestas se reenvían crudas; el dashboard interpreta el JSON.
type CRMProxyHandler struct {
	client *webhook.Client
}

func NewCRMProxyHandler(client *webhook.Client) *CRMProxyHandler {
	return &CRMProxyHandler{client: client}
}

// Patients godoc
// @Summary      Pacientes del CRM (proxy)
// @Tags         crm
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/patients [get]
func (h *CRMProxyHandler) Patients(c *fiber.Ctx) error {
	return h.proxy(c, h.client.Patients)
}

// PaymentMethods godoc
// @Summary      Métodos de pago del CRM (proxy)
// @Tags         crm
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/payment-methods [get]
func (h *CRMProxyHandler) PaymentMethods(c *fiber.Ctx) error {
	return h.proxy(c, h.client.PaymentMethods)
}

// MedicalPrescriptions godoc
// @Summary      Recetas médicas del CRM (proxy)
// @Tags         crm
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/medical-prescriptions [get]
func (h *CRMProxyHandler) MedicalPrescriptions(c *fiber.Ctx) error {
	return h.proxy(c, h.client.MedicalPrescriptions)
}

// PhoneNumbers godoc
// @Summary      Números de WhatsApp Business (proxy)
// @Tags         crm
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/phone-numbers [get]
func (h *CRMProxyHandler) PhoneNumbers(c *fiber.Ctx) error {
	return h.proxy(c, h.client.PhoneNumbers)
}

// Stats godoc
// @Summary      Estadísticas de mensajería de un número (proxy)
// @Tags         crm
// @Produce      json
// @Param        phoneNumberId  query  string  true  "ID del número de WhatsApp"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/stats [get]
func (h *CRMProxyHandler) Stats(c *fiber.Ctx) error {
	id := c.Query("phoneNumberId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phoneNumberId es requerido"})
	}
	return h.proxy(c, func(ctx context.Context) (json.RawMessage, error) {
		return h.client.Stats(ctx, id)
	})
}

// Canales godoc
// @Summary      Canales del CRM de WhatsApp (proxy)
// @Tags         crm
// @Produce      json
// @Success      200  {object}  object
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/crm/canales [get]
func (h *CRMProxyHandler) Canales(c *fiber.Ctx) error {
	return h.proxy(c, h.client.Canales)
}

func (h *CRMProxyHandler) proxy(c *fiber.Ctx, fetch func(context.Context) (json.RawMessage, error)) error {
	raw, err := fetch(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
