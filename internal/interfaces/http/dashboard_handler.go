package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zogen/backoffice-api/internal/application/usecase"
)

// DashboardHandler sirve los KPIs agregados del tablero principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      KPIs del tablero: conteos, valuación de inventario, movimientos de hoy, items bajo mínimo y total de ventas
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
