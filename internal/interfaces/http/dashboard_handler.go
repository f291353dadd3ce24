package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/analytics"
)

// DashboardHandler expone el resumen financiero del día (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve las métricas de hoy, la serie semanal, el stock bajo y
// las cuentas por cobrar abiertas.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
