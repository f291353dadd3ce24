package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/analytics"
	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// ReportHandler expone el reporte financiero por rango de fechas (protegido).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Build genera el reporte del rango con filtros opcionales.
// GET /api/reportes?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *ReportHandler) Build(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	desde, hasta, err := parseDateRange(in.Desde, in.Hasta)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta: formato YYYY-MM-DD"})
	}
	out, err := h.uc.Build(c.Context(), repository.ReportFilter{
		Desde:      desde,
		Hasta:      hasta,
		VendedorID: in.VendedorID,
		MetodoPago: in.MetodoPago,
		ClienteID:  in.ClienteID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
