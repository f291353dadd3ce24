package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// ServiceHandler maneja las peticiones HTTP de servicios de mano de obra (protegido).
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create registra un servicio.
// POST /api/servicios
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	servicio, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toServiceResponse(servicio))
}

// List lista servicios de un rango de fechas.
// GET /api/servicios?desde=YYYY-MM-DD&hasta=YYYY-MM-DD&mecanico_id=
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	desde, hasta, err := parseDateRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta: formato YYYY-MM-DD"})
	}
	servicios, err := h.uc.ListByRange(c.Context(), desde, hasta, c.Query("mecanico_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ServiceResponse, 0, len(servicios))
	for _, s := range servicios {
		out = append(out, *toServiceResponse(s))
	}
	return c.JSON(out)
}

// parseDateRange interpreta [desde, hasta] como días locales inclusivos y
// devuelve la ventana semiabierta [desde 00:00, hasta+1día 00:00).
func parseDateRange(desdeStr, hastaStr string) (time.Time, time.Time, error) {
	desde, err := time.ParseInLocation("2006-01-02", desdeStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := time.ParseInLocation("2006-01-02", hastaStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return desde, hasta.AddDate(0, 0, 1), nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		MecanicoID:  s.MecanicoID,
		Descripcion: s.Descripcion,
		Valor:       s.Valor,
		MetodoPago:  s.MetodoPago,
		Fecha:       s.Fecha,
	}
}
