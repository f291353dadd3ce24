package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/receivables"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// ReceivableHandler maneja las peticiones HTTP de cuentas por cobrar (protegido).
type ReceivableHandler struct {
	uc *receivables.UseCase
}

// NewReceivableHandler construye el handler.
func NewReceivableHandler(uc *receivables.UseCase) *ReceivableHandler {
	return &ReceivableHandler{uc: uc}
}

// Create abre una deuda manual (no originada en una venta).
// POST /api/cuentas
func (h *ReceivableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.CreateManual(c.Context(), in.ClienteID, in.Descripcion, in.MontoTotal, in.FechaVencimiento)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReceivableResponse(rec))
}

// Pay registra un abono.
// POST /api/cuentas/:id/abonar
func (h *ReceivableHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.uc.Pay(c.Context(), c.Params("id"), in.Monto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReceivableResponse(rec))
}

// GetByID devuelve la cuenta con su saldo derivado.
// GET /api/cuentas/:id
func (h *ReceivableHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReceivableResponse(rec))
}

// ListPending lista todas las cuentas abiertas.
// GET /api/cuentas
func (h *ReceivableHandler) ListPending(c *fiber.Ctx) error {
	cuentas, err := h.uc.ListPending(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReceivableResponses(cuentas))
}

// ListByCustomer lista las cuentas de un cliente, saldadas incluidas.
// GET /api/clientes/:id/cuentas
func (h *ReceivableHandler) ListByCustomer(c *fiber.Ctx) error {
	cuentas, err := h.uc.ListByCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toReceivableResponses(cuentas))
}

func toReceivableResponses(cuentas []*entity.Receivable) []dto.ReceivableResponse {
	out := make([]dto.ReceivableResponse, 0, len(cuentas))
	for _, rec := range cuentas {
		out = append(out, *toReceivableResponse(rec))
	}
	return out
}

func toReceivableResponse(rec *entity.Receivable) *dto.ReceivableResponse {
	out := &dto.ReceivableResponse{
		ID:               rec.ID,
		ClienteID:        rec.ClienteID,
		Descripcion:      rec.Descripcion,
		MontoTotal:       rec.MontoTotal,
		MontoPagado:      rec.MontoPagado,
		Restante:         rec.Restante(),
		Estado:           rec.Estado,
		FechaCreacion:    rec.FechaCreacion,
		FechaVencimiento: rec.FechaVencimiento,
	}
	if rec.VentaID != nil {
		out.VentaID = *rec.VentaID
	}
	return out
}
