package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/receivables"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
// Las respuestas individuales incluyen el saldo pendiente del cliente.
type CustomerHandler struct {
	uc    *usecase.CustomerUseCase
	recUC *receivables.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, recUC *receivables.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, recUC: recUC}
}

// Create da de alta un cliente.
// POST /api/clientes
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(cliente, decimal.Zero))
}

// Update edita los datos del cliente.
// PUT /api/clientes/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	saldo, err := h.recUC.CustomerBalance(c.Context(), cliente.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustomerResponse(cliente, saldo))
}

// GetByID devuelve el cliente con su saldo pendiente.
// GET /api/clientes/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	saldo, err := h.recUC.CustomerBalance(c.Context(), cliente.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCustomerResponse(cliente, saldo))
}

// List lista clientes activos con búsqueda por nombre.
// GET /api/clientes?q=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	clientes, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CustomerResponse, 0, len(clientes))
	for _, cl := range clientes {
		out = append(out, *toCustomerResponse(cl, decimal.Zero))
	}
	return c.JSON(out)
}

// Deactivate retira al cliente.
// DELETE /api/clientes/:id
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toCustomerResponse(cl *entity.Customer, saldo decimal.Decimal) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             cl.ID,
		Nombre:         cl.Nombre,
		Telefono:       cl.Telefono,
		Direccion:      cl.Direccion,
		LimiteCredito:  cl.LimiteCredito,
		SaldoPendiente: saldo,
		Activo:         cl.Activo,
	}
}
