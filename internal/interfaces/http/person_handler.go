package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// PersonHandler maneja las peticiones HTTP del personal (protegido).
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

// NewPersonHandler construye el handler.
func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// Create da de alta un vendedor o mecánico.
// POST /api/personal
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.SavePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	persona, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPersonResponse(persona))
}

// Update edita nombre, rol y tasa de comisión.
// PUT /api/personal/:id
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var in dto.SavePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	persona, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPersonResponse(persona))
}

// List lista personal activo, opcionalmente por rol.
// GET /api/personal?rol=
func (h *PersonHandler) List(c *fiber.Ctx) error {
	personas, err := h.uc.List(c.Context(), c.Query("rol"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PersonResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, *toPersonResponse(p))
	}
	return c.JSON(out)
}

// Deactivate retira a la persona.
// DELETE /api/personal/:id
func (h *PersonHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toPersonResponse(p *entity.Person) *dto.PersonResponse {
	return &dto.PersonResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Rol:          p.Rol,
		TasaComision: p.TasaComision,
		Activo:       p.Activo,
	}
}
