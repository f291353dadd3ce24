package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
)

// ConfigHandler lee y escribe la configuración de negocio (solo admin).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get devuelve el valor de una clave.
// GET /api/configuracion/:clave
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	clave := c.Params("clave")
	valor, err := h.uc.Get(c.Context(), clave)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConfigEntry{Clave: clave, Valor: valor})
}

// Set valida y guarda el valor de una clave conocida.
// PUT /api/configuracion/:clave
func (h *ConfigHandler) Set(c *fiber.Ctx) error {
	var in dto.ConfigEntry
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	clave := c.Params("clave")
	if err := h.uc.Set(c.Context(), clave, in.Valor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConfigEntry{Clave: clave, Valor: in.Valor})
}
