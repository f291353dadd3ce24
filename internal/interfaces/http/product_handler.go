package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/inventory"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create da de alta un producto.
// POST /api/productos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(producto))
}

// Update edita un producto; el historial se clasifica solo.
// PUT /api/productos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(producto))
}

// GetByID devuelve un producto.
// GET /api/productos/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	producto, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(producto))
}

// List lista productos activos con búsqueda opcional.
// GET /api/productos?q=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	in.DefaultPage()
	productos, err := h.uc.List(c.Context(), in.Search, in.Limit, in.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductResponse(p))
	}
	return c.JSON(out)
}

// History devuelve el historial de cambios del producto.
// GET /api/productos/:id/historial
func (h *ProductHandler) History(c *fiber.Ctx) error {
	historial, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductHistoryResponse, 0, len(historial))
	for _, e := range historial {
		out = append(out, dto.ProductHistoryResponse{
			ID:             e.ID,
			PrecioAnterior: e.PrecioAnterior,
			PrecioNuevo:    e.PrecioNuevo,
			StockAnterior:  e.StockAnterior,
			StockNuevo:     e.StockNuevo,
			Tipo:           e.Tipo,
			Fecha:          e.Fecha,
		})
	}
	return c.JSON(out)
}

// Deactivate retira el producto del catálogo.
// DELETE /api/productos/:id
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		Costo:       p.Costo,
		PrecioVenta: p.PrecioVenta,
		Stock:       p.Stock,
		Activo:      p.Activo,
		UpdatedAt:   p.UpdatedAt,
	}
}
