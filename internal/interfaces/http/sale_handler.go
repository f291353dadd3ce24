package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/sales"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	cancelUC *sales.CancelSaleUseCase
	queryUC  *sales.SaleQueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, cancelUC *sales.CancelSaleUseCase, queryUC *sales.SaleQueryUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, cancelUC: cancelUC, queryUC: queryUC}
}

// Create confirma una venta y descuenta el stock.
// POST /api/ventas
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	venta, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(venta))
}

// Cancel anula una venta y repone el stock.
// POST /api/ventas/:id/anular (solo admin)
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CancelSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cancelUC.Cancel(c.Context(), id, in.Motivo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devuelve la venta con líneas y pagos.
// GET /api/ventas/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	venta, err := h.queryUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSaleResponse(venta))
}

// List lista cabeceras de venta según filtros query.
// GET /api/ventas
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var in dto.ListSalesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	in.DefaultPage()

	f := repository.SaleFilter{
		VendedorID:      in.VendedorID,
		ClienteID:       in.ClienteID,
		IncluirAnuladas: in.IncluirAnuladas,
		Limit:           in.Limit,
		Offset:          in.Offset,
	}
	if in.Desde != "" {
		desde, err := time.ParseInLocation("2006-01-02", in.Desde, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde: formato YYYY-MM-DD"})
		}
		f.Desde = &desde
	}
	if in.Hasta != "" {
		hasta, err := time.ParseInLocation("2006-01-02", in.Hasta, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta: formato YYYY-MM-DD"})
		}
		hasta = hasta.AddDate(0, 0, 1) // inclusivo
		f.Hasta = &hasta
	}

	ventas, err := h.queryUC.List(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toSaleResponse(v))
	}
	return c.JSON(out)
}

func toSaleResponse(v *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:             v.ID,
		VendedorID:     v.VendedorID,
		Subtotal:       v.Subtotal,
		ManoObra:       v.ManoObra,
		Recargo:        v.Recargo,
		DescuentoTipo:  v.DescuentoTipo,
		DescuentoValor: v.DescuentoValor,
		DescuentoMonto: v.DescuentoMonto,
		Total:          v.Total,
		MetodoPago:     v.MetodoPago,
		Fecha:          v.Fecha,
		Anulada:        v.Anulada,
		AnuladaEn:      v.AnuladaEn,
		Items:          make([]dto.SaleItemResponse, 0, len(v.Items)),
		Pagos:          make([]dto.PaymentResponse, 0, len(v.Pagos)),
	}
	if v.MecanicoID != nil {
		out.MecanicoID = *v.MecanicoID
	}
	if v.ClienteID != nil {
		out.ClienteID = *v.ClienteID
	}
	if v.MotivoAnulacion != nil {
		out.MotivoAnulacion = *v.MotivoAnulacion
	}
	for _, it := range v.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:             it.ID,
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			CostoUnitario:  it.CostoUnitario,
		})
	}
	for _, p := range v.Pagos {
		out.Pagos = append(out.Pagos, dto.PaymentResponse{
			ID:      p.ID,
			Metodo:  p.Metodo,
			Monto:   p.Monto,
			Detalle: p.Detalle,
		})
	}
	return out
}
