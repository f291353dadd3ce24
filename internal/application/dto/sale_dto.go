package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea producto × cantidad de una venta nueva.
// El precio y el costo se toman del producto al confirmar, no del cliente HTTP.
type SaleItemRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// PaymentRequest un pago (o sub-pago dividido) de la venta.
type PaymentRequest struct {
	Metodo  string          `json:"metodo"`
	Monto   decimal.Decimal `json:"monto"`
	Detalle string          `json:"detalle,omitempty"`
}

// CreateSaleRequest body para POST /api/ventas.
// Descuento: tipo "fijo" usa Valor como monto; tipo "porcentaje" usa Valor
// como porcentaje sobre el subtotal. Pagos es opcional para método único.
type CreateSaleRequest struct {
	VendedorID     string            `json:"vendedor_id"`
	MecanicoID     string            `json:"mecanico_id,omitempty"`
	ClienteID      string            `json:"cliente_id,omitempty"`
	Items          []SaleItemRequest `json:"items"`
	ManoObra       decimal.Decimal   `json:"mano_obra"`
	Recargo        decimal.Decimal   `json:"recargo"`
	DescuentoTipo  string            `json:"descuento_tipo,omitempty"`
	DescuentoValor decimal.Decimal   `json:"descuento_valor"`
	MetodoPago     string            `json:"metodo_pago"`
	Pagos          []PaymentRequest  `json:"pagos,omitempty"`
	// FechaVencimiento opcional para ventas a crédito (cuenta por cobrar).
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`
}

// CancelSaleRequest body para POST /api/ventas/:id/anular.
type CancelSaleRequest struct {
	Motivo string `json:"motivo"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	CostoUnitario  decimal.Decimal `json:"costo_unitario"`
}

// PaymentResponse pago registrado de una venta.
type PaymentResponse struct {
	ID      string          `json:"id"`
	Metodo  string          `json:"metodo"`
	Monto   decimal.Decimal `json:"monto"`
	Detalle string          `json:"detalle,omitempty"`
}

// SaleResponse venta con líneas y pagos para GET /api/ventas/:id.
type SaleResponse struct {
	ID              string             `json:"id"`
	VendedorID      string             `json:"vendedor_id"`
	MecanicoID      string             `json:"mecanico_id,omitempty"`
	ClienteID       string             `json:"cliente_id,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	ManoObra        decimal.Decimal    `json:"mano_obra"`
	Recargo         decimal.Decimal    `json:"recargo"`
	DescuentoTipo   string             `json:"descuento_tipo"`
	DescuentoValor  decimal.Decimal    `json:"descuento_valor"`
	DescuentoMonto  decimal.Decimal    `json:"descuento_monto"`
	Total           decimal.Decimal    `json:"total"`
	MetodoPago      string             `json:"metodo_pago"`
	Fecha           time.Time          `json:"fecha"`
	Anulada         bool               `json:"anulada"`
	MotivoAnulacion string             `json:"motivo_anulacion,omitempty"`
	AnuladaEn       *time.Time         `json:"anulada_en,omitempty"`
	Items           []SaleItemResponse `json:"items"`
	Pagos           []PaymentResponse  `json:"pagos"`
}

// ListSalesRequest filtros query para GET /api/ventas.
type ListSalesRequest struct {
	Desde           string `query:"desde"` // YYYY-MM-DD
	Hasta           string `query:"hasta"` // YYYY-MM-DD, inclusivo
	VendedorID      string `query:"vendedor_id"`
	ClienteID       string `query:"cliente_id"`
	IncluirAnuladas bool   `query:"incluir_anuladas"`
	PageRequest
}
