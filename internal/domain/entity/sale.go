package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento. El monto se resuelve al guardar la venta y queda como
// snapshot en DescuentoMonto; nunca se recalcula después.
const (
	DescuentoFijo       = "fijo"
	DescuentoPorcentaje = "porcentaje"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
	PagoCredito       = "credito"
	PagoMixto         = "mixto" // resumen cuando hay pagos divididos
)

// Sale es una venta confirmada. Inmutable salvo los campos de anulación,
// que transicionan exactamente una vez (Anulada false → true).
//
// Invariante: Total = Subtotal + Recargo + ManoObra - DescuentoMonto.
type Sale struct {
	ID              string           `db:"id"`
	VendedorID      string           `db:"vendedor_id"`
	MecanicoID      *string          `db:"mecanico_id"`
	ClienteID       *string          `db:"cliente_id"`
	Subtotal        decimal.Decimal  `db:"subtotal"`
	ManoObra        decimal.Decimal  `db:"mano_obra"`
	Recargo         decimal.Decimal  `db:"recargo"`
	DescuentoTipo   string           `db:"descuento_tipo"`
	DescuentoValor  decimal.Decimal  `db:"descuento_valor"`
	DescuentoMonto  decimal.Decimal  `db:"descuento_monto"` // snapshot resuelto al guardar
	Total           decimal.Decimal  `db:"total"`
	MetodoPago      string           `db:"metodo_pago"`
	Fecha           time.Time        `db:"fecha"`
	Anulada         bool             `db:"anulada"`
	MotivoAnulacion *string          `db:"motivo_anulacion"`
	AnuladaEn       *time.Time       `db:"anulada_en"`
	CreatedAt       time.Time        `db:"created_at"`

	Items []SaleItem `db:"-"`
	Pagos []Payment  `db:"-"`
}

// SaleItem es una línea producto × cantidad dentro de una venta.
// PrecioUnitario y CostoUnitario son snapshots tomados del producto al vender,
// para que ediciones posteriores de costo no alteren la utilidad histórica.
type SaleItem struct {
	ID             string          `db:"id"`
	VentaID        string          `db:"venta_id"`
	ProductoID     string          `db:"producto_id"`
	Cantidad       int             `db:"cantidad"`
	PrecioUnitario decimal.Decimal `db:"precio_unitario"`
	CostoUnitario  decimal.Decimal `db:"costo_unitario"`
}

// Payment es un pago (o sub-pago, si la venta se pagó dividida) de una venta.
// Una venta con método único se normaliza a un solo registro por el total.
type Payment struct {
	ID      string          `db:"id"`
	VentaID string          `db:"venta_id"`
	Metodo  string          `db:"metodo"`
	Monto   decimal.Decimal `db:"monto"`
	Detalle string          `db:"detalle"`
}

// CostoMercancia devuelve Σ(costo unitario × cantidad) de las líneas cargadas.
func (s *Sale) CostoMercancia() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.CostoUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}
