package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// ReportFilter acota las filas de economía de ventas de un reporte.
// Ventana [Desde, Hasta); filtros opcionales con cadena vacía = sin filtro.
type ReportFilter struct {
	Desde      time.Time
	Hasta      time.Time
	VendedorID string
	MetodoPago string
	ClienteID  string
}

// SaleEconomicsRow es la economía cruda de una venta no anulada: todo lo que
// los agregados necesitan para replegar ingreso, costo y comisión en Go con
// decimal, en lugar de sumar en SQL sobre columnas de texto.
type SaleEconomicsRow struct {
	VentaID        string           `db:"venta_id"`
	Fecha          time.Time        `db:"fecha"`
	VendedorID     string           `db:"vendedor_id"`
	VendedorNombre string           `db:"vendedor_nombre"`
	TasaVendedor   *decimal.Decimal `db:"tasa_vendedor"` // override fijo, si existe
	Subtotal       decimal.Decimal  `db:"subtotal"`
	DescuentoMonto decimal.Decimal  `db:"descuento_monto"`
	Recargo        decimal.Decimal  `db:"recargo"`
	ManoObra       decimal.Decimal  `db:"mano_obra"`
	Total          decimal.Decimal  `db:"total"`
	CostoMercancia decimal.Decimal  `db:"costo_mercancia"`
	MetodoPago     string           `db:"metodo_pago"`
}

// ReportsRepository consultas de solo lectura para dashboard y reportes.
// Nunca muta el libro de ventas.
type ReportsRepository interface {
	// SaleEconomics devuelve una fila por venta no anulada dentro del filtro,
	// con el costo de mercancía ya agregado por venta.
	SaleEconomics(ctx context.Context, f ReportFilter) ([]SaleEconomicsRow, error)
	// ServicesInRange devuelve los servicios con fecha en [desde, hasta).
	ServicesInRange(ctx context.Context, desde, hasta time.Time) ([]*entity.Service, error)
	// LowStock devuelve productos activos con stock <= umbral, ordenados por
	// stock ascendente y limitados para el widget de reposición urgente.
	LowStock(ctx context.Context, umbral, limit int) ([]*entity.Product, error)
}
