package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio registrados en el historial de producto.
// Si en una misma edición cambian precio y stock, gana "precio".
const (
	HistorialRegistro   = "registro"   // alta del producto
	HistorialPrecio     = "precio"     // cambio de precio de venta
	HistorialReposicion = "reposicion" // cambio de stock sin cambio de precio
)

// ProductHistory es una entrada append-only del historial de un producto.
// Solo las ediciones explícitas del catálogo generan historial; los
// descuentos de stock por venta o anulación no.
type ProductHistory struct {
	ID             string          `db:"id"`
	ProductoID     string          `db:"producto_id"`
	PrecioAnterior decimal.Decimal `db:"precio_anterior"`
	PrecioNuevo    decimal.Decimal `db:"precio_nuevo"`
	StockAnterior  int             `db:"stock_anterior"`
	StockNuevo     int             `db:"stock_nuevo"`
	Tipo           string          `db:"tipo"`
	Fecha          time.Time       `db:"fecha"`
}
