package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo (llantas, cámaras, parches, etc).
// El stock es un entero; Costo y PrecioVenta son los valores vigentes que se
// congelan en cada línea de venta al momento de vender.
type Product struct {
	ID          string          `db:"id"`
	Codigo      string          `db:"codigo"` // único
	Descripcion string          `db:"descripcion"`
	Costo       decimal.Decimal `db:"costo"`
	PrecioVenta decimal.Decimal `db:"precio_venta"`
	Stock       int             `db:"stock"`
	Activo      bool            `db:"activo"` // soft-delete
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
