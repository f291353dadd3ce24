package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es un trabajo de mano de obra independiente, sin productos
// (ej: montaje, balanceo, reparación en sitio). Aporta a los agregados de
// ingreso y de gasto de mano de obra por separado de las ventas.
type Service struct {
	ID          string          `db:"id"`
	MecanicoID  string          `db:"mecanico_id"`
	Descripcion string          `db:"descripcion"`
	Valor       decimal.Decimal `db:"valor"`
	MetodoPago  string          `db:"metodo_pago"`
	Fecha       time.Time       `db:"fecha"`
	CreatedAt   time.Time       `db:"created_at"`
}
