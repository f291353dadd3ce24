package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer es un cliente con cuenta corriente (fiado).
// LimiteCredito es informativo: se muestra junto al saldo pero no bloquea ventas.
type Customer struct {
	ID            string          `db:"id"`
	Nombre        string          `db:"nombre"`
	Telefono      string          `db:"telefono"`
	Direccion     string          `db:"direccion"`
	LimiteCredito decimal.Decimal `db:"limite_credito"`
	Activo        bool            `db:"activo"`
	CreatedAt     time.Time       `db:"created_at"`
}
