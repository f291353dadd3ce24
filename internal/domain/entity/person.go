package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles del personal. El rol decide qué puede hacer la persona en una venta:
// el vendedor firma la venta, el mecánico ejecuta la mano de obra.
const (
	RolVendedor = "vendedor"
	RolMecanico = "mecanico"
)

// Person es un miembro del personal (vendedor o mecánico).
// TasaComision es un override opcional sobre la tasa global configurada.
type Person struct {
	ID           string           `db:"id"`
	Nombre       string           `db:"nombre"`
	Rol          string           `db:"rol"`
	TasaComision *decimal.Decimal `db:"tasa_comision"`
	Activo       bool             `db:"activo"`
	CreatedAt    time.Time        `db:"created_at"`
}

// CanSell indica si la persona puede figurar como vendedor de una venta.
func (p *Person) CanSell() bool { return p.Rol == RolVendedor }

// CanLabor indica si la persona puede figurar como responsable de mano de obra.
func (p *Person) CanLabor() bool { return p.Rol == RolMecanico }
