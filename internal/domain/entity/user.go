package entity

import "time"

// Roles de cuentas de acceso. "admin" habilita operaciones sensibles
// (anular ventas, editar configuración).
const (
	UserRolAdmin    = "admin"
	UserRolVendedor = "vendedor"
)

// User es una cuenta de acceso al sistema (colaborador de credenciales).
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Rol          string    `db:"rol"`
	Activo       bool      `db:"activo"`
	CreatedAt    time.Time `db:"created_at"`
}
