package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo almacén clave→valor de configuración de negocio.
type ConfigRepo struct {
	q sqlx.Ext
}

// NewConfigRepository construye el adaptador.
func NewConfigRepository(q sqlx.Ext) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// Get devuelve "" si la clave no existe (sin error).
func (r *ConfigRepo) Get(clave string) (string, error) {
	var valor string
	err := sqlx.Get(r.q, &valor, `SELECT valor FROM configuracion WHERE clave = ?`, clave)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get configuracion: %w", err)
	}
	return valor, nil
}

// Set inserta o reemplaza el valor de la clave.
func (r *ConfigRepo) Set(clave, valor string) error {
	_, err := r.q.Exec(`
		INSERT INTO configuracion (clave, valor) VALUES (?, ?)
		ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor`, clave, valor)
	if err != nil {
		return fmt.Errorf("set configuracion: %w", err)
	}
	return nil
}
