package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

const personCols = `id, nombre, rol, tasa_comision, activo, created_at`

// PersonRepo implementación de PersonRepository.
type PersonRepo struct {
	q sqlx.Ext
}

// NewPersonRepository construye el adaptador.
func NewPersonRepository(q sqlx.Ext) *PersonRepo {
	return &PersonRepo{q: q}
}

func (r *PersonRepo) Create(p *entity.Person) error {
	const query = `
		INSERT INTO personas (id, nombre, rol, tasa_comision, activo, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, p.ID, p.Nombre, p.Rol, p.TasaComision, p.Activo, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

func (r *PersonRepo) GetByID(id string) (*entity.Person, error) {
	var p entity.Person
	err := sqlx.Get(r.q, &p, `SELECT `+personCols+` FROM personas WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return &p, nil
}

func (r *PersonRepo) ListActive(rol string) ([]*entity.Person, error) {
	query := `SELECT ` + personCols + ` FROM personas WHERE activo = 1`
	args := []interface{}{}
	if rol != "" {
		query += ` AND rol = ?`
		args = append(args, rol)
	}
	query += ` ORDER BY nombre`
	var list []*entity.Person
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("listar personas: %w", err)
	}
	return list, nil
}

func (r *PersonRepo) Update(p *entity.Person) error {
	const query = `
		UPDATE personas SET nombre = ?, rol = ?, tasa_comision = ? WHERE id = ?`
	res, err := r.q.Exec(query, p.Nombre, p.Rol, p.TasaComision, p.ID)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PersonRepo) Deactivate(id string) error {
	res, err := r.q.Exec(`UPDATE personas SET activo = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("desactivar persona: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
