package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/pkg/strutil"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerCols = `id, nombre, telefono, direccion, limite_credito, activo, created_at`

// CustomerRepo implementación de CustomerRepository.
type CustomerRepo struct {
	q sqlx.Ext
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q sqlx.Ext) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	const query = `
		INSERT INTO clientes (id, nombre, telefono, direccion, limite_credito, activo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, c.ID, c.Nombre, c.Telefono, c.Direccion, c.LimiteCredito, c.Activo, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := sqlx.Get(r.q, &c, `SELECT `+customerCols+` FROM clientes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) ListActive(search string) ([]*entity.Customer, error) {
	var list []*entity.Customer
	err := sqlx.Select(r.q, &list,
		`SELECT `+customerCols+` FROM clientes WHERE activo = 1 ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	if search != "" {
		needle := strutil.Fold(search)
		filtered := list[:0]
		for _, c := range list {
			if strings.Contains(strutil.Fold(c.Nombre), needle) {
				filtered = append(filtered, c)
			}
		}
		list = filtered
	}
	return list, nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	const query = `
		UPDATE clientes SET nombre = ?, telefono = ?, direccion = ?, limite_credito = ?
		WHERE id = ?`
	res, err := r.q.Exec(query, c.Nombre, c.Telefono, c.Direccion, c.LimiteCredito, c.ID)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Deactivate(id string) error {
	res, err := r.q.Exec(`UPDATE clientes SET activo = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("desactivar cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
