package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/pkg/strutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productCols = `id, codigo, descripcion, costo, precio_venta, stock, activo, created_at, updated_at`

// ProductRepo implementación de ProductRepository (usable con db o tx).
type ProductRepo struct {
	q sqlx.Ext
}

// NewProductRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewProductRepository(q sqlx.Ext) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. Codigo duplicado → domain.ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	const query = `
		INSERT INTO productos (id, codigo, descripcion, costo, precio_venta, stock, activo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		p.ID, p.Codigo, p.Descripcion, p.Costo, p.PrecioVenta, p.Stock, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil, nil si no existe).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := sqlx.Get(r.q, &p, `SELECT `+productCols+` FROM productos WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductRepo) GetByCodigo(codigo string) (*entity.Product, error) {
	var p entity.Product
	err := sqlx.Get(r.q, &p, `SELECT `+productCols+` FROM productos WHERE codigo = ?`, codigo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por codigo: %w", err)
	}
	return &p, nil
}

// Update guarda descripción, costo, precio y stock.
func (r *ProductRepo) Update(p *entity.Product) error {
	const query = `
		UPDATE productos
		SET codigo = ?, descripcion = ?, costo = ?, precio_venta = ?, stock = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.q.Exec(query, p.Codigo, p.Descripcion, p.Costo, p.PrecioVenta, p.Stock, p.UpdatedAt, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock descuenta qty con guarda stock >= qty en el mismo UPDATE.
// Si la guarda no afecta filas: producto inexistente → ErrNotFound,
// existente sin stock → ErrInsufficientStock.
func (r *ProductRepo) DecrementStock(id string, qty int) error {
	res, err := r.q.Exec(
		`UPDATE productos SET stock = stock - ?, updated_at = ? WHERE id = ? AND stock >= ?`,
		qty, time.Now(), id, qty,
	)
	if err != nil {
		return fmt.Errorf("decrementar stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		p, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// IncrementStock repone qty unidades (anulación).
func (r *ProductRepo) IncrementStock(id string, qty int) error {
	res, err := r.q.Exec(
		`UPDATE productos SET stock = stock + ?, updated_at = ? WHERE id = ?`,
		qty, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("incrementar stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista productos activos. El filtro de búsqueda se aplica en Go
// con normalización de tildes (SQLite no trae collation ICU).
func (r *ProductRepo) ListActive(search string, limit, offset int) ([]*entity.Product, error) {
	var rows []*entity.Product
	err := sqlx.Select(r.q, &rows,
		`SELECT `+productCols+` FROM productos WHERE activo = 1 ORDER BY descripcion`)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if search != "" {
		needle := strutil.Fold(search)
		filtered := rows[:0]
		for _, p := range rows {
			if strings.Contains(strutil.Fold(p.Codigo), needle) ||
				strings.Contains(strutil.Fold(p.Descripcion), needle) {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
	}
	if offset > 0 {
		if offset >= len(rows) {
			return []*entity.Product{}, nil
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

// Deactivate soft-delete: activo = 0.
func (r *ProductRepo) Deactivate(id string) error {
	res, err := r.q.Exec(`UPDATE productos SET activo = 0, updated_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
