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

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

const receivableCols = `id, cliente_id, venta_id, descripcion, monto_total, monto_pagado,
	fecha_creacion, fecha_vencimiento, estado`

// ReceivableRepo implementación de ReceivableRepository (usable con db o tx).
type ReceivableRepo struct {
	q sqlx.Ext
}

// NewReceivableRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewReceivableRepository(q sqlx.Ext) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	const query = `
		INSERT INTO cuentas_cobrar (id, cliente_id, venta_id, descripcion, monto_total, monto_pagado,
			fecha_creacion, fecha_vencimiento, estado)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		rec.ID, rec.ClienteID, rec.VentaID, rec.Descripcion, rec.MontoTotal, rec.MontoPagado,
		rec.FechaCreacion, rec.FechaVencimiento, rec.Estado,
	)
	if err != nil {
		return fmt.Errorf("insert cuenta por cobrar: %w", err)
	}
	return nil
}

func (r *ReceivableRepo) GetByID(id string) (*entity.Receivable, error) {
	var rec entity.Receivable
	err := sqlx.Get(r.q, &rec, `SELECT `+receivableCols+` FROM cuentas_cobrar WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta por cobrar: %w", err)
	}
	return &rec, nil
}

// UpdatePayment persiste monto_pagado y estado recalculados por el caso de uso.
func (r *ReceivableRepo) UpdatePayment(id string, rec *entity.Receivable) error {
	res, err := r.q.Exec(
		`UPDATE cuentas_cobrar SET monto_pagado = ?, estado = ? WHERE id = ?`,
		rec.MontoPagado, rec.Estado, id,
	)
	if err != nil {
		return fmt.Errorf("abonar cuenta por cobrar: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReceivableRepo) ListByCustomer(clienteID string) ([]*entity.Receivable, error) {
	var list []*entity.Receivable
	err := sqlx.Select(r.q, &list, `
		SELECT `+receivableCols+` FROM cuentas_cobrar
		WHERE cliente_id = ? ORDER BY fecha_creacion DESC`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("listar cuentas del cliente: %w", err)
	}
	return list, nil
}

func (r *ReceivableRepo) ListPendingByCustomer(clienteID string) ([]*entity.Receivable, error) {
	var list []*entity.Receivable
	err := sqlx.Select(r.q, &list, `
		SELECT `+receivableCols+` FROM cuentas_cobrar
		WHERE cliente_id = ? AND estado = ? ORDER BY fecha_creacion`, clienteID, entity.ReceivablePendiente)
	if err != nil {
		return nil, fmt.Errorf("listar cuentas pendientes del cliente: %w", err)
	}
	return list, nil
}

func (r *ReceivableRepo) ListPending() ([]*entity.Receivable, error) {
	var list []*entity.Receivable
	err := sqlx.Select(r.q, &list, `
		SELECT `+receivableCols+` FROM cuentas_cobrar
		WHERE estado = ? ORDER BY fecha_creacion`, entity.ReceivablePendiente)
	if err != nil {
		return nil, fmt.Errorf("listar cuentas pendientes: %w", err)
	}
	return list, nil
}
