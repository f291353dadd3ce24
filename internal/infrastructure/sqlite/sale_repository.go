package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleCols = `id, vendedor_id, mecanico_id, cliente_id, subtotal, mano_obra, recargo,
	descuento_tipo, descuento_valor, descuento_monto, total, metodo_pago, fecha,
	anulada, motivo_anulacion, anulada_en, created_at`

// SaleRepo implementación de SaleRepository (usable con db o tx).
type SaleRepo struct {
	q sqlx.Ext
}

// NewSaleRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewSaleRepository(q sqlx.Ext) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	const query = `
		INSERT INTO ventas (id, vendedor_id, mecanico_id, cliente_id, subtotal, mano_obra, recargo,
			descuento_tipo, descuento_valor, descuento_monto, total, metodo_pago, fecha,
			anulada, motivo_anulacion, anulada_en, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		s.ID, s.VendedorID, s.MecanicoID, s.ClienteID, s.Subtotal, s.ManoObra, s.Recargo,
		s.DescuentoTipo, s.DescuentoValor, s.DescuentoMonto, s.Total, s.MetodoPago, s.Fecha,
		s.Anulada, s.MotivoAnulacion, s.AnuladaEn, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(it *entity.SaleItem) error {
	const query = `
		INSERT INTO venta_items (id, venta_id, producto_id, cantidad, precio_unitario, costo_unitario)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, it.ID, it.VentaID, it.ProductoID, it.Cantidad, it.PrecioUnitario, it.CostoUnitario)
	if err != nil {
		return fmt.Errorf("insert venta item: %w", err)
	}
	return nil
}

// CreatePayment persiste un pago (o sub-pago) de la venta.
func (r *SaleRepo) CreatePayment(p *entity.Payment) error {
	const query = `
		INSERT INTO venta_pagos (id, venta_id, metodo, monto, detalle)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, p.ID, p.VentaID, p.Metodo, p.Monto, p.Detalle)
	if err != nil {
		return fmt.Errorf("insert venta pago: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta (nil, nil si no existe).
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := sqlx.Get(r.q, &s, `SELECT `+saleCols+` FROM ventas WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// GetItems obtiene las líneas de una venta.
func (r *SaleRepo) GetItems(ventaID string) ([]entity.SaleItem, error) {
	var items []entity.SaleItem
	err := sqlx.Select(r.q, &items, `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, costo_unitario
		FROM venta_items WHERE venta_id = ? ORDER BY id`, ventaID)
	if err != nil {
		return nil, fmt.Errorf("listar venta items: %w", err)
	}
	return items, nil
}

// GetPayments obtiene los pagos de una venta.
func (r *SaleRepo) GetPayments(ventaID string) ([]entity.Payment, error) {
	var pagos []entity.Payment
	err := sqlx.Select(r.q, &pagos, `
		SELECT id, venta_id, metodo, monto, detalle
		FROM venta_pagos WHERE venta_id = ? ORDER BY id`, ventaID)
	if err != nil {
		return nil, fmt.Errorf("listar venta pagos: %w", err)
	}
	return pagos, nil
}

// MarkCancelled marca la venta como anulada con guarda anulada = 0.
// La guarda garantiza que la transición false→true ocurra exactamente una vez.
func (r *SaleRepo) MarkCancelled(id, motivo string, at time.Time) error {
	res, err := r.q.Exec(`
		UPDATE ventas SET anulada = 1, motivo_anulacion = ?, anulada_en = ?
		WHERE id = ? AND anulada = 0`, motivo, at, id)
	if err != nil {
		return fmt.Errorf("anular venta: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrAlreadyCancelled
	}
	return nil
}

// List lista ventas según filtro, más recientes primero.
func (r *SaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleCols + ` FROM ventas WHERE 1 = 1`
	args := []interface{}{}
	if !f.IncluirAnuladas {
		query += ` AND anulada = 0`
	}
	if f.Desde != nil {
		query += ` AND fecha >= ?`
		args = append(args, *f.Desde)
	}
	if f.Hasta != nil {
		query += ` AND fecha < ?`
		args = append(args, *f.Hasta)
	}
	if f.VendedorID != "" {
		query += ` AND vendedor_id = ?`
		args = append(args, f.VendedorID)
	}
	if f.ClienteID != "" {
		query += ` AND cliente_id = ?`
		args = append(args, f.ClienteID)
	}
	query += ` ORDER BY fecha DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
		if f.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, f.Offset)
		}
	}
	var list []*entity.Sale
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	return list, nil
}
