package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas de solo lectura para dashboard y reportes.
// Trabaja siempre sobre el pool; nunca participa en transacciones.
type ReportsRepo struct {
	db *sqlx.DB
}

// NewReportsRepository construye el adaptador de lectura.
func NewReportsRepository(db *sqlx.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

type saleItemCostRow struct {
	VentaID       string          `db:"venta_id"`
	Cantidad      int             `db:"cantidad"`
	CostoUnitario decimal.Decimal `db:"costo_unitario"`
}

// SaleEconomics devuelve una fila por venta no anulada dentro del filtro.
// Los montos viven como TEXT en SQLite, así que el costo de mercancía se
// repliega en Go con decimal en vez de un SUM en SQL.
func (r *ReportsRepo) SaleEconomics(ctx context.Context, f repository.ReportFilter) ([]repository.SaleEconomicsRow, error) {
	query := `
		SELECT v.id AS venta_id, v.fecha, v.vendedor_id, p.nombre AS vendedor_nombre,
			p.tasa_comision AS tasa_vendedor, v.subtotal, v.descuento_monto, v.recargo,
			v.mano_obra, v.total, '0' AS costo_mercancia, v.metodo_pago
		FROM ventas v
		JOIN personas p ON p.id = v.vendedor_id
		WHERE v.anulada = 0 AND v.fecha >= ? AND v.fecha < ?`
	args := []interface{}{f.Desde, f.Hasta}
	if f.VendedorID != "" {
		query += ` AND v.vendedor_id = ?`
		args = append(args, f.VendedorID)
	}
	if f.MetodoPago != "" {
		query += ` AND v.metodo_pago = ?`
		args = append(args, f.MetodoPago)
	}
	if f.ClienteID != "" {
		query += ` AND v.cliente_id = ?`
		args = append(args, f.ClienteID)
	}
	query += ` ORDER BY v.fecha`

	var rows []repository.SaleEconomicsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("economía de ventas: %w", err)
	}
	if len(rows) == 0 {
		return rows, nil
	}

	idx := make(map[string]int, len(rows))
	ids := make([]string, len(rows))
	for i, row := range rows {
		idx[row.VentaID] = i
		ids[i] = row.VentaID
	}

	itemQuery, itemArgs, err := sqlx.In(
		`SELECT venta_id, cantidad, costo_unitario FROM venta_items WHERE venta_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("economía de ventas (items): %w", err)
	}
	var items []saleItemCostRow
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(itemQuery), itemArgs...); err != nil {
		return nil, fmt.Errorf("economía de ventas (items): %w", err)
	}
	for _, it := range items {
		i := idx[it.VentaID]
		costo := it.CostoUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		rows[i].CostoMercancia = rows[i].CostoMercancia.Add(costo)
	}
	return rows, nil
}

func (r *ReportsRepo) ServicesInRange(ctx context.Context, desde, hasta time.Time) ([]*entity.Service, error) {
	var list []*entity.Service
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+serviceCols+` FROM servicios
		WHERE fecha >= ? AND fecha < ? ORDER BY fecha`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("servicios en rango: %w", err)
	}
	return list, nil
}

func (r *ReportsRepo) LowStock(ctx context.Context, umbral, limit int) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+productCols+` FROM productos
		WHERE activo = 1 AND stock <= ?
		ORDER BY stock ASC, descripcion LIMIT ?`, umbral, limit)
	if err != nil {
		return nil, fmt.Errorf("stock bajo: %w", err)
	}
	return list, nil
}
