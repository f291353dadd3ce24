package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.ProductHistoryRepository = (*ProductHistoryRepo)(nil)

// ProductHistoryRepo implementación del historial append-only de productos.
type ProductHistoryRepo struct {
	q sqlx.Ext
}

// NewProductHistoryRepository construye el adaptador.
func NewProductHistoryRepository(q sqlx.Ext) *ProductHistoryRepo {
	return &ProductHistoryRepo{q: q}
}

func (r *ProductHistoryRepo) Create(h *entity.ProductHistory) error {
	const query = `
		INSERT INTO producto_historial (id, producto_id, precio_anterior, precio_nuevo,
			stock_anterior, stock_nuevo, tipo, fecha)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query,
		h.ID, h.ProductoID, h.PrecioAnterior, h.PrecioNuevo,
		h.StockAnterior, h.StockNuevo, h.Tipo, h.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

func (r *ProductHistoryRepo) ListByProduct(productoID string) ([]*entity.ProductHistory, error) {
	var list []*entity.ProductHistory
	err := sqlx.Select(r.q, &list, `
		SELECT id, producto_id, precio_anterior, precio_nuevo, stock_anterior, stock_nuevo, tipo, fecha
		FROM producto_historial WHERE producto_id = ? ORDER BY fecha DESC`, productoID)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	return list, nil
}
