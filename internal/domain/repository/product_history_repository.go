package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// ProductHistoryRepository puerto del historial append-only de productos.
type ProductHistoryRepository interface {
	Create(h *entity.ProductHistory) error
	ListByProduct(productoID string) ([]*entity.ProductHistory, error)
}
