package repository

import (
	"time"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas.
type SaleFilter struct {
	Desde      *time.Time
	Hasta      *time.Time
	VendedorID string
	ClienteID  string
	// IncluirAnuladas incluye ventas anuladas en el listado (por defecto no).
	IncluirAnuladas bool
	Limit           int
	Offset          int
}

// SaleRepository puerto de persistencia de ventas.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateItem(it *entity.SaleItem) error
	CreatePayment(p *entity.Payment) error
	// GetByID devuelve solo la cabecera (nil, nil si no existe).
	GetByID(id string) (*entity.Sale, error)
	GetItems(ventaID string) ([]entity.SaleItem, error)
	GetPayments(ventaID string) ([]entity.Payment, error)
	// MarkCancelled marca la venta como anulada con motivo y timestamp,
	// con guarda `anulada = 0`. Devuelve domain.ErrAlreadyCancelled si la
	// guarda no afecta filas y la venta existe.
	MarkCancelled(id, motivo string, at time.Time) error
	List(f SaleFilter) ([]*entity.Sale, error)
}
