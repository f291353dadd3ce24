package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// ProductRepository puerto de persistencia de productos.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCodigo(codigo string) (*entity.Product, error)
	// Update guarda descripción, costo, precio y stock. El historial lo decide
	// el caso de uso de inventario, no el repositorio.
	Update(p *entity.Product) error
	// DecrementStock descuenta qty de forma condicional (stock >= qty);
	// devuelve domain.ErrInsufficientStock si la guarda no se cumple.
	// Solo debe invocarse dentro de la transacción del coordinador de ventas.
	DecrementStock(id string, qty int) error
	// IncrementStock repone qty unidades (anulación de venta).
	IncrementStock(id string, qty int) error
	// ListActive lista productos activos; search filtra por código o
	// descripción ya normalizados (strutil.Fold).
	ListActive(search string, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
