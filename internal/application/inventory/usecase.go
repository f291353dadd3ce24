package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// InventoryTxRunner ejecuta la edición de un producto y su registro de
// historial dentro de la misma transacción.
type InventoryTxRunner interface {
	RunInventory(fn func(
		productos repository.ProductRepository,
		historial repository.ProductHistoryRepository,
	) error) error
}

// UseCase gestiona el catálogo de productos y su historial de cambios.
// Solo las ediciones explícitas generan historial; los movimientos de stock
// por venta o anulación no pasan por aquí.
type UseCase struct {
	txRunner    InventoryTxRunner
	productRepo repository.ProductRepository
	historyRepo repository.ProductHistoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner InventoryTxRunner, productRepo repository.ProductRepository, historyRepo repository.ProductHistoryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, historyRepo: historyRepo}
}

func validarProducto(in dto.SaveProductRequest) error {
	if in.Codigo == "" || in.Descripcion == "" {
		return domain.ErrInvalidInput
	}
	if in.Costo.IsNegative() || in.PrecioVenta.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta un producto con su entrada "registro" en el historial.
func (uc *UseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*entity.Product, error) {
	if err := validarProducto(in); err != nil {
		return nil, err
	}
	now := time.Now()
	producto := &entity.Product{
		ID:          uuid.New().String(),
		Codigo:      in.Codigo,
		Descripcion: in.Descripcion,
		Costo:       in.Costo,
		PrecioVenta: in.PrecioVenta,
		Stock:       in.Stock,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.RunInventory(func(
		productos repository.ProductRepository,
		historial repository.ProductHistoryRepository,
	) error {
		if err := productos.Create(producto); err != nil {
			return err
		}
		return historial.Create(&entity.ProductHistory{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			PrecioAnterior: producto.PrecioVenta,
			PrecioNuevo:    producto.PrecioVenta,
			StockAnterior:  producto.Stock,
			StockNuevo:     producto.Stock,
			Tipo:           entity.HistorialRegistro,
			Fecha:          now,
		})
	})
	if err != nil {
		return nil, err
	}
	return producto, nil
}

// Update edita un producto. El tipo de historial se clasifica por lo que
// cambió: precio gana sobre reposición; una edición sin cambios de precio
// ni stock no escribe historial.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validarProducto(in); err != nil {
		return nil, err
	}
	var out *entity.Product
	err := uc.txRunner.RunInventory(func(
		productos repository.ProductRepository,
		historial repository.ProductHistoryRepository,
	) error {
		actual, err := productos.GetByID(id)
		if err != nil {
			return err
		}
		if actual == nil {
			return domain.ErrNotFound
		}
		precioAnterior := actual.PrecioVenta
		stockAnterior := actual.Stock

		actual.Codigo = in.Codigo
		actual.Descripcion = in.Descripcion
		actual.Costo = in.Costo
		actual.PrecioVenta = in.PrecioVenta
		actual.Stock = in.Stock
		actual.UpdatedAt = time.Now()
		if err := productos.Update(actual); err != nil {
			return err
		}

		cambioPrecio := !precioAnterior.Equal(in.PrecioVenta)
		cambioStock := stockAnterior != in.Stock
		if !cambioPrecio && !cambioStock {
			out = actual
			return nil
		}
		tipo := entity.HistorialReposicion
		if cambioPrecio {
			tipo = entity.HistorialPrecio
		}
		if err := historial.Create(&entity.ProductHistory{
			ID:             uuid.New().String(),
			ProductoID:     id,
			PrecioAnterior: precioAnterior,
			PrecioNuevo:    in.PrecioVenta,
			StockAnterior:  stockAnterior,
			StockNuevo:     in.Stock,
			Tipo:           tipo,
			Fecha:          actual.UpdatedAt,
		}); err != nil {
			return err
		}
		out = actual
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve el producto o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	producto, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return producto, nil
}

// List lista productos activos con búsqueda opcional por código o descripción.
func (uc *UseCase) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListActive(search, limit, offset)
}

// History devuelve el historial del producto, del más reciente al más viejo.
func (uc *UseCase) History(ctx context.Context, productoID string) ([]*entity.ProductHistory, error) {
	return uc.historyRepo.ListByProduct(productoID)
}

// Deactivate retira el producto del catálogo sin borrar sus ventas históricas.
func (uc *UseCase) Deactivate(ctx context.Context, id string) error {
	return uc.productRepo.Deactivate(id)
}
