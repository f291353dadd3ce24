package sales

import (
	"context"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// SaleQueryUseCase lecturas del libro de ventas (sobre el pool, sin tx).
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso de lectura.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// Get devuelve la venta con sus líneas y pagos cargados.
func (uc *SaleQueryUseCase) Get(ctx context.Context, id string) (*entity.Sale, error) {
	venta, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	if venta.Items, err = uc.saleRepo.GetItems(id); err != nil {
		return nil, err
	}
	if venta.Pagos, err = uc.saleRepo.GetPayments(id); err != nil {
		return nil, err
	}
	return venta, nil
}

// List devuelve cabeceras de venta según el filtro.
func (uc *SaleQueryUseCase) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	return uc.saleRepo.List(f)
}
