package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// CancelSaleUseCase anula una venta y devuelve el stock en una sola
// transacción. La anulación ocurre exactamente una vez: el segundo intento
// recibe ErrAlreadyCancelled.
//
// La cuenta por cobrar de la venta, si existe, no se toca: el ajuste de
// deuda tras una anulación es una decisión manual del negocio.
type CancelSaleUseCase struct {
	txRunner SalesTxRunner
}

// NewCancelSaleUseCase construye el caso de uso.
func NewCancelSaleUseCase(txRunner SalesTxRunner) *CancelSaleUseCase {
	return &CancelSaleUseCase{txRunner: txRunner}
}

// Cancel marca la venta como anulada y repone el stock de cada línea.
func (uc *CancelSaleUseCase) Cancel(ctx context.Context, ventaID, motivo string) error {
	if ventaID == "" || motivo == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunSale(func(
		ventas repository.SaleRepository,
		productos repository.ProductRepository,
		_ repository.ReceivableRepository,
	) error {
		// La guarda `anulada = 0` vive en el repo; si otro proceso anuló
		// primero, aquí llega ErrAlreadyCancelled y nada se repone.
		if err := ventas.MarkCancelled(ventaID, motivo, time.Now()); err != nil {
			return err
		}
		items, err := ventas.GetItems(ventaID)
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := productos.IncrementStock(it.ProductoID, it.Cantidad); err != nil {
				return fmt.Errorf("reponer producto %s: %w", it.ProductoID, err)
			}
		}
		return nil
	})
}
