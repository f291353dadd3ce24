package sales

import "github.com/llanterasoft/llantera-pos/internal/domain/repository"

// SalesTxRunner ejecuta una función con repos ligados a una transacción:
// libro de ventas, stock y cuentas por cobrar se confirman o revierten juntos.
type SalesTxRunner interface {
	RunSale(fn func(
		ventas repository.SaleRepository,
		productos repository.ProductRepository,
		cuentas repository.ReceivableRepository,
	) error) error
}
