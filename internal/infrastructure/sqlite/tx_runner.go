package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// TxRunner ejecuta unidades de trabajo dentro de una transacción SQLite.
// Los repositorios que recibe el callback están ligados a la transacción;
// si el callback devuelve error, todo se revierte.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner construye el ejecutor de transacciones.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

func (t *TxRunner) run(fn func(tx *sqlx.Tx) error) error {
	tx, err := t.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunSale abre una transacción para crear o anular una venta: libro de
// ventas, stock y cuenta por cobrar se confirman o revierten juntos.
func (t *TxRunner) RunSale(fn func(ventas repository.SaleRepository, productos repository.ProductRepository, cuentas repository.ReceivableRepository) error) error {
	return t.run(func(tx *sqlx.Tx) error {
		return fn(NewSaleRepository(tx), NewProductRepository(tx), NewReceivableRepository(tx))
	})
}

// RunInventory abre una transacción para editar un producto junto con su
// registro de historial.
func (t *TxRunner) RunInventory(fn func(productos repository.ProductRepository, historial repository.ProductHistoryRepository) error) error {
	return t.run(func(tx *sqlx.Tx) error {
		return fn(NewProductRepository(tx), NewProductHistoryRepository(tx))
	})
}

// RunReceivable abre una transacción para leer y abonar una cuenta por
// cobrar sin carreras entre el chequeo de sobrepago y el update.
func (t *TxRunner) RunReceivable(fn func(cuentas repository.ReceivableRepository) error) error {
	return t.run(func(tx *sqlx.Tx) error {
		return fn(NewReceivableRepository(tx))
	})
}
