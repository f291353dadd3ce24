package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// ReceivableRepository puerto de persistencia de cuentas por cobrar.
type ReceivableRepository interface {
	Create(r *entity.Receivable) error
	GetByID(id string) (*entity.Receivable, error)
	// UpdatePayment persiste monto_pagado y estado recalculados por el caso de
	// uso. La validación de sobrepago ocurre antes, en el caso de uso.
	UpdatePayment(id string, r *entity.Receivable) error
	ListByCustomer(clienteID string) ([]*entity.Receivable, error)
	// ListPendingByCustomer lista solo las no saldadas, para calcular saldo.
	ListPendingByCustomer(clienteID string) ([]*entity.Receivable, error)
	ListPending() ([]*entity.Receivable, error)
}
