package receivables

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// ReceivableTxRunner ejecuta la lectura y el abono de una cuenta dentro de
// la misma transacción, sin carreras entre el chequeo de sobrepago y el update.
type ReceivableTxRunner interface {
	RunReceivable(fn func(cuentas repository.ReceivableRepository) error) error
}

// UseCase gestiona cuentas por cobrar: deudas manuales, abonos y saldos.
type UseCase struct {
	txRunner     ReceivableTxRunner
	recRepo      repository.ReceivableRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ReceivableTxRunner, recRepo repository.ReceivableRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, recRepo: recRepo, customerRepo: customerRepo}
}

// CreateManual abre una deuda no originada en una venta (ej: saldo migrado
// o acuerdo verbal).
func (uc *UseCase) CreateManual(ctx context.Context, clienteID, descripcion string, monto decimal.Decimal, vence *time.Time) (*entity.Receivable, error) {
	if clienteID == "" || !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.customerRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || !cliente.Activo {
		return nil, domain.ErrNotFound
	}
	rec := &entity.Receivable{
		ID:               uuid.New().String(),
		ClienteID:        clienteID,
		Descripcion:      descripcion,
		MontoTotal:       monto,
		MontoPagado:      decimal.Zero,
		FechaCreacion:    time.Now(),
		FechaVencimiento: vence,
		Estado:           entity.ReceivablePendiente,
	}
	if err := uc.recRepo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Pay abona a una cuenta. El abono nunca puede exceder el saldo restante
// (más la tolerancia de redondeo); si lo cubre, la cuenta pasa a pagada.
func (uc *UseCase) Pay(ctx context.Context, id string, monto decimal.Decimal) (*entity.Receivable, error) {
	if id == "" || !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Receivable
	err := uc.txRunner.RunReceivable(func(cuentas repository.ReceivableRepository) error {
		rec, err := cuentas.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Estado == entity.ReceivablePagada {
			return fmt.Errorf("%w: la cuenta ya está saldada", domain.ErrOverpayment)
		}
		if monto.GreaterThan(rec.Restante().Add(entity.ToleranciaPago)) {
			return fmt.Errorf("%w: restante %s, abono %s", domain.ErrOverpayment, rec.Restante(), monto)
		}
		rec.MontoPagado = rec.MontoPagado.Add(monto)
		if rec.Saldada() {
			rec.Estado = entity.ReceivablePagada
		}
		if err := cuentas.UpdatePayment(id, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve la cuenta o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Receivable, error) {
	rec, err := uc.recRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// ListByCustomer lista todas las cuentas del cliente, saldadas incluidas.
func (uc *UseCase) ListByCustomer(ctx context.Context, clienteID string) ([]*entity.Receivable, error) {
	return uc.recRepo.ListByCustomer(clienteID)
}

// ListPending lista todas las cuentas abiertas del negocio.
func (uc *UseCase) ListPending(ctx context.Context) ([]*entity.Receivable, error) {
	return uc.recRepo.ListPending()
}

// CustomerBalance devuelve el saldo pendiente total de un cliente,
// sumado en Go con decimal sobre las cuentas abiertas.
func (uc *UseCase) CustomerBalance(ctx context.Context, clienteID string) (decimal.Decimal, error) {
	pendientes, err := uc.recRepo.ListPendingByCustomer(clienteID)
	if err != nil {
		return decimal.Zero, err
	}
	saldo := decimal.Zero
	for _, rec := range pendientes {
		saldo = saldo.Add(rec.Restante())
	}
	return saldo, nil
}
