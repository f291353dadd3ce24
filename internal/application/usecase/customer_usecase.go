package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// CustomerUseCase gestiona los clientes con cuenta corriente.
// El límite de crédito es informativo: se muestra junto al saldo pero
// nunca bloquea una venta.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.SaveCustomerRequest) (*entity.Customer, error) {
	if in.Nombre == "" || in.LimiteCredito.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Customer{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Direccion:     in.Direccion,
		LimiteCredito: in.LimiteCredito,
		Activo:        true,
		CreatedAt:     time.Now(),
	}
	if err := uc.customerRepo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Update edita los datos de contacto y el límite de crédito.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.SaveCustomerRequest) (*entity.Customer, error) {
	if in.Nombre == "" || in.LimiteCredito.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	cliente.Nombre = in.Nombre
	cliente.Telefono = in.Telefono
	cliente.Direccion = in.Direccion
	cliente.LimiteCredito = in.LimiteCredito
	if err := uc.customerRepo.Update(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Get devuelve el cliente o ErrNotFound.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	cliente, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return cliente, nil
}

// List lista clientes activos con búsqueda opcional por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]*entity.Customer, error) {
	return uc.customerRepo.ListActive(search)
}

// Deactivate retira al cliente; sus cuentas por cobrar quedan intactas.
func (uc *CustomerUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.customerRepo.Deactivate(id)
}
