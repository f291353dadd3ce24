package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// ServiceUseCase registra trabajos de mano de obra sin productos.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	personRepo  repository.PersonRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(serviceRepo repository.ServiceRepository, personRepo repository.PersonRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo, personRepo: personRepo}
}

// Create registra un servicio ejecutado por un mecánico.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*entity.Service, error) {
	if in.MecanicoID == "" || in.Descripcion == "" || !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch in.MetodoPago {
	case entity.PagoEfectivo, entity.PagoTarjeta, entity.PagoTransferencia:
	default:
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.MetodoPago)
	}
	mecanico, err := uc.personRepo.GetByID(in.MecanicoID)
	if err != nil {
		return nil, err
	}
	if mecanico == nil || !mecanico.Activo {
		return nil, domain.ErrNotFound
	}
	if !mecanico.CanLabor() {
		return nil, fmt.Errorf("%w: %s no es mecánico", domain.ErrRoleMismatch, mecanico.Nombre)
	}
	now := time.Now()
	servicio := &entity.Service{
		ID:          uuid.New().String(),
		MecanicoID:  in.MecanicoID,
		Descripcion: in.Descripcion,
		Valor:       in.Valor,
		MetodoPago:  in.MetodoPago,
		Fecha:       now,
		CreatedAt:   now,
	}
	if err := uc.serviceRepo.Create(servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

// ListByRange lista servicios con fecha en [desde, hasta); mecánico opcional.
func (uc *ServiceUseCase) ListByRange(ctx context.Context, desde, hasta time.Time, mecanicoID string) ([]*entity.Service, error) {
	if !hasta.After(desde) {
		return nil, domain.ErrInvalidInput
	}
	return uc.serviceRepo.ListByRange(desde, hasta, mecanicoID)
}
