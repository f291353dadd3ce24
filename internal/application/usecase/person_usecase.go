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

// PersonUseCase gestiona el personal del taller (vendedores y mecánicos).
type PersonUseCase struct {
	personRepo repository.PersonRepository
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(personRepo repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{personRepo: personRepo}
}

func validarPersona(in dto.SavePersonRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	if in.Rol != entity.RolVendedor && in.Rol != entity.RolMecanico {
		return fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Rol)
	}
	if in.TasaComision != nil {
		uno := decimal.NewFromInt(1)
		if in.TasaComision.IsNegative() || in.TasaComision.GreaterThan(uno) {
			return fmt.Errorf("%w: la tasa de comisión va de 0 a 1", domain.ErrInvalidInput)
		}
	}
	return nil
}

// Create da de alta un miembro del personal.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.SavePersonRequest) (*entity.Person, error) {
	if err := validarPersona(in); err != nil {
		return nil, err
	}
	persona := &entity.Person{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Rol:          in.Rol,
		TasaComision: in.TasaComision,
		Activo:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.personRepo.Create(persona); err != nil {
		return nil, err
	}
	return persona, nil
}

// Update edita nombre, rol y tasa de comisión.
func (uc *PersonUseCase) Update(ctx context.Context, id string, in dto.SavePersonRequest) (*entity.Person, error) {
	if err := validarPersona(in); err != nil {
		return nil, err
	}
	persona, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, domain.ErrNotFound
	}
	persona.Nombre = in.Nombre
	persona.Rol = in.Rol
	persona.TasaComision = in.TasaComision
	if err := uc.personRepo.Update(persona); err != nil {
		return nil, err
	}
	return persona, nil
}

// Get devuelve la persona o ErrNotFound.
func (uc *PersonUseCase) Get(ctx context.Context, id string) (*entity.Person, error) {
	persona, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, domain.ErrNotFound
	}
	return persona, nil
}

// List lista personal activo, opcionalmente por rol.
func (uc *PersonUseCase) List(ctx context.Context, rol string) ([]*entity.Person, error) {
	if rol != "" && rol != entity.RolVendedor && rol != entity.RolMecanico {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, rol)
	}
	return uc.personRepo.ListActive(rol)
}

// Deactivate retira a la persona sin borrar sus ventas históricas.
func (uc *PersonUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.personRepo.Deactivate(id)
}
