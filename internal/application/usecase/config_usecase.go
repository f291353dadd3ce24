package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/commission"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// UmbralStockBajoDefault unidades en o bajo las cuales un producto entra
// al widget de reposición si no hay umbral configurado.
const UmbralStockBajoDefault = 5

// ConfigUseCase lee y escribe la configuración de negocio con validación
// por clave conocida.
type ConfigUseCase struct {
	configRepo repository.ConfigRepository
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(configRepo repository.ConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{configRepo: configRepo}
}

// Get devuelve el valor de la clave ("" si no está configurada).
func (uc *ConfigUseCase) Get(ctx context.Context, clave string) (string, error) {
	return uc.configRepo.Get(clave)
}

// Set valida y guarda el valor según la clave.
func (uc *ConfigUseCase) Set(ctx context.Context, clave, valor string) error {
	switch clave {
	case repository.ConfigTasaComision:
		tasa, err := decimal.NewFromString(valor)
		if err != nil {
			return fmt.Errorf("%w: tasa %q", domain.ErrInvalidInput, valor)
		}
		if tasa.IsNegative() || tasa.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: la tasa de comisión va de 0 a 1", domain.ErrInvalidInput)
		}
	case repository.ConfigUmbralStockBajo:
		n, err := strconv.Atoi(valor)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: umbral %q", domain.ErrInvalidInput, valor)
		}
	case repository.ConfigImpresora:
		// texto libre
	default:
		return fmt.Errorf("%w: clave %q", domain.ErrInvalidInput, clave)
	}
	return uc.configRepo.Set(clave, valor)
}

// TasaComisionDefault devuelve la tasa global configurada, o la tasa por
// defecto del dominio si no hay valor o no parsea.
func (uc *ConfigUseCase) TasaComisionDefault(ctx context.Context) decimal.Decimal {
	valor, err := uc.configRepo.Get(repository.ConfigTasaComision)
	if err != nil || valor == "" {
		return commission.DefaultRate
	}
	tasa, err := decimal.NewFromString(valor)
	if err != nil {
		return commission.DefaultRate
	}
	return tasa
}

// UmbralStockBajo devuelve el umbral configurado o el default.
func (uc *ConfigUseCase) UmbralStockBajo(ctx context.Context) int {
	valor, err := uc.configRepo.Get(repository.ConfigUmbralStockBajo)
	if err != nil || valor == "" {
		return UmbralStockBajoDefault
	}
	n, err := strconv.Atoi(valor)
	if err != nil || n < 0 {
		return UmbralStockBajoDefault
	}
	return n
}
