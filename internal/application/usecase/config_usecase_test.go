package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/commission"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

func newConfigUC(t *testing.T) *usecase.ConfigUseCase {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))
	return usecase.NewConfigUseCase(sqlite.NewConfigRepository(db))
}

// Sin configuración, el umbral de reposición es 5 unidades.
func TestConfig_UmbralStockBajoDefault(t *testing.T) {
	uc := newConfigUC(t)
	ctx := context.Background()

	assert.Equal(t, 5, uc.UmbralStockBajo(ctx))

	require.NoError(t, uc.Set(ctx, repository.ConfigUmbralStockBajo, "8"))
	assert.Equal(t, 8, uc.UmbralStockBajo(ctx))
}

func TestConfig_TasaComisionDefault(t *testing.T) {
	uc := newConfigUC(t)
	ctx := context.Background()

	assert.True(t, commission.DefaultRate.Equal(uc.TasaComisionDefault(ctx)))

	require.NoError(t, uc.Set(ctx, repository.ConfigTasaComision, "0.15"))
	assert.True(t, decimal.New(15, -2).Equal(uc.TasaComisionDefault(ctx)))
}

func TestConfig_SetValida(t *testing.T) {
	uc := newConfigUC(t)
	ctx := context.Background()

	require.ErrorIs(t, uc.Set(ctx, repository.ConfigTasaComision, "1.5"), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.Set(ctx, repository.ConfigUmbralStockBajo, "-1"), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.Set(ctx, "clave_desconocida", "x"), domain.ErrInvalidInput)
}
