package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/inventory"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

func newUseCase(t *testing.T) *inventory.UseCase {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))
	return inventory.NewUseCase(
		sqlite.NewTxRunner(db),
		sqlite.NewProductRepository(db),
		sqlite.NewProductHistoryRepository(db),
	)
}

func baseRequest() dto.SaveProductRequest {
	return dto.SaveProductRequest{
		Codigo:      "LLA-185",
		Descripcion: "Llanta 185/65R15",
		Costo:       decimal.NewFromInt(40),
		PrecioVenta: decimal.NewFromInt(60),
		Stock:       8,
	}
}

func TestCreate_EscribeHistorialDeRegistro(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	producto, err := uc.Create(ctx, baseRequest())
	require.NoError(t, err)

	historial, err := uc.History(ctx, producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Equal(t, entity.HistorialRegistro, historial[0].Tipo)
	assert.Equal(t, 8, historial[0].StockNuevo)
}

func TestUpdate_ClasificaElHistorial(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	producto, err := uc.Create(ctx, baseRequest())
	require.NoError(t, err)

	// Solo stock → reposición.
	in := baseRequest()
	in.Stock = 20
	_, err = uc.Update(ctx, producto.ID, in)
	require.NoError(t, err)

	// Solo precio → precio.
	in.PrecioVenta = decimal.NewFromInt(65)
	_, err = uc.Update(ctx, producto.ID, in)
	require.NoError(t, err)

	// Precio y stock a la vez → gana precio.
	in.PrecioVenta = decimal.NewFromInt(70)
	in.Stock = 25
	_, err = uc.Update(ctx, producto.ID, in)
	require.NoError(t, err)

	// Sin cambios de precio ni stock → no hay historial nuevo.
	in.Descripcion = "Llanta 185/65R15 (promo)"
	_, err = uc.Update(ctx, producto.ID, in)
	require.NoError(t, err)

	historial, err := uc.History(ctx, producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, 4, "registro + reposición + precio + precio")

	// Orden descendente por fecha: el alta queda al final.
	tipos := []string{historial[3].Tipo, historial[2].Tipo, historial[1].Tipo, historial[0].Tipo}
	assert.Equal(t, []string{
		entity.HistorialRegistro,
		entity.HistorialReposicion,
		entity.HistorialPrecio,
		entity.HistorialPrecio,
	}, tipos)

	ultimo := historial[0]
	assert.True(t, ultimo.PrecioAnterior.Equal(decimal.NewFromInt(65)))
	assert.True(t, ultimo.PrecioNuevo.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 20, ultimo.StockAnterior)
	assert.Equal(t, 25, ultimo.StockNuevo)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, baseRequest())
	require.NoError(t, err)
	_, err = uc.Create(ctx, baseRequest())
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Update(context.Background(), "no-existe", baseRequest())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_BusquedaIgnoraAcentos(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	in := baseRequest()
	in.Codigo = "CAM-01"
	in.Descripcion = "Cámara de aire rin 15"
	_, err := uc.Create(ctx, in)
	require.NoError(t, err)

	productos, err := uc.List(ctx, "camara", 10, 0)
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, "CAM-01", productos[0].Codigo)
}
