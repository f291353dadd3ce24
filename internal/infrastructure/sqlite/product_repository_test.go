package sqlite_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))
	return db
}

func seedProduct(t *testing.T, repo *sqlite.ProductRepo, codigo, descripcion string, stock int) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Codigo:      codigo,
		Descripcion: descripcion,
		Costo:       decimal.NewFromInt(10),
		PrecioVenta: decimal.NewFromInt(15),
		Stock:       stock,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(p))
	return p
}

func TestProductRepo_CodigoUnico(t *testing.T) {
	repo := sqlite.NewProductRepository(newTestDB(t))
	seedProduct(t, repo, "LLA-1", "Llanta", 5)

	now := time.Now()
	err := repo.Create(&entity.Product{
		ID: uuid.New().String(), Codigo: "LLA-1", Descripcion: "otra",
		Costo: decimal.Zero, PrecioVenta: decimal.Zero,
		Activo: true, CreatedAt: now, UpdatedAt: now,
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepo_DecrementStockConGuarda(t *testing.T) {
	repo := sqlite.NewProductRepository(newTestDB(t))
	p := seedProduct(t, repo, "LLA-1", "Llanta", 3)

	require.NoError(t, repo.DecrementStock(p.ID, 2))

	// La guarda condicional no permite dejar el stock negativo.
	err := repo.DecrementStock(p.ID, 2)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)

	err = repo.DecrementStock(uuid.New().String(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_GetInexistenteDevuelveNil(t *testing.T) {
	repo := sqlite.NewProductRepository(newTestDB(t))

	p, err := repo.GetByID(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = repo.GetByCodigo("NO-EXISTE")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_ListActiveBuscaSinAcentos(t *testing.T) {
	repo := sqlite.NewProductRepository(newTestDB(t))
	seedProduct(t, repo, "CAM-1", "Cámara de aire", 5)
	seedProduct(t, repo, "LLA-1", "Llanta rin 15", 5)
	inactivo := seedProduct(t, repo, "VAL-1", "Válvula", 5)
	require.NoError(t, repo.Deactivate(inactivo.ID))

	// La búsqueda pliega acentos y mayúsculas en ambos lados.
	list, err := repo.ListActive("CAMARA", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CAM-1", list[0].Codigo)

	// Los desactivados no aparecen ni sin filtro.
	list, err = repo.ListActive("", 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Paginación sobre el resultado filtrado.
	list, err = repo.ListActive("", 1, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
