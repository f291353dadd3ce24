package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/sales"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	db         *sqlx.DB
	createUC   *sales.CreateSaleUseCase
	cancelUC   *sales.CancelSaleUseCase
	queryUC    *sales.SaleQueryUseCase
	products   *sqlite.ProductRepo
	persons    *sqlite.PersonRepo
	customers  *sqlite.CustomerRepo
	cuentas    *sqlite.ReceivableRepo
	vendedorID string
	mecanicoID string
	clienteID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))

	f := &fixture{
		db:        db,
		products:  sqlite.NewProductRepository(db),
		persons:   sqlite.NewPersonRepository(db),
		customers: sqlite.NewCustomerRepository(db),
		cuentas:   sqlite.NewReceivableRepository(db),
	}
	txRunner := sqlite.NewTxRunner(db)
	f.createUC = sales.NewCreateSaleUseCase(txRunner, f.persons, f.products, f.customers)
	f.cancelUC = sales.NewCancelSaleUseCase(txRunner)
	f.queryUC = sales.NewSaleQueryUseCase(sqlite.NewSaleRepository(db))

	now := time.Now()
	f.vendedorID = uuid.New().String()
	require.NoError(t, f.persons.Create(&entity.Person{
		ID: f.vendedorID, Nombre: "María", Rol: entity.RolVendedor, Activo: true, CreatedAt: now,
	}))
	f.mecanicoID = uuid.New().String()
	require.NoError(t, f.persons.Create(&entity.Person{
		ID: f.mecanicoID, Nombre: "Pedro", Rol: entity.RolMecanico, Activo: true, CreatedAt: now,
	}))
	f.clienteID = uuid.New().String()
	require.NoError(t, f.customers.Create(&entity.Customer{
		ID: f.clienteID, Nombre: "Transportes Núñez", LimiteCredito: decimal.NewFromInt(500),
		Activo: true, CreatedAt: now,
	}))
	return f
}

// seedProduct crea un producto activo y devuelve su ID.
func (f *fixture) seedProduct(t *testing.T, precio, costo int64, stock int) string {
	t.Helper()
	id := uuid.New().String()
	now := time.Now()
	require.NoError(t, f.products.Create(&entity.Product{
		ID:          id,
		Codigo:      "SKU-" + id[:8],
		Descripcion: "Llanta 185/65R15",
		Costo:       decimal.NewFromInt(costo),
		PrecioVenta: decimal.NewFromInt(precio),
		Stock:       stock,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
	return id
}

func (f *fixture) stockOf(t *testing.T, productoID string) int {
	t.Helper()
	p, err := f.products.GetByID(productoID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear venta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CalculaTotalesYDescuentaStock(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	venta, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID:     f.vendedorID,
		MecanicoID:     f.mecanicoID,
		Items:          []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		ManoObra:       decimal.NewFromInt(15),
		Recargo:        decimal.NewFromInt(5),
		DescuentoTipo:  entity.DescuentoFijo,
		DescuentoValor: decimal.NewFromInt(10),
		MetodoPago:     entity.PagoEfectivo,
	})
	require.NoError(t, err)

	// total = 50 + 5 + 15 - 10
	assert.True(t, venta.Subtotal.Equal(decimal.NewFromInt(50)), "subtotal: %s", venta.Subtotal)
	assert.True(t, venta.DescuentoMonto.Equal(decimal.NewFromInt(10)))
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(60)), "total: %s", venta.Total)
	assert.Equal(t, 3, f.stockOf(t, productoID), "el stock debe bajar 5 → 3")

	// La venta queda con snapshots de precio y costo, y un pago normalizado.
	guardada, err := f.queryUC.Get(context.Background(), venta.ID)
	require.NoError(t, err)
	require.Len(t, guardada.Items, 1)
	assert.True(t, guardada.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(25)))
	assert.True(t, guardada.Items[0].CostoUnitario.Equal(decimal.NewFromInt(10)))
	require.Len(t, guardada.Pagos, 1)
	assert.Equal(t, entity.PagoEfectivo, guardada.Pagos[0].Metodo)
	assert.True(t, guardada.Pagos[0].Monto.Equal(venta.Total))
}

func TestCreateSale_DescuentoPorcentajeSobreSubtotal(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 100, 60, 10)

	venta, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID:     f.vendedorID,
		Items:          []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		DescuentoTipo:  entity.DescuentoPorcentaje,
		DescuentoValor: decimal.NewFromInt(10),
		MetodoPago:     entity.PagoTarjeta,
	})
	require.NoError(t, err)

	// 10% de 200 = 20; el porcentaje aplica solo sobre el subtotal.
	assert.True(t, venta.DescuentoMonto.Equal(decimal.NewFromInt(20)), "descuento: %s", venta.DescuentoMonto)
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(180)))
}

func TestCreateSale_StockInsuficienteNoDejaRastro(t *testing.T) {
	f := newFixture(t)
	caroID := f.seedProduct(t, 25, 10, 5)
	escasoID := f.seedProduct(t, 30, 12, 1)

	_, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		Items: []dto.SaleItemRequest{
			{ProductoID: caroID, Cantidad: 2},
			{ProductoID: escasoID, Cantidad: 3}, // solo hay 1
		},
		MetodoPago: entity.PagoEfectivo,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Atomicidad: ni el primer descuento de stock ni la venta sobreviven.
	assert.Equal(t, 5, f.stockOf(t, caroID))
	assert.Equal(t, 1, f.stockOf(t, escasoID))
	ventas, err := f.queryUC.List(context.Background(), repository.SaleFilter{IncluirAnuladas: true})
	require.NoError(t, err)
	assert.Empty(t, ventas)
}

func TestCreateSale_TotalNegativoRechazado(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	_, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID:     f.vendedorID,
		Items:          []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		DescuentoTipo:  entity.DescuentoFijo,
		DescuentoValor: decimal.NewFromInt(100),
		MetodoPago:     entity.PagoEfectivo,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, f.stockOf(t, productoID))
}

func TestCreateSale_VendedorConRolIncorrecto(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	_, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.mecanicoID, // mecánico firmando como vendedor
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 1}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.ErrorIs(t, err, domain.ErrRoleMismatch)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crédito y pagos divididos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CreditoAbreCuentaPorCobrar(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	venta, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		ClienteID:  f.clienteID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		MetodoPago: entity.PagoCredito,
	})
	require.NoError(t, err)

	pendientes, err := f.cuentas.ListPendingByCustomer(f.clienteID)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.True(t, pendientes[0].MontoTotal.Equal(venta.Total))
	assert.True(t, pendientes[0].MontoPagado.IsZero())
	require.NotNil(t, pendientes[0].VentaID)
	assert.Equal(t, venta.ID, *pendientes[0].VentaID)
}

func TestCreateSale_CreditoSinClienteRechazado(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	_, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 1}},
		MetodoPago: entity.PagoCredito,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, f.stockOf(t, productoID))
}

func TestCreateSale_PagosMixtos(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 30, 12, 5)

	venta, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		ClienteID:  f.clienteID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		MetodoPago: entity.PagoMixto,
		Pagos: []dto.PaymentRequest{
			{Metodo: entity.PagoEfectivo, Monto: decimal.NewFromInt(35)},
			{Metodo: entity.PagoCredito, Monto: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	guardada, err := f.queryUC.Get(context.Background(), venta.ID)
	require.NoError(t, err)
	require.Len(t, guardada.Pagos, 2)

	// Solo la porción a crédito abre deuda.
	pendientes, err := f.cuentas.ListPendingByCustomer(f.clienteID)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.True(t, pendientes[0].MontoTotal.Equal(decimal.NewFromInt(25)))
}

func TestCreateSale_PagosMixtosQueNoCuadranRechazados(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 30, 12, 5)

	_, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		MetodoPago: entity.PagoMixto,
		Pagos: []dto.PaymentRequest{
			{Metodo: entity.PagoEfectivo, Monto: decimal.NewFromInt(10)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, f.stockOf(t, productoID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Anulación
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelSale_ReponeStockExactamenteUnaVez(t *testing.T) {
	f := newFixture(t)
	productoID := f.seedProduct(t, 25, 10, 5)

	venta, err := f.createUC.Create(context.Background(), dto.CreateSaleRequest{
		VendedorID: f.vendedorID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)
	require.Equal(t, 3, f.stockOf(t, productoID))

	require.NoError(t, f.cancelUC.Cancel(context.Background(), venta.ID, "cliente devolvió"))
	assert.Equal(t, 5, f.stockOf(t, productoID), "la anulación repone el stock")

	guardada, err := f.queryUC.Get(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.True(t, guardada.Anulada)
	require.NotNil(t, guardada.MotivoAnulacion)
	assert.Equal(t, "cliente devolvió", *guardada.MotivoAnulacion)
	assert.NotNil(t, guardada.AnuladaEn)

	// La segunda anulación no repone de nuevo.
	err = f.cancelUC.Cancel(context.Background(), venta.ID, "otra vez")
	require.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.Equal(t, 5, f.stockOf(t, productoID))
}

func TestCancelSale_VentaInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.cancelUC.Cancel(context.Background(), uuid.New().String(), "motivo")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
