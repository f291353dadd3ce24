package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/application/analytics"
	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/application/sales"
	"github.com/llanterasoft/llantera-pos/internal/application/usecase"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un día de operación del taller
//
//	venta 1 (Ana, tasa default 0.30): 1 × (precio 50, costo 20)      → comisión 9
//	venta 2 (Beto, override 0.10):    2 × ídem, desc 10, m.obra 30   → comisión 5
//	venta 3 (Ana): anulada, no debe aparecer en ningún agregado
//	servicio (mecánico): 25 en efectivo
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	reportUC    *analytics.ReportUseCase
	dashboardUC *analytics.DashboardUseCase
	anaID       string
	betoID      string
	desde       time.Time
	hasta       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))

	persons := sqlite.NewPersonRepository(db)
	products := sqlite.NewProductRepository(db)
	customers := sqlite.NewCustomerRepository(db)
	services := sqlite.NewServiceRepository(db)
	receivables := sqlite.NewReceivableRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	now := time.Now()
	anaID := uuid.New().String()
	require.NoError(t, persons.Create(&entity.Person{
		ID: anaID, Nombre: "Ana", Rol: entity.RolVendedor, Activo: true, CreatedAt: now,
	}))
	tasaBeto := decimal.New(1, -1) // 0.10
	betoID := uuid.New().String()
	require.NoError(t, persons.Create(&entity.Person{
		ID: betoID, Nombre: "Beto", Rol: entity.RolVendedor, TasaComision: &tasaBeto,
		Activo: true, CreatedAt: now,
	}))
	mecanicoID := uuid.New().String()
	require.NoError(t, persons.Create(&entity.Person{
		ID: mecanicoID, Nombre: "Carlos", Rol: entity.RolMecanico, Activo: true, CreatedAt: now,
	}))

	productoID := uuid.New().String()
	require.NoError(t, products.Create(&entity.Product{
		ID: productoID, Codigo: "LLA-205", Descripcion: "Llanta 205/55R16",
		Costo: decimal.NewFromInt(20), PrecioVenta: decimal.NewFromInt(50),
		Stock: 20, Activo: true, CreatedAt: now, UpdatedAt: now,
	}))
	// Dos productos para el widget de reposición: uno bajo el umbral default
	// (5) y otro justo en el límite, que también debe entrar.
	require.NoError(t, products.Create(&entity.Product{
		ID: uuid.New().String(), Codigo: "VAL-1", Descripcion: "Válvula TR-413",
		Costo: decimal.NewFromInt(1), PrecioVenta: decimal.NewFromInt(3),
		Stock: 2, Activo: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: uuid.New().String(), Codigo: "RIN-15", Descripcion: "Rin 15 acero",
		Costo: decimal.NewFromInt(30), PrecioVenta: decimal.NewFromInt(55),
		Stock: 5, Activo: true, CreatedAt: now, UpdatedAt: now,
	}))

	createUC := sales.NewCreateSaleUseCase(txRunner, persons, products, customers)
	cancelUC := sales.NewCancelSaleUseCase(txRunner)
	ctx := context.Background()

	_, err = createUC.Create(ctx, dto.CreateSaleRequest{
		VendedorID: anaID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 1}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)

	_, err = createUC.Create(ctx, dto.CreateSaleRequest{
		VendedorID:     betoID,
		Items:          []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 2}},
		DescuentoTipo:  entity.DescuentoFijo,
		DescuentoValor: decimal.NewFromInt(10),
		ManoObra:       decimal.NewFromInt(30),
		MetodoPago:     entity.PagoTarjeta,
	})
	require.NoError(t, err)

	anulada, err := createUC.Create(ctx, dto.CreateSaleRequest{
		VendedorID: anaID,
		Items:      []dto.SaleItemRequest{{ProductoID: productoID, Cantidad: 3}},
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)
	require.NoError(t, cancelUC.Cancel(ctx, anulada.ID, "error de captura"))

	require.NoError(t, services.Create(&entity.Service{
		ID: uuid.New().String(), MecanicoID: mecanicoID, Descripcion: "montaje",
		Valor: decimal.NewFromInt(25), MetodoPago: entity.PagoEfectivo,
		Fecha: now, CreatedAt: now,
	}))

	configUC := usecase.NewConfigUseCase(sqlite.NewConfigRepository(db))
	reportsRepo := sqlite.NewReportsRepository(db)

	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &fixture{
		reportUC:    analytics.NewReportUseCase(reportsRepo, configUC),
		dashboardUC: analytics.NewDashboardUseCase(reportsRepo, receivables, configUC),
		anaID:       anaID,
		betoID:      betoID,
		desde:       hoy,
		hasta:       hoy.AddDate(0, 0, 1),
	}
}

func eq(t *testing.T, want int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "%s: esperado %d, fue %s", msg, want, got)
}

func TestReport_AgregadosDelDia(t *testing.T) {
	f := newFixture(t)

	out, err := f.reportUC.Build(context.Background(), repository.ReportFilter{
		Desde: f.desde, Hasta: f.hasta,
	})
	require.NoError(t, err)

	// venta 1: total 50; venta 2: 100 + 30 - 10 = 120; servicio: 25
	eq(t, 195, out.Ingresos, "ingresos")
	eq(t, 60, out.Costo, "costo de mercancía")
	eq(t, 14, out.Comisiones, "comisiones (9 de Ana + 5 de Beto)")
	eq(t, 55, out.GastoManoObra, "mano de obra (30 en venta + 25 servicio)")
	eq(t, 66, out.Utilidad, "utilidad neta")
	assert.Equal(t, 2, out.NumVentas, "la anulada no cuenta")
	assert.Equal(t, 1, out.NumServicios)

	// Desglose por vendedor, ordenado por monto vendido.
	require.Len(t, out.PorVendedor, 2)
	assert.Equal(t, "Beto", out.PorVendedor[0].Nombre)
	eq(t, 120, out.PorVendedor[0].Vendido, "vendido Beto")
	eq(t, 5, out.PorVendedor[0].Comision, "comisión Beto con override 0.10")
	assert.Equal(t, "Ana", out.PorVendedor[1].Nombre)
	eq(t, 9, out.PorVendedor[1].Comision, "comisión Ana con tasa default 0.30")

	// Por método, orden alfabético; efectivo suma la venta y el servicio.
	require.Len(t, out.PorMetodoPago, 2)
	assert.Equal(t, "efectivo", out.PorMetodoPago[0].Metodo)
	eq(t, 75, out.PorMetodoPago[0].Total, "efectivo: venta 50 + servicio 25")
	assert.Equal(t, 1, out.PorMetodoPago[0].Ventas, "el servicio no cuenta como venta")
	assert.Equal(t, "tarjeta", out.PorMetodoPago[1].Metodo)
	eq(t, 120, out.PorMetodoPago[1].Total, "tarjeta: solo la venta de Beto")

	// Listado cronológico de ventas con su comisión por venta.
	require.Len(t, out.Ventas, 2, "la anulada no aparece en el listado")
	assert.Equal(t, "Ana", out.Ventas[0].Vendedor)
	eq(t, 9, out.Ventas[0].Comision, "comisión de la primera venta")
	assert.Equal(t, "Beto", out.Ventas[1].Vendedor)
	eq(t, 120, out.Ventas[1].Total, "total de la segunda venta")
}

func TestReport_FiltroPorVendedorExcluyeServicios(t *testing.T) {
	f := newFixture(t)

	out, err := f.reportUC.Build(context.Background(), repository.ReportFilter{
		Desde: f.desde, Hasta: f.hasta, VendedorID: f.anaID,
	})
	require.NoError(t, err)

	eq(t, 50, out.Ingresos, "solo la venta viva de Ana")
	eq(t, 9, out.Comisiones, "comisión de Ana")
	assert.Equal(t, 0, out.NumServicios, "un servicio no tiene vendedor")
}

func TestReport_FiltroPorMetodoDePago(t *testing.T) {
	f := newFixture(t)

	out, err := f.reportUC.Build(context.Background(), repository.ReportFilter{
		Desde: f.desde, Hasta: f.hasta, MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)

	// venta 1 (50 efectivo) + servicio (25 efectivo); la venta con tarjeta queda fuera.
	eq(t, 75, out.Ingresos, "ingresos en efectivo")
	assert.Equal(t, 1, out.NumVentas)
	assert.Equal(t, 1, out.NumServicios)

	// El desglose por método cuadra con el ingreso filtrado.
	require.Len(t, out.PorMetodoPago, 1)
	eq(t, 75, out.PorMetodoPago[0].Total, "desglose de efectivo incluye el servicio")
}

func TestDashboard_SerieSemanalYMetricasDeHoy(t *testing.T) {
	f := newFixture(t)

	out, err := f.dashboardUC.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Semana, 7, "siempre 7 baldes, vacíos en cero")
	hoy := out.Semana[6]
	assert.Equal(t, 2, hoy.Ventas)
	eq(t, 195, hoy.Ingresos, "ingresos de hoy")

	// Días sin movimiento quedan en cero, no desaparecen.
	ayer := out.Semana[5]
	assert.Equal(t, 0, ayer.Ventas)
	assert.True(t, ayer.Ingresos.IsZero())

	eq(t, 195, out.Hoy.Ingresos, "métricas de hoy")
	eq(t, 14, out.Hoy.Comisiones, "misma fórmula de comisión que el reporte")
	eq(t, 66, out.Hoy.Utilidad, "utilidad de hoy")

	// Todo el movimiento de la fixture es de hoy, así que el mes coincide.
	eq(t, 195, out.Mes.Ingresos, "ingresos del mes")
	eq(t, 66, out.Mes.Utilidad, "utilidad del mes")
	assert.Equal(t, 2, out.Mes.NumVentas)
	assert.Equal(t, 0, out.CuentasAbiertas)
	assert.True(t, out.PorCobrar.IsZero())

	// El widget incluye stock <= 5 (umbral default), ordenado ascendente;
	// el producto con stock exactamente 5 también entra.
	require.Len(t, out.StockBajo, 2)
	assert.Equal(t, "VAL-1", out.StockBajo[0].Codigo)
	assert.Equal(t, 2, out.StockBajo[0].Stock)
	assert.Equal(t, "RIN-15", out.StockBajo[1].Codigo)
	assert.Equal(t, 5, out.StockBajo[1].Stock)
}
