package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

const (
	dashboardDias     = 7  // serie semanal: hoy y los 6 días anteriores
	dashboardTopStock = 10 // productos en el widget de reposición
)

// ConfigSource parámetros de negocio que el dashboard y los reportes leen
// de la configuración (con defaults del dominio si no hay valor).
type ConfigSource interface {
	TasaComisionDefault(ctx context.Context) decimal.Decimal
	UmbralStockBajo(ctx context.Context) int
}

// DashboardUseCase genera el resumen del día y del mes más el contexto de
// la semana.
//
// Fuente de datos: ReportsRepository (consultas read-only); nunca muta el
// libro de ventas. Las ventas anuladas no aparecen en ningún agregado.
type DashboardUseCase struct {
	reportsRepo repository.ReportsRepository
	recRepo     repository.ReceivableRepository
	config      ConfigSource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportsRepo repository.ReportsRepository, recRepo repository.ReceivableRepository, config ConfigSource) *DashboardUseCase {
	return &DashboardUseCase{reportsRepo: reportsRepo, recRepo: recRepo, config: config}
}

// GetSummary construye el DashboardResponse.
//
// Seis llamadas en paralelo:
//  1. SaleEconomics(semana)   → métricas de hoy + serie semanal
//  2. ServicesInRange(semana) → ingresos de mano de obra
//  3. SaleEconomics(mes)      → métricas del mes en curso
//  4. ServicesInRange(mes)    → servicios del mes en curso
//  5. LowStock(umbral)        → widget de reposición
//  6. ListPending()           → cuentas abiertas y total por cobrar
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	desde := hoy.AddDate(0, 0, -(dashboardDias - 1))
	hasta := hoy.AddDate(0, 0, 1)
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type salesResult struct {
		rows []repository.SaleEconomicsRow
		err  error
	}
	type servicesResult struct {
		servicios []*entity.Service
		err       error
	}
	type stockResult struct {
		productos []*entity.Product
		err       error
	}
	type pendingResult struct {
		cuentas []*entity.Receivable
		err     error
	}

	salesCh := make(chan salesResult, 1)
	servicesCh := make(chan servicesResult, 1)
	monthSalesCh := make(chan salesResult, 1)
	monthServicesCh := make(chan servicesResult, 1)
	stockCh := make(chan stockResult, 1)
	pendingCh := make(chan pendingResult, 1)

	go func() {
		rows, err := uc.reportsRepo.SaleEconomics(ctx, repository.ReportFilter{Desde: desde, Hasta: hasta})
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		servicios, err := uc.reportsRepo.ServicesInRange(ctx, desde, hasta)
		servicesCh <- servicesResult{servicios, err}
	}()
	go func() {
		rows, err := uc.reportsRepo.SaleEconomics(ctx, repository.ReportFilter{Desde: inicioMes, Hasta: hasta})
		monthSalesCh <- salesResult{rows, err}
	}()
	go func() {
		servicios, err := uc.reportsRepo.ServicesInRange(ctx, inicioMes, hasta)
		monthServicesCh <- servicesResult{servicios, err}
	}()
	go func() {
		productos, err := uc.reportsRepo.LowStock(ctx, uc.config.UmbralStockBajo(ctx), dashboardTopStock)
		stockCh <- stockResult{productos, err}
	}()
	go func() {
		cuentas, err := uc.recRepo.ListPending()
		pendingCh <- pendingResult{cuentas, err}
	}()

	sales := <-salesCh
	services := <-servicesCh
	monthSales := <-monthSalesCh
	monthServices := <-monthServicesCh
	stock := <-stockCh
	pending := <-pendingCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: economía de la semana: %w", sales.err)
	}
	if services.err != nil {
		return nil, fmt.Errorf("dashboard: servicios de la semana: %w", services.err)
	}
	if monthSales.err != nil {
		return nil, fmt.Errorf("dashboard: economía del mes: %w", monthSales.err)
	}
	if monthServices.err != nil {
		return nil, fmt.Errorf("dashboard: servicios del mes: %w", monthServices.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", stock.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: cuentas por cobrar: %w", pending.err)
	}

	tasaDefault := uc.config.TasaComisionDefault(ctx)

	// ── Serie semanal: un balde por día, los vacíos quedan en cero ──────────
	rowsPorDia := make(map[string][]repository.SaleEconomicsRow)
	for _, row := range sales.rows {
		k := row.Fecha.In(now.Location()).Format("2006-01-02")
		rowsPorDia[k] = append(rowsPorDia[k], row)
	}
	serviciosPorDia := make(map[string][]*entity.Service)
	for _, s := range services.servicios {
		k := s.Fecha.In(now.Location()).Format("2006-01-02")
		serviciosPorDia[k] = append(serviciosPorDia[k], s)
	}

	semana := make([]dto.DayBucket, 0, dashboardDias)
	var metricasHoy dto.DayMetrics
	for i := 0; i < dashboardDias; i++ {
		dia := desde.AddDate(0, 0, i)
		k := dia.Format("2006-01-02")
		t := foldEconomics(rowsPorDia[k], serviciosPorDia[k], tasaDefault)
		semana = append(semana, dto.DayBucket{
			Fecha:    k,
			Ingresos: t.Ingresos,
			Utilidad: t.Utilidad(),
			Ventas:   t.NumVentas,
		})
		if dia.Equal(hoy) {
			metricasHoy = dto.DayMetrics{
				Ingresos:     t.Ingresos,
				Costo:        t.Costo,
				Comisiones:   t.Comisiones,
				ManoObra:     t.ManoObra,
				Utilidad:     t.Utilidad(),
				NumVentas:    t.NumVentas,
				NumServicios: t.NumServicios,
			}
		}
	}

	// ── Mes calendario en curso ─────────────────────────────────────────────
	tMes := foldEconomics(monthSales.rows, monthServices.servicios, tasaDefault)
	metricasMes := dto.DayMetrics{
		Ingresos:     tMes.Ingresos,
		Costo:        tMes.Costo,
		Comisiones:   tMes.Comisiones,
		ManoObra:     tMes.ManoObra,
		Utilidad:     tMes.Utilidad(),
		NumVentas:    tMes.NumVentas,
		NumServicios: tMes.NumServicios,
	}

	// ── Cuentas por cobrar abiertas ─────────────────────────────────────────
	porCobrar := decimal.Zero
	for _, rec := range pending.cuentas {
		porCobrar = porCobrar.Add(rec.Restante())
	}

	stockBajo := make([]dto.LowStockItem, 0, len(stock.productos))
	for _, p := range stock.productos {
		stockBajo = append(stockBajo, dto.LowStockItem{
			ProductoID:  p.ID,
			Codigo:      p.Codigo,
			Descripcion: p.Descripcion,
			Stock:       p.Stock,
		})
	}

	return &dto.DashboardResponse{
		Hoy:             metricasHoy,
		Mes:             metricasMes,
		Semana:          semana,
		StockBajo:       stockBajo,
		CuentasAbiertas: len(pending.cuentas),
		PorCobrar:       porCobrar,
	}, nil
}
