package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/commission"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// ReportUseCase arma el reporte financiero de un rango de fechas con la
// misma derivación de comisión que usa el dashboard.
type ReportUseCase struct {
	reportsRepo repository.ReportsRepository
	config      ConfigSource
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportsRepo repository.ReportsRepository, config ConfigSource) *ReportUseCase {
	return &ReportUseCase{reportsRepo: reportsRepo, config: config}
}

// Build genera el reporte para [desde, hasta) con filtros opcionales.
// Los servicios de mano de obra solo entran cuando el reporte no filtra
// por vendedor ni por cliente: un servicio no tiene ninguno de los dos.
func (uc *ReportUseCase) Build(ctx context.Context, f repository.ReportFilter) (*dto.ReportResponse, error) {
	if !f.Hasta.After(f.Desde) {
		return nil, fmt.Errorf("%w: rango de fechas vacío", domain.ErrInvalidInput)
	}

	rows, err := uc.reportsRepo.SaleEconomics(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte: economía de ventas: %w", err)
	}

	var servicios []*entity.Service
	if f.VendedorID == "" && f.ClienteID == "" {
		servicios, err = uc.reportsRepo.ServicesInRange(ctx, f.Desde, f.Hasta)
		if err != nil {
			return nil, fmt.Errorf("reporte: servicios: %w", err)
		}
		if f.MetodoPago != "" {
			filtrados := servicios[:0]
			for _, s := range servicios {
				if s.MetodoPago == f.MetodoPago {
					filtrados = append(filtrados, s)
				}
			}
			servicios = filtrados
		}
	}

	tasaDefault := uc.config.TasaComisionDefault(ctx)
	t := foldEconomics(rows, servicios, tasaDefault)

	const dia = "2006-01-02"
	ventas := make([]dto.ReportSaleRow, 0, len(rows))
	for _, row := range rows {
		tasa := commission.EffectiveRate(row.TasaVendedor, tasaDefault)
		ventas = append(ventas, dto.ReportSaleRow{
			VentaID:    row.VentaID,
			Fecha:      row.Fecha.Format(dia),
			Vendedor:   row.VendedorNombre,
			MetodoPago: row.MetodoPago,
			Total:      row.Total,
			Comision:   commission.Calculate(row.Subtotal, row.DescuentoMonto, row.CostoMercancia, tasa),
		})
	}
	return &dto.ReportResponse{
		Desde:         f.Desde.Format(dia),
		Hasta:         f.Hasta.Add(-time.Nanosecond).Format(dia),
		Ingresos:      t.Ingresos,
		Costo:         t.Costo,
		Comisiones:    t.Comisiones,
		GastoManoObra: t.ManoObra,
		Utilidad:      t.Utilidad(),
		NumVentas:     t.NumVentas,
		NumServicios:  t.NumServicios,
		PorVendedor:   t.PorVendedor,
		PorMetodoPago: t.PorMetodo,
		Ventas:        ventas,
	}, nil
}
