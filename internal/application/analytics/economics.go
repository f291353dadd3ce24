// Package analytics contiene los casos de uso de dashboard y reportes
// financieros. Todos los agregados monetarios se repliegan en Go con
// decimal; la comisión de cada venta se deriva siempre con
// commission.Calculate, nunca con una fórmula local.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain/commission"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

// rangeTotals agregados de un rango: ventas más servicios.
// Utilidad = Ingresos - Costo - Comisiones - ManoObra.
type rangeTotals struct {
	Ingresos     decimal.Decimal
	Costo        decimal.Decimal
	Comisiones   decimal.Decimal
	ManoObra     decimal.Decimal
	NumVentas    int
	NumServicios int
	PorVendedor  []dto.SellerBreakdown
	PorMetodo    []dto.MethodBreakdown
}

func (t rangeTotals) Utilidad() decimal.Decimal {
	return t.Ingresos.Sub(t.Costo).Sub(t.Comisiones).Sub(t.ManoObra)
}

// foldEconomics repliega filas de economía de ventas y servicios en los
// agregados del rango. El ingreso suma totales de venta y valores de
// servicio; la mano de obra cuenta como ingreso y como gasto (se paga al
// mecánico), así que se neta sola en la utilidad.
func foldEconomics(rows []repository.SaleEconomicsRow, servicios []*entity.Service, tasaDefault decimal.Decimal) rangeTotals {
	t := rangeTotals{
		Ingresos:   decimal.Zero,
		Costo:      decimal.Zero,
		Comisiones: decimal.Zero,
		ManoObra:   decimal.Zero,
	}
	vendedores := make(map[string]*dto.SellerBreakdown)
	metodos := make(map[string]*dto.MethodBreakdown)

	for _, row := range rows {
		tasa := commission.EffectiveRate(row.TasaVendedor, tasaDefault)
		comision := commission.Calculate(row.Subtotal, row.DescuentoMonto, row.CostoMercancia, tasa)

		t.Ingresos = t.Ingresos.Add(row.Total)
		t.Costo = t.Costo.Add(row.CostoMercancia)
		t.Comisiones = t.Comisiones.Add(comision)
		t.ManoObra = t.ManoObra.Add(row.ManoObra)
		t.NumVentas++

		v, ok := vendedores[row.VendedorID]
		if !ok {
			v = &dto.SellerBreakdown{
				VendedorID: row.VendedorID,
				Nombre:     row.VendedorNombre,
				Vendido:    decimal.Zero,
				Comision:   decimal.Zero,
			}
			vendedores[row.VendedorID] = v
		}
		v.NumVentas++
		v.Vendido = v.Vendido.Add(row.Total)
		v.Comision = v.Comision.Add(comision)

		m, ok := metodos[row.MetodoPago]
		if !ok {
			m = &dto.MethodBreakdown{Metodo: row.MetodoPago, Total: decimal.Zero}
			metodos[row.MetodoPago] = m
		}
		m.Ventas++
		m.Total = m.Total.Add(row.Total)
	}

	for _, s := range servicios {
		t.Ingresos = t.Ingresos.Add(s.Valor)
		t.ManoObra = t.ManoObra.Add(s.Valor)
		t.NumServicios++

		// El valor del servicio entra al total de su método de cobro, sin
		// contar como venta.
		m, ok := metodos[s.MetodoPago]
		if !ok {
			m = &dto.MethodBreakdown{Metodo: s.MetodoPago, Total: decimal.Zero}
			metodos[s.MetodoPago] = m
		}
		m.Total = m.Total.Add(s.Valor)
	}

	t.PorVendedor = make([]dto.SellerBreakdown, 0, len(vendedores))
	for _, v := range vendedores {
		t.PorVendedor = append(t.PorVendedor, *v)
	}
	sort.Slice(t.PorVendedor, func(i, j int) bool {
		return t.PorVendedor[i].Vendido.GreaterThan(t.PorVendedor[j].Vendido)
	})

	t.PorMetodo = make([]dto.MethodBreakdown, 0, len(metodos))
	for _, m := range metodos {
		t.PorMetodo = append(t.PorMetodo, *m)
	}
	sort.Slice(t.PorMetodo, func(i, j int) bool {
		return t.PorMetodo[i].Metodo < t.PorMetodo[j].Metodo
	})

	return t
}
