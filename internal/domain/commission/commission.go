// Package commission calcula la comisión del vendedor sobre una venta.
//
// Es la ÚNICA implementación de la fórmula: tanto el registro de ventas como
// los reportes históricos y el dashboard delegan aquí. La base de comisión es
// el margen neto de mercancía (subtotal menos descuento, menos costo); la mano
// de obra y el recargo quedan fuera de la base.
package commission

import "github.com/shopspring/decimal"

// DefaultRate es la tasa global cuando la configuración no define otra (30%).
var DefaultRate = decimal.New(3, -1)

// EffectiveRate resuelve la tasa a aplicar: el override fijo del vendedor si
// existe, si no la tasa por defecto configurada.
func EffectiveRate(override *decimal.Decimal, defaultRate decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return defaultRate
}

// Base devuelve la base de comisión: (subtotal − descuento) − costo de mercancía.
// Puede ser negativa (venta bajo costo); Calculate la trata como cero.
func Base(subtotal, descuentoMonto, costoMercancia decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(descuentoMonto).Sub(costoMercancia)
}

// Calculate devuelve la comisión: base × tasa, nunca negativa.
func Calculate(subtotal, descuentoMonto, costoMercancia, rate decimal.Decimal) decimal.Decimal {
	base := Base(subtotal, descuentoMonto, costoMercancia)
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.Mul(rate)
}
