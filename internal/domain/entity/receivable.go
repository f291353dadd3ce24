package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta por cobrar. "pagada" se deriva del saldo restante.
const (
	ReceivablePendiente = "pendiente"
	ReceivablePagada    = "pagada"
)

// ToleranciaPago es la tolerancia de redondeo monetario (±0.01): un saldo
// restante menor o igual a esto se considera saldado.
var ToleranciaPago = decimal.New(1, -2)

// Receivable es una deuda pendiente de un cliente (cuenta por cobrar),
// opcionalmente ligada a la venta que la originó.
//
// Invariante: 0 ≤ MontoPagado ≤ MontoTotal (con tolerancia de redondeo).
// MontoPagado solo crece, vía abonos.
type Receivable struct {
	ID               string          `db:"id"`
	ClienteID        string          `db:"cliente_id"`
	VentaID          *string         `db:"venta_id"`
	Descripcion      string          `db:"descripcion"`
	MontoTotal       decimal.Decimal `db:"monto_total"`
	MontoPagado      decimal.Decimal `db:"monto_pagado"`
	FechaCreacion    time.Time       `db:"fecha_creacion"`
	FechaVencimiento *time.Time      `db:"fecha_vencimiento"`
	Estado           string          `db:"estado"`
}

// Restante devuelve el saldo pendiente de pago.
func (r *Receivable) Restante() decimal.Decimal {
	return r.MontoTotal.Sub(r.MontoPagado)
}

// Saldada indica si la deuda quedó cubierta dentro de la tolerancia.
func (r *Receivable) Saldada() bool {
	return r.Restante().LessThanOrEqual(ToleranciaPago)
}
