package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceivableRequest body para una cuenta por cobrar manual
// (deuda no originada en una venta).
type CreateReceivableRequest struct {
	ClienteID        string          `json:"cliente_id"`
	Descripcion      string          `json:"descripcion"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
}

// PayReceivableRequest body para abonar a una cuenta por cobrar.
type PayReceivableRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// ReceivableResponse cuenta por cobrar con saldo derivado.
type ReceivableResponse struct {
	ID               string          `json:"id"`
	ClienteID        string          `json:"cliente_id"`
	VentaID          string          `json:"venta_id,omitempty"`
	Descripcion      string          `json:"descripcion,omitempty"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	MontoPagado      decimal.Decimal `json:"monto_pagado"`
	Restante         decimal.Decimal `json:"restante"`
	Estado           string          `json:"estado"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
}
