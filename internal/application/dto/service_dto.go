package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest body para registrar un servicio de mano de obra.
type CreateServiceRequest struct {
	MecanicoID  string          `json:"mecanico_id"`
	Descripcion string          `json:"descripcion"`
	Valor       decimal.Decimal `json:"valor"`
	MetodoPago  string          `json:"metodo_pago"`
}

// ServiceResponse servicio en respuestas.
type ServiceResponse struct {
	ID          string          `json:"id"`
	MecanicoID  string          `json:"mecanico_id"`
	Descripcion string          `json:"descripcion"`
	Valor       decimal.Decimal `json:"valor"`
	MetodoPago  string          `json:"metodo_pago"`
	Fecha       time.Time       `json:"fecha"`
}
