package dto

import "github.com/shopspring/decimal"

// SaveCustomerRequest body para crear o editar un cliente.
type SaveCustomerRequest struct {
	Nombre        string          `json:"nombre"`
	Telefono      string          `json:"telefono,omitempty"`
	Direccion     string          `json:"direccion,omitempty"`
	LimiteCredito decimal.Decimal `json:"limite_credito"`
}

// CustomerResponse cliente en respuestas; SaldoPendiente suma las cuentas
// por cobrar no saldadas.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Telefono       string          `json:"telefono,omitempty"`
	Direccion      string          `json:"direccion,omitempty"`
	LimiteCredito  decimal.Decimal `json:"limite_credito"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Activo         bool            `json:"activo"`
}
