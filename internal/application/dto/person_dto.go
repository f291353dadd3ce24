package dto

import "github.com/shopspring/decimal"

// SavePersonRequest body para crear o editar personal.
// TasaComision nula usa la tasa global configurada.
type SavePersonRequest struct {
	Nombre       string           `json:"nombre"`
	Rol          string           `json:"rol"`
	TasaComision *decimal.Decimal `json:"tasa_comision,omitempty"`
}

// PersonResponse miembro del personal en respuestas.
type PersonResponse struct {
	ID           string           `json:"id"`
	Nombre       string           `json:"nombre"`
	Rol          string           `json:"rol"`
	TasaComision *decimal.Decimal `json:"tasa_comision,omitempty"`
	Activo       bool             `json:"activo"`
}
