package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest body para crear o editar un producto del catálogo.
type SaveProductRequest struct {
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Costo       decimal.Decimal `json:"costo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Costo       decimal.Decimal `json:"costo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Stock       int             `json:"stock"`
	Activo      bool            `json:"activo"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductHistoryResponse entrada del historial de un producto.
type ProductHistoryResponse struct {
	ID             string          `json:"id"`
	PrecioAnterior decimal.Decimal `json:"precio_anterior"`
	PrecioNuevo    decimal.Decimal `json:"precio_nuevo"`
	StockAnterior  int             `json:"stock_anterior"`
	StockNuevo     int             `json:"stock_nuevo"`
	Tipo           string          `json:"tipo"`
	Fecha          time.Time       `json:"fecha"`
}

// ListProductsRequest filtros query para GET /api/productos.
type ListProductsRequest struct {
	Search string `query:"q"`
	PageRequest
}
