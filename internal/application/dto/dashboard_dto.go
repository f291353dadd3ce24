package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas del día y del mes más contexto de la semana.
type DashboardResponse struct {
	Hoy             DayMetrics      `json:"hoy"`
	Mes             DayMetrics      `json:"mes"`    // mes calendario en curso
	Semana          []DayBucket     `json:"semana"` // 7 días, el último es hoy
	StockBajo       []LowStockItem  `json:"stock_bajo"`
	CuentasAbiertas int             `json:"cuentas_abiertas"`
	PorCobrar       decimal.Decimal `json:"por_cobrar"`
}

// DayMetrics agregados financieros de un día.
type DayMetrics struct {
	Ingresos     decimal.Decimal `json:"ingresos"`
	Costo        decimal.Decimal `json:"costo"`
	Comisiones   decimal.Decimal `json:"comisiones"`
	ManoObra     decimal.Decimal `json:"mano_obra"`
	Utilidad     decimal.Decimal `json:"utilidad"`
	NumVentas    int             `json:"num_ventas"`
	NumServicios int             `json:"num_servicios"`
}

// DayBucket un día de la serie semanal; los días sin movimiento van en cero.
type DayBucket struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Ingresos decimal.Decimal `json:"ingresos"`
	Utilidad decimal.Decimal `json:"utilidad"`
	Ventas   int             `json:"ventas"`
}

// LowStockItem producto con stock en o bajo el umbral de reposición.
type LowStockItem struct {
	ProductoID  string `json:"producto_id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Stock       int    `json:"stock"`
}
