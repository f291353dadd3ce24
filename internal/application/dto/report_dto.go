package dto

import "github.com/shopspring/decimal"

// ReportRequest filtros query para GET /api/reportes.
// Desde/Hasta en YYYY-MM-DD; Hasta es inclusivo.
type ReportRequest struct {
	Desde      string `query:"desde"`
	Hasta      string `query:"hasta"`
	VendedorID string `query:"vendedor_id"`
	MetodoPago string `query:"metodo_pago"`
	ClienteID  string `query:"cliente_id"`
}

// ReportResponse reporte financiero de un rango de fechas.
// Utilidad = Ingresos - Costo - Comisiones - GastoManoObra.
type ReportResponse struct {
	Desde         string            `json:"desde"`
	Hasta         string            `json:"hasta"`
	Ingresos      decimal.Decimal   `json:"ingresos"`
	Costo         decimal.Decimal   `json:"costo"`
	Comisiones    decimal.Decimal   `json:"comisiones"`
	GastoManoObra decimal.Decimal   `json:"gasto_mano_obra"`
	Utilidad      decimal.Decimal   `json:"utilidad"`
	NumVentas     int               `json:"num_ventas"`
	NumServicios  int               `json:"num_servicios"`
	PorVendedor   []SellerBreakdown `json:"por_vendedor"`
	PorMetodoPago []MethodBreakdown `json:"por_metodo_pago"`
	Ventas        []ReportSaleRow   `json:"ventas"`
}

// ReportSaleRow una venta del rango con su comisión devengada, en orden
// cronológico.
type ReportSaleRow struct {
	VentaID    string          `json:"venta_id"`
	Fecha      string          `json:"fecha"` // YYYY-MM-DD
	Vendedor   string          `json:"vendedor"`
	MetodoPago string          `json:"metodo_pago"`
	Total      decimal.Decimal `json:"total"`
	Comision   decimal.Decimal `json:"comision"`
}

// SellerBreakdown ventas y comisión devengada por vendedor.
type SellerBreakdown struct {
	VendedorID string          `json:"vendedor_id"`
	Nombre     string          `json:"nombre"`
	NumVentas  int             `json:"num_ventas"`
	Vendido    decimal.Decimal `json:"vendido"`
	Comision   decimal.Decimal `json:"comision"`
}

// MethodBreakdown total cobrado por método de pago. Total incluye ventas y
// servicios cobrados con el método; Ventas cuenta solo las ventas.
type MethodBreakdown struct {
	Metodo string          `json:"metodo"`
	Total  decimal.Decimal `json:"total"`
	Ventas int             `json:"ventas"`
}
