package repository

// Claves conocidas de la tabla configuracion.
const (
	ConfigTasaComision    = "tasa_comision_default"
	ConfigImpresora       = "impresora_default"
	ConfigUmbralStockBajo = "umbral_stock_bajo"
)

// ConfigRepository almacén clave→valor de configuración de negocio.
type ConfigRepository interface {
	// Get devuelve "" (sin error) si la clave no existe.
	Get(clave string) (string, error)
	Set(clave, valor string) error
}
