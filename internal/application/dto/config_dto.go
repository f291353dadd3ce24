package dto

// ConfigEntry par clave→valor de configuración de negocio.
type ConfigEntry struct {
	Clave string `json:"clave"`
	Valor string `json:"valor"`
}
