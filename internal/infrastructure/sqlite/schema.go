package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Bootstrap crea las tablas si no existen. Los montos se guardan como TEXT
// (decimal exacto); las fechas como DATETIME; los booleanos como INTEGER 0/1.
func Bootstrap(db *sqlx.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS productos (
	id            TEXT PRIMARY KEY,
	codigo        TEXT NOT NULL UNIQUE,
	descripcion   TEXT NOT NULL,
	costo         TEXT NOT NULL,
	precio_venta  TEXT NOT NULL,
	stock         INTEGER NOT NULL DEFAULT 0,
	activo        INTEGER NOT NULL DEFAULT 1,
	created_at    DATETIME NOT NULL,
	updated_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS personas (
	id             TEXT PRIMARY KEY,
	nombre         TEXT NOT NULL,
	rol            TEXT NOT NULL,
	tasa_comision  TEXT,
	activo         INTEGER NOT NULL DEFAULT 1,
	created_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS usuarios (
	id             TEXT PRIMARY KEY,
	username       TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	rol            TEXT NOT NULL,
	activo         INTEGER NOT NULL DEFAULT 1,
	created_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS clientes (
	id              TEXT PRIMARY KEY,
	nombre          TEXT NOT NULL,
	telefono        TEXT NOT NULL DEFAULT '',
	direccion       TEXT NOT NULL DEFAULT '',
	limite_credito  TEXT NOT NULL DEFAULT '0',
	activo          INTEGER NOT NULL DEFAULT 1,
	created_at      DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS ventas (
	id                TEXT PRIMARY KEY,
	vendedor_id       TEXT NOT NULL REFERENCES personas(id),
	mecanico_id       TEXT REFERENCES personas(id),
	cliente_id        TEXT REFERENCES clientes(id),
	subtotal          TEXT NOT NULL,
	mano_obra         TEXT NOT NULL,
	recargo           TEXT NOT NULL,
	descuento_tipo    TEXT NOT NULL,
	descuento_valor   TEXT NOT NULL,
	descuento_monto   TEXT NOT NULL,
	total             TEXT NOT NULL,
	metodo_pago       TEXT NOT NULL,
	fecha             DATETIME NOT NULL,
	anulada           INTEGER NOT NULL DEFAULT 0,
	motivo_anulacion  TEXT,
	anulada_en        DATETIME,
	created_at        DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ventas_fecha ON ventas(fecha);

CREATE TABLE IF NOT EXISTS venta_items (
	id               TEXT PRIMARY KEY,
	venta_id         TEXT NOT NULL REFERENCES ventas(id),
	producto_id      TEXT NOT NULL REFERENCES productos(id),
	cantidad         INTEGER NOT NULL,
	precio_unitario  TEXT NOT NULL,
	costo_unitario   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_venta_items_venta ON venta_items(venta_id);

CREATE TABLE IF NOT EXISTS venta_pagos (
	id        TEXT PRIMARY KEY,
	venta_id  TEXT NOT NULL REFERENCES ventas(id),
	metodo    TEXT NOT NULL,
	monto     TEXT NOT NULL,
	detalle   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_venta_pagos_venta ON venta_pagos(venta_id);

CREATE TABLE IF NOT EXISTS servicios (
	id           TEXT PRIMARY KEY,
	mecanico_id  TEXT NOT NULL REFERENCES personas(id),
	descripcion  TEXT NOT NULL,
	valor        TEXT NOT NULL,
	metodo_pago  TEXT NOT NULL,
	fecha        DATETIME NOT NULL,
	created_at   DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_servicios_fecha ON servicios(fecha);

CREATE TABLE IF NOT EXISTS cuentas_cobrar (
	id                 TEXT PRIMARY KEY,
	cliente_id         TEXT NOT NULL REFERENCES clientes(id),
	venta_id           TEXT REFERENCES ventas(id),
	descripcion        TEXT NOT NULL DEFAULT '',
	monto_total        TEXT NOT NULL,
	monto_pagado       TEXT NOT NULL DEFAULT '0',
	fecha_creacion     DATETIME NOT NULL,
	fecha_vencimiento  DATETIME,
	estado             TEXT NOT NULL DEFAULT 'pendiente'
);
CREATE INDEX IF NOT EXISTS idx_cuentas_cliente ON cuentas_cobrar(cliente_id);

CREATE TABLE IF NOT EXISTS producto_historial (
	id               TEXT PRIMARY KEY,
	producto_id      TEXT NOT NULL REFERENCES productos(id),
	precio_anterior  TEXT NOT NULL,
	precio_nuevo     TEXT NOT NULL,
	stock_anterior   INTEGER NOT NULL,
	stock_nuevo      INTEGER NOT NULL,
	tipo             TEXT NOT NULL,
	fecha            DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_historial_producto ON producto_historial(producto_id);

CREATE TABLE IF NOT EXISTS configuracion (
	clave  TEXT PRIMARY KEY,
	valor  TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}
