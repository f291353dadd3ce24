// Package sqlite implementa los puertos de persistencia sobre SQLite
// (modernc.org/sqlite, driver puro Go) vía sqlx.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open abre la base SQLite en dsn (":memory:" para tests) y aplica los PRAGMA
// del modo single-writer: una sola conexión, WAL y claves foráneas activas.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una única conexión: serializa todas las escrituras y mantiene viva la
	// base en memoria durante los tests.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA foreign_keys = ON`,
		`PRAGMA busy_timeout = 5000`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return db, nil
}
