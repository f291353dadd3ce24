package sqlite

import "strings"

// isUniqueViolation detecta la violación de índice único de SQLite.
// modernc.org/sqlite no exporta códigos estables para esto, así que se
// inspecciona el mensaje ("UNIQUE constraint failed: tabla.columna").
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
