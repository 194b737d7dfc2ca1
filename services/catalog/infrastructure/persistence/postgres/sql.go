// Package postgres implements the catalog repositories against PostgreSQL.
package postgres

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
