// Package migrations holds the schema of the connector database. The SQL
// files are embedded so the service can create its tables at startup.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies every pending migration. Tables are created with IF NOT EXISTS,
// so running against a database bootstrapped elsewhere is safe.
func Up(db *sql.DB) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
