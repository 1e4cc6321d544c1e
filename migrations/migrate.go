// Package migrations embeds the forward-only SQL schema patches and applies
// them with goose. There are no down-migrations: schema evolution is strictly
// additive, matching the one-shot copy-and-rename scripts the database grew
// up with.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialect selects which flavor of the embedded migrations to apply.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// dir maps a dialect to its embedded migrations directory.
func (d Dialect) dir() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Migrate applies all pending schema patches to db using the given dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
