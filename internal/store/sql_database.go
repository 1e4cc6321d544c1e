package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/homenav/nav-server/internal/config"
	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/migrations"
)

// DB wraps the shared *sql.DB handle together with the pieces that differ
// between backends: the squirrel statement builder configured with the
// driver's placeholder format, the migration dialect, and the driver-specific
// unique-violation classifier.
type DB struct {
	*sql.DB

	builder           sq.StatementBuilderType
	dialect           migrations.Dialect
	isUniqueViolation func(error) bool
	logger            *logger.Logger
}

// NewConnect opens a database connection based on the DSN scheme: a
// postgres:// or postgresql:// URI selects the pgx backend, anything else is
// treated as the path of an embedded SQLite database file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema patches for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
