// Package migrator applies the embedded goose migrations of a schema.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ghuser/porcelarte/pkg/logger"
)

// RunMigrations applies every pending migration in files and logs the schema
// version reached. name labels the log lines (e.g. "catalog").
func RunMigrations(ctx context.Context, name, dbURL string, files fs.FS, log logger.Logger) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open %s database: %w", name, err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply %s migrations: %w", name, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read %s schema version: %w", name, err)
	}
	log.InfoContext(ctx, "migrations applied", "schema", name, "version", version)
	return nil
}
