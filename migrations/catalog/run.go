// Command catalog applies the catalog and inventory schema migrations.
//
//	go run ./migrations/catalog
package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
	"github.com/ghuser/porcelarte/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), "catalog", cfg.DefinitionDatabaseURL, MigrationsFS, log); err != nil {
		log.Error("catalog migrations failed", "error", err)
		os.Exit(1)
	}
}
