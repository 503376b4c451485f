package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations применяет *.up.sql в лексикографическом порядке имен.
// Скрипты идемпотентны, поэтому повторный запуск при старте безопасен.
func RunMigrations(ctx context.Context, db DBTX, logger *zap.Logger) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}

	for _, name := range names {
		content, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		base := path.Base(name)
		if _, err := db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", base, err)
		}
		logger.Info("migration applied", zap.String("name", base))
	}

	return nil
}
