package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration from migrationsPath.
// ErrNoChange is not an error; an already current schema is the normal case.
func RunMigrations(databaseURL, migrationsPath string, logger *slog.Logger) error {
	if migrationsPath == "" {
		return fmt.Errorf("migrations path is empty in configuration")
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("Failed to close migration source", "error", srcErr)
		}
		if dbErr != nil {
			logger.Warn("Failed to close migration database handle", "error", dbErr)
		}
	}()

	logger.Info("Applying database migrations...", "path", migrationsPath)
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema is up to date.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully.")
	return nil
}
