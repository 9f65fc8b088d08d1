package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/ports/repositories"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/platform/config"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/repositories/database/pgsql"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/repositories/database/sqlite"
	"github.com/GabrielVilchis-215460/nextjs-practice/pkg/database"
)

// postgresURL applies the TLS requirement to the configured database URL.
func (a *app) postgresURL() (string, error) {
	if !a.cfg.RequireTLS {
		return a.cfg.DatabaseURL, nil
	}
	return database.RequireTLS(a.cfg.DatabaseURL)
}

// openRepositories opens the configured storage and returns its repositories
// plus the function that releases it.
func (a *app) openRepositories(ctx context.Context) (portsrepo.RepositoryProvider, func(), error) {
	switch a.cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.Open(a.cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		a.logger.Info("Using SQLite storage", slog.String("path", a.cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(store), func() {
			if err := store.Close(); err != nil {
				a.logger.Error("Error closing SQLite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.DriverPostgres:
		databaseURL, err := a.postgresURL()
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, databaseURL, a.cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		a.logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil
	}

	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown storage driver %q", a.cfg.StorageDriver)
}

// migrate applies Postgres migrations in direction. SQLite applies its schema on open.
func (a *app) migrate(direction database.MigrationDirection) error {
	if a.cfg.StorageDriver != config.DriverPostgres {
		a.logger.Info("Skipping migrations for storage driver", slog.String("driver", a.cfg.StorageDriver))
		return nil
	}

	databaseURL, err := a.postgresURL()
	if err != nil {
		return err
	}

	a.logger.Info("Running database migrations...", slog.String("direction", string(direction)))
	changed, err := database.RunMigrations(databaseURL, a.cfg.MigrationsPath, direction)
	if err != nil {
		return err
	}
	if changed {
		a.logger.Info("Database migrations applied successfully.")
	} else {
		a.logger.Info("No new migrations to apply.")
	}
	return nil
}
