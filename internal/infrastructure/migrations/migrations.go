// Package migrations aplica el esquema embebido con golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/canvacrancha/badge-api/pkg/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// UpPostgres aplica las migraciones pendientes sobre PostgreSQL.
// db debe ser una conexión database/sql (driver "pgx" de pgx/v5/stdlib).
func UpPostgres(db *sql.DB, log *logger.Logger) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("crear driver de migración postgres: %w", err)
	}
	// libera la conexión reservada por el driver; db queda abierto
	defer driver.Close()
	return up("postgres", driver, log)
}

// UpSQLite aplica las migraciones pendientes sobre SQLite.
// No se cierra el driver: cerrarlo cerraría también db, que comparten los repositorios.
func UpSQLite(db *sql.DB, log *logger.Logger) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("crear driver de migración sqlite: %w", err)
	}
	return up("sqlite", driver, log)
}

func up(dir string, driver database.Driver, log *logger.Logger) error {
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("cargar migraciones %s: %w", dir, err)
	}
	m, err := migrate.NewWithInstance("iofs", source, dir, driver)
	if err != nil {
		return fmt.Errorf("inicializar migración: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ejecutar migración: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		log.Warn().Uint("version", version).Str("driver", dir).Msg("migración en estado dirty")
	} else {
		log.Info().Uint("version", version).Str("driver", dir).Msg("migraciones aplicadas")
	}
	return nil
}
