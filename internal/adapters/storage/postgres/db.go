package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations
var migrationsFS embed.FS

const (
	SchemaCatalog = "catalog"
	SchemaRecords = "records"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenAndMigrate = Open + Migrate; cierra el pool si falla la migración.
func OpenAndMigrate(dsn, schema string) (*sql.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := Migrate(db, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate aplica las migraciones embebidas del esquema. Cada servicio usa su
// propia tabla de control para poder compartir base si hace falta.
func Migrate(db *sql.DB, schema string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+schema)
	if err != nil {
		return fmt.Errorf("postgres: migrations source %q: %w", schema, err)
	}
	defer src.Close()

	drv, err := migratepgx.WithInstance(db, &migratepgx.Config{
		MigrationsTable: "schema_migrations_" + schema,
	})
	if err != nil {
		return fmt.Errorf("postgres: migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", drv)
	if err != nil {
		return fmt.Errorf("postgres: migrate init: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: migrate up %q: %w", schema, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
