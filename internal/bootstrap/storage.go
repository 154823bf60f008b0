package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/adapters/storage/sqlite"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/animals"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
)

// openDB: Postgres si hay DSN, si no SQLite en Path. Ambos con migraciones aplicadas.
func openDB(ctx context.Context, st config.Storage, schema string, log logger.Logger) (*sql.DB, bool, error) {
	if st.UsePostgres() {
		db, err := pg.OpenAndMigrate(st.DSN, schema)
		if err != nil {
			return nil, false, err
		}
		log.Info("storage ready", map[string]any{"driver": "postgres", "schema": schema})
		return db, true, nil
	}

	db, err := sqlite.Open(ctx, st.Path, schema)
	if err != nil {
		return nil, false, err
	}
	log.Info("storage ready", map[string]any{"driver": "sqlite", "path": st.Path, "schema": schema})
	return db, false, nil
}

// OpenCatalogStore abre el almacén de animales y siembra el catálogo inicial si está vacío.
func OpenCatalogStore(ctx context.Context, st config.Storage, log logger.Logger) (animals.Repository, func() error, error) {
	db, isPG, err := openDB(ctx, st, sqlite.SchemaCatalog, log)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog storage: %w", err)
	}

	var repo animals.Repository
	if isPG {
		repo = pg.NewAnimalsRepo(db)
	} else {
		repo = sqlite.NewAnimalsRepo(db)
	}

	n, err := animals.SeedIfEmpty(ctx, repo, animals.DefaultCatalog())
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("catalog seed: %w", err)
	}
	if n > 0 {
		log.Info("catalog seeded", map[string]any{"animals": n})
	}

	return repo, db.Close, nil
}

func OpenRecordsStore(ctx context.Context, st config.Storage, log logger.Logger) (adoptions.Repository, func() error, error) {
	db, isPG, err := openDB(ctx, st, sqlite.SchemaRecords, log)
	if err != nil {
		return nil, nil, fmt.Errorf("records storage: %w", err)
	}

	if isPG {
		return pg.NewAdoptionsRepo(db), db.Close, nil
	}
	return sqlite.NewAdoptionsRepo(db), db.Close, nil
}
