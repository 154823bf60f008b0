package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"pet-adoption/internal/platform/logger"
)

// Log: mismas variables que logger.NewFromEnv.
type Log struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
	App    string `env:"APP_NAME"`
}

func (l Log) Options() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(l.Level),
		Format: logger.ParseFormat(l.Format),
		App:    l.App,
	}
}

// Storage: si DSN viene, se usa Postgres; si no, SQLite en Path.
type Storage struct {
	Path string `env:"DATABASE_PATH"`
	DSN  string `env:"DB_DSN"`
}

func (s Storage) UsePostgres() bool {
	return strings.TrimSpace(s.DSN) != ""
}

type Server struct {
	Port            string        `env:"PORT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	AllowedOrigin   string        `env:"CORS_ORIGIN,default=*"`
}

func (s Server) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(s.Port), ":")
}

type Catalog struct {
	Server  Server
	Storage Storage
	Log     Log

	RecordsURL     string        `env:"RECORDS_URL,default=http://localhost:5000"`
	RecordsTimeout time.Duration `env:"RECORDS_TIMEOUT,default=10s"`
}

type Records struct {
	Server  Server
	Storage Storage
	Log     Log

	NATSURL     string `env:"NATS_URL"`
	NATSSubject string `env:"NATS_SUBJECT,default=adoptions.confirmed"`
}

type Frontend struct {
	Server Server
	Log    Log

	CatalogURL string `env:"CATALOG_URL,default=http://localhost:4000"`
}

const (
	DefaultCatalogPort  = "4000"
	DefaultRecordsPort  = "5000"
	DefaultFrontendPort = "8080"

	DefaultCatalogDBPath = "./data/animals.db"
	DefaultRecordsDBPath = "./data/adoptions.db"
)

func LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := load(&c); err != nil {
		return Catalog{}, err
	}
	c.Server.Port = orDefault(c.Server.Port, DefaultCatalogPort)
	c.Storage.Path = orDefault(c.Storage.Path, DefaultCatalogDBPath)
	c.Log.App = orDefault(c.Log.App, "catalog-service")
	if strings.TrimSpace(c.RecordsURL) == "" {
		return Catalog{}, errors.New("config: RECORDS_URL required")
	}
	return c, nil
}

func LoadRecords() (Records, error) {
	var c Records
	if err := load(&c); err != nil {
		return Records{}, err
	}
	c.Server.Port = orDefault(c.Server.Port, DefaultRecordsPort)
	c.Storage.Path = orDefault(c.Storage.Path, DefaultRecordsDBPath)
	c.Log.App = orDefault(c.Log.App, "records-service")
	return c, nil
}

func LoadFrontend() (Frontend, error) {
	var c Frontend
	if err := load(&c); err != nil {
		return Frontend{}, err
	}
	c.Server.Port = orDefault(c.Server.Port, DefaultFrontendPort)
	c.Log.App = orDefault(c.Log.App, "frontend")
	return c, nil
}

// load lee .env (si existe) y luego el entorno.
func load(target any) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	// envdecode falla si ninguna variable estaba presente; para nosotros
	// eso solo significa "todo por defecto".
	if err := envdecode.Decode(target); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("config: decode env: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
