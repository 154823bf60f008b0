package router

import (
	"net/http"

	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/docs"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/animals"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type CatalogOptions struct {
	// Opcional: si no viene, in-memory (tests / modo dev).
	Animals animals.Repository

	// Puerto hacia el servicio de registros. nil => las adopciones fallan con 500.
	Recorder animals.AdoptionRecorder

	Logger        logger.Logger
	AllowedOrigin string
}

type RecordsOptions struct {
	Adoptions adoptions.Repository

	// Opcional (NATS).
	Notifier adoptions.Notifier

	Logger        logger.Logger
	AllowedOrigin string
}

// NewCatalogRouter arma el servicio de catálogo: /animals + health/metrics/swagger.
func NewCatalogRouter(opts CatalogOptions) http.Handler {
	log := orNop(opts.Logger)
	r := newBase(log, opts.AllowedOrigin, docs.InstanceCatalog)

	repo := opts.Animals
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}

	svc := animals.NewService(repo, opts.Recorder, log)
	animals.RegisterRoutes(r, svc)

	return r
}

// NewRecordsRouter arma el servicio de registros: /adoptions + health/metrics/swagger.
func NewRecordsRouter(opts RecordsOptions) http.Handler {
	log := orNop(opts.Logger)
	r := newBase(log, opts.AllowedOrigin, docs.InstanceRecords)

	repo := opts.Adoptions
	if repo == nil {
		repo = mem.NewAdoptionRepo()
	}

	svc := adoptions.NewService(repo, opts.Notifier, log)
	adoptions.RegisterRoutes(r, svc)

	return r
}

func newBase(log logger.Logger, allowedOrigin, docsInstance string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(allowedOrigin))
	r.Use(metrics.InstrumentHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docsInstance),
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

func orNop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log
}
