package frontend

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticAssets embed.FS

type Options struct {
	// URL base del catálogo que usará el navegador.
	CatalogURL string
	Logger     logger.Logger
}

// NewHandler sirve los assets embebidos. Rutas desconocidas devuelven
// index.html para que el enrutado lo haga el cliente.
func NewHandler(opts Options) http.Handler {
	subFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic(err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/config.js", configHandler(opts.CatalogURL))

	files := http.FileServer(http.FS(subFS))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(path.Clean(req.URL.Path), "/")
		if name == "" || !exists(subFS, name) {
			serveIndex(w, subFS)
			return
		}
		files.ServeHTTP(w, req)
	})

	return r
}

func configHandler(catalogURL string) http.HandlerFunc {
	catalogURL = strings.TrimRight(strings.TrimSpace(catalogURL), "/")
	// json.Marshal escapa comillas y </script>
	quoted, _ := json.Marshal(catalogURL)
	body := fmt.Sprintf("window.APP_CONFIG = { catalogUrl: %s };\n", quoted)

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(body))
	}
}

func exists(fsys fs.FS, name string) bool {
	st, err := fs.Stat(fsys, name)
	return err == nil && !st.IsDir()
}

func serveIndex(w http.ResponseWriter, fsys fs.FS) {
	b, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		http.Error(w, "index not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(b)
}
