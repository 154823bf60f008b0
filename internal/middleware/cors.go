package middleware

import (
	"net/http"
	"strings"
)

// CORS permite que el frontend (otro origen) llame a la API.
// allowed vacío o "*" => cualquier origen.
func CORS(allowed string) func(http.Handler) http.Handler {
	allowed = strings.TrimSpace(allowed)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", allowedOrigin(allowed, r.Header.Get("Origin")))
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

			if reqHeaders := strings.TrimSpace(r.Header.Get("Access-Control-Request-Headers")); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			} else {
				h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
			}

			// preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowedOrigin(allowed, origin string) string {
	if allowed == "" || allowed == "*" {
		return "*"
	}
	origin = strings.TrimSpace(origin)
	for _, o := range strings.Split(allowed, ",") {
		if strings.TrimSpace(o) == origin && origin != "" {
			return origin
		}
	}
	// primer origen configurado; el navegador bloqueará si no coincide
	first, _, _ := strings.Cut(allowed, ",")
	return strings.TrimSpace(first)
}
