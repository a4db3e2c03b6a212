package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"blog-backend/pkg/config"
)

// CORSConfig controls the cross-origin headers set on responses.
// An empty AllowedOrigins list disables CORS entirely: no headers are set
// and preflight requests fall through to the mux.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // seconds a preflight result may be cached
}

// LoadCORSConfig reads CORS configuration from environment variables.
// CORS_ALLOWED_ORIGINS is a comma-separated list of origins, or "*" to
// allow any origin. The API is read-only, so the default method list is
// GET plus preflight.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		AllowedMethods: config.GetEnvStringList("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "X-Request-ID"}),
		MaxAge:         config.GetEnvInt("CORS_MAX_AGE", 600),
	}
}

// Enabled reports whether any origin is allowed.
func (c CORSConfig) Enabled() bool {
	return len(c.AllowedOrigins) > 0
}

func (c CORSConfig) allowOrigin(origin string) string {
	if origin == "" {
		return ""
	}
	if slices.Contains(c.AllowedOrigins, "*") {
		return "*"
	}
	if slices.Contains(c.AllowedOrigins, origin) {
		return origin
	}
	return ""
}

// CORS returns middleware that sets cross-origin headers for allowed
// origins and short-circuits preflight requests with 204.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed := cfg.allowOrigin(r.Header.Get("Origin"))
			if allowed == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				// Caches must not serve one origin's response to another
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
