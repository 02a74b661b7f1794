package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/sertdev/ctxscale/internal/config"
	"github.com/sertdev/ctxscale/internal/logging"
)

// Opts carries optional server components. A nil Opts or nil fields disable
// the corresponding feature.
type Opts struct {
	MetricsMiddleware func(http.Handler) http.Handler
	MetricsHandler    http.Handler
	Logger            *slog.Logger
}

// New creates and configures the chi router with all routes mounted.
func New(cfg *config.Config, usageRouter chi.Router, opts *Opts) *chi.Mux {
	if opts == nil {
		opts = &Opts{}
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(SecurityHeaders)
	r.Use(logging.Middleware(opts.Logger))
	if opts.MetricsMiddleware != nil {
		r.Use(opts.MetricsMiddleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Mount("/v1", usageRouter)

	r.Get("/health", HealthHandler())

	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}

	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets conservative response headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "0")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		next.ServeHTTP(w, r)
	})
}
