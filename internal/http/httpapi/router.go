// Package httpapi assembles the Job Service router.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"startify/internal/http/handlers"
	"startify/internal/infra"
	"startify/internal/middleware"
)

// Options carries the router's tunables.
type Options struct {
	Logger          infra.Logger
	RateLimitPerMin int
	AllowedOrigins  []string
	CountryLookup   middleware.CountryLookup
}

// NewRouter wires middleware and routes around the handler set.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N("en", opts.CountryLookup),
	)
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Get("/status/{job_id}", app.Status)
		r.Get("/results/{job_id}", app.Results)
		r.Get("/download/{job_id}", app.Download)
	})

	return r
}
