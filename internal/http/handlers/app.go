// Package handlers implements the Job Service HTTP API.
package handlers

import (
	"encoding/json"
	"net/http"

	"startify/internal/domain"
	"startify/internal/export"
	"startify/internal/infra"
	"startify/internal/middleware"
	"startify/internal/render"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Users    domain.UserRepository
	Jobs     domain.JobRepository
	Registry *render.Registry
	Exports  *export.Controller
	Logger   infra.Logger
}

// NewApp wires the handler set. The download endpoint always bundles the
// full package; gating is a client concern.
func NewApp(users domain.UserRepository, jobs domain.JobRepository, logger infra.Logger) *App {
	registry := render.NewRegistry()
	return &App{
		Users:    users,
		Jobs:     jobs,
		Registry: registry,
		Exports: export.NewController(export.Options{
			Registry:        registry,
			PremiumUnlocked: true,
		}),
		Logger: logger,
	}
}

func (a *App) json(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Language", middleware.LocaleFromContext(r.Context()))
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the error envelope. The "error" field is the stable English
// identifier clients match on; "message" carries the locale's translation
// when one exists.
func (a *App) error(w http.ResponseWriter, r *http.Request, code int, msg string) {
	body := map[string]string{"error": msg}
	if localized := localizeMessage(middleware.LocaleFromContext(r.Context()), msg); localized != msg {
		body["message"] = localized
	}
	a.json(w, r, code, body)
}
