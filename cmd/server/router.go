package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/florawise/guild-api/internal/api"
	apiMiddleware "github.com/florawise/guild-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	guildHandler := api.NewGuildHandler(app.guildService, app.logger)
	catalogHandler := api.NewCatalogHandler(app.guildService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/guilds", guildHandler.CreateGuild)
		r.Get("/catalog", catalogHandler.Status)
		r.Post("/catalog/reload", catalogHandler.Reload)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
