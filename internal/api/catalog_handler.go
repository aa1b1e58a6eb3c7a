package api

import (
	"log/slog"
	"net/http"

	"github.com/florawise/guild-api/internal/api/shared"
	"github.com/florawise/guild-api/internal/platform/logger"
	"github.com/florawise/guild-api/internal/service"
)

// CatalogHandler handles catalog inspection and refresh requests.
type CatalogHandler struct {
	guildService service.GuildService
	logger       *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(guildService service.GuildService, log *slog.Logger) *CatalogHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatalogHandler")
	}

	return &CatalogHandler{
		guildService: guildService,
		logger:       log.With(slog.String("component", "catalog_handler")),
	}
}

// Status handles GET /api/catalog requests.
func (h *CatalogHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CatalogStatusResponse{
		Records: h.guildService.CatalogSize(),
	})
}

// Reload handles POST /api/catalog/reload requests. A failed reload leaves
// the previously published catalog serving, so the error is reported
// without taking the API down.
func (h *CatalogHandler) Reload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	count, err := h.guildService.ReloadCatalog(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("catalog reloaded", slog.Int("records", count))
	shared.RespondWithJSON(w, r, http.StatusOK, CatalogStatusResponse{Records: count})
}
