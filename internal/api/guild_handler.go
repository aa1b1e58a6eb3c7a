package api

import (
	"log/slog"
	"net/http"

	"github.com/florawise/guild-api/internal/api/shared"
	"github.com/florawise/guild-api/internal/platform/logger"
	"github.com/florawise/guild-api/internal/service"
)

// GuildHandler handles guild recommendation HTTP requests.
type GuildHandler struct {
	guildService service.GuildService
	logger       *slog.Logger
}

// NewGuildHandler creates a new GuildHandler.
func NewGuildHandler(guildService service.GuildService, log *slog.Logger) *GuildHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GuildHandler")
	}

	return &GuildHandler{
		guildService: guildService,
		logger:       log.With(slog.String("component", "guild_handler")),
	}
}

// CreateGuild handles POST /api/guilds requests.
// It assembles a guild recommendation for the constraints in the body.
func (h *GuildHandler) CreateGuild(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateGuildRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	guild, err := h.guildService.CreateGuild(r.Context(), req.ToConstraints())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("guild recommendation served",
		slog.Int("entries", len(guild.Entries)),
		slog.Float64("score", guild.Score))
	shared.RespondWithJSON(w, r, http.StatusOK, guildToResponse(guild))
}
