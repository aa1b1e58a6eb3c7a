package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/florawise/guild-api/internal/domain/guild"
	"github.com/florawise/guild-api/internal/platform/logger"
)

// GuildServiceError is a custom error type for guild service errors.
type GuildServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for GuildServiceError.
func (e *GuildServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("guild service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("guild service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GuildServiceError) Unwrap() error {
	return e.Err
}

// GuildService provides guild recommendation operations against the
// currently published catalog.
type GuildService interface {
	// CreateGuild assembles a guild for the given constraints.
	CreateGuild(ctx context.Context, constraints domain.Constraints) (*domain.Guild, error)

	// ReloadCatalog rebuilds the catalog from the plant store and
	// publishes it atomically. Returns the new catalog size.
	ReloadCatalog(ctx context.Context) (int, error)

	// CatalogSize reports the size of the published catalog, 0 when none
	// has been loaded yet.
	CatalogSize() int
}

// guildServiceImpl implements the GuildService interface.
type guildServiceImpl struct {
	provider *CatalogProvider
	engine   guild.Service
	logger   *slog.Logger
}

// NewGuildService creates a new GuildService.
// It returns an error if any of the required dependencies are nil.
func NewGuildService(
	provider *CatalogProvider,
	engine guild.Service,
	log *slog.Logger,
) (GuildService, error) {
	if provider == nil {
		return nil, &GuildServiceError{Operation: "init", Message: "provider cannot be nil"}
	}
	if engine == nil {
		return nil, &GuildServiceError{Operation: "init", Message: "engine cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &guildServiceImpl{
		provider: provider,
		engine:   engine,
		logger:   log.With(slog.String("component", "guild_service")),
	}, nil
}

// CreateGuild implements GuildService.CreateGuild. The catalog reference is
// captured once per request, so a concurrent reload cannot change the data
// mid-recommendation.
func (s *guildServiceImpl) CreateGuild(
	ctx context.Context,
	constraints domain.Constraints,
) (*domain.Guild, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	catalog, err := s.provider.Current()
	if err != nil {
		return nil, err
	}

	result, err := s.engine.CreateGuild(catalog, constraints)
	if err != nil {
		return nil, err
	}

	log.Debug("guild assembled",
		slog.Int("layers_filled", len(result.Entries)),
		slog.Int("layers_requested", len(constraints.EffectiveTargetLayers())),
		slog.Float64("score", result.Score))

	return result, nil
}

// ReloadCatalog implements GuildService.ReloadCatalog.
func (s *guildServiceImpl) ReloadCatalog(ctx context.Context) (int, error) {
	return s.provider.Reload(ctx)
}

// CatalogSize implements GuildService.CatalogSize.
func (s *guildServiceImpl) CatalogSize() int {
	catalog, err := s.provider.Current()
	if err != nil {
		return 0
	}
	return catalog.Len()
}
