// Package service orchestrates the domain engine against the held catalog
// and the backing stores.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/florawise/guild-api/internal/platform/logger"
	"github.com/florawise/guild-api/internal/store"
)

// ErrCatalogNotLoaded is returned when a recommendation is requested before
// the first successful catalog load.
var ErrCatalogNotLoaded = errors.New("plant catalog has not been loaded")

// CatalogProvider holds the current validated catalog behind an atomic
// pointer. Reload builds a completely new catalog and swaps the reference;
// the previous catalog is never mutated, so in-flight requests that already
// hold it stay consistent without locking.
type CatalogProvider struct {
	plantStore store.PlantStore
	current    atomic.Pointer[domain.Catalog]
	logger     *slog.Logger
}

// NewCatalogProvider creates a CatalogProvider over the given plant store.
// It returns an error if the store is nil. The catalog is not loaded yet;
// call Reload before serving requests.
func NewCatalogProvider(plantStore store.PlantStore, log *slog.Logger) (*CatalogProvider, error) {
	if plantStore == nil {
		return nil, errors.New("plantStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CatalogProvider{
		plantStore: plantStore,
		logger:     log.With(slog.String("component", "catalog_provider")),
	}, nil
}

// Reload fetches all plant records from the store, validates them into a
// new catalog, and atomically publishes it. On any failure the previously
// published catalog stays in place. Returns the size of the new catalog.
func (p *CatalogProvider) Reload(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	records, err := p.plantStore.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch plant records", "error", err)
		return 0, fmt.Errorf("failed to fetch plant records: %w", err)
	}

	catalog, err := domain.NewCatalog(records)
	if err != nil {
		log.Error("catalog validation failed", "error", err)
		return 0, fmt.Errorf("failed to build catalog: %w", err)
	}

	p.current.Store(catalog)
	log.Info("catalog published", "records", catalog.Len())
	return catalog.Len(), nil
}

// Current returns the currently published catalog.
// Returns ErrCatalogNotLoaded before the first successful Reload.
func (p *CatalogProvider) Current() (*domain.Catalog, error) {
	catalog := p.current.Load()
	if catalog == nil {
		return nil, ErrCatalogNotLoaded
	}
	return catalog, nil
}
