package store

import (
	"context"

	"github.com/florawise/guild-api/internal/domain"
)

// PlantStore loads normalized plant records from the backing store. The
// data-preparation pipeline owns writes; this subsystem only reads whole
// batches, which domain.NewCatalog then validates.
type PlantStore interface {
	// GetAll returns every plant record, ordered by taxon ID for
	// reproducible catalog construction.
	GetAll(ctx context.Context) ([]domain.PlantRecord, error)
}
