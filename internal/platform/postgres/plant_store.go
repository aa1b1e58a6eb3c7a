package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/florawise/guild-api/internal/store"
)

// arraySep joins array columns into a single text value in queries so that
// database/sql can scan them without a driver-specific array type. The unit
// separator control character cannot occur in region or common-name data.
const arraySep = "\x1f"

// PostgresPlantStore implements the store.PlantStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPlantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlantStore creates a new PostgreSQL implementation of the
// PlantStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresPlantStore(db store.DBTX, logger *slog.Logger) *PostgresPlantStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlantStore{
		db:     db,
		logger: logger.With(slog.String("component", "plant_store")),
	}
}

// Ensure PostgresPlantStore implements store.PlantStore interface
var _ store.PlantStore = (*PostgresPlantStore)(nil)

// GetAll implements store.PlantStore.GetAll. Records come back ordered by
// taxon ID so catalog construction is reproducible across reloads.
func (s *PostgresPlantStore) GetAll(ctx context.Context) ([]domain.PlantRecord, error) {
	query := `
		SELECT taxon_id, genus, species,
		       array_to_string(common_names, $1),
		       growth_habit,
		       height_min_ft, height_max_ft,
		       zone_min, zone_max,
		       soil_ph_min, soil_ph_max,
		       light_requirement, water_requirement,
		       edible, nitrogen_fixer,
		       array_to_string(native_regions, $1)
		FROM plants
		ORDER BY taxon_id`

	rows, err := s.db.QueryContext(ctx, query, arraySep)
	if err != nil {
		s.logger.Error("failed to query plants", "error", err)
		return nil, fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.PlantRecord
	for rows.Next() {
		var (
			r           domain.PlantRecord
			commonNames string
			regions     string
		)
		err := rows.Scan(
			&r.TaxonID, &r.Genus, &r.Species,
			&commonNames,
			&r.GrowthHabit,
			&r.MatureHeight.Min, &r.MatureHeight.Max,
			&r.HardinessZones.Min, &r.HardinessZones.Max,
			&r.SoilPH.Min, &r.SoilPH.Max,
			&r.Light, &r.Water,
			&r.Edible, &r.NitrogenFixer,
			&regions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant row: %w", err)
		}
		r.CommonNames = splitArray(commonNames)
		r.NativeRegions = splitArray(regions)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plant rows: %w", err)
	}

	s.logger.Debug("loaded plant records", "count", len(records))
	return records, nil
}

// splitArray undoes the array_to_string join, mapping the empty string back
// to a nil slice.
func splitArray(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, arraySep)
}
