package guild

import (
	"github.com/florawise/guild-api/internal/domain"
)

// testRecord returns a valid record with sensible defaults that individual
// tests override as needed.
func testRecord(taxonID string, habit domain.GrowthHabit) domain.PlantRecord {
	return domain.PlantRecord{
		TaxonID:        taxonID,
		Genus:          "Testus",
		Species:        "plantus",
		GrowthHabit:    habit,
		MatureHeight:   domain.FloatRange{Min: 1, Max: 10},
		HardinessZones: domain.IntRange{Min: 3, Max: 9},
		SoilPH:         domain.FloatRange{Min: 5.5, Max: 7.5},
		Light:          domain.LightPartialShade,
		Water:          domain.WaterMedium,
	}
}

// mustCatalog builds a catalog or panics; only for use with known-valid
// fixture records.
func mustCatalog(records ...domain.PlantRecord) *domain.Catalog {
	catalog, err := domain.NewCatalog(records)
	if err != nil {
		panic(err)
	}
	return catalog
}

// scenarioCatalog is the three-record fixture used across selection tests:
// a canopy tree hardy in zones 5-9, a shrub in 3-7, and a groundcover in 4-8.
func scenarioCatalog() *domain.Catalog {
	tree := testRecord("tree-1", domain.GrowthHabitTree)
	tree.MatureHeight = domain.FloatRange{Min: 40, Max: 80}
	tree.HardinessZones = domain.IntRange{Min: 5, Max: 9}

	shrub := testRecord("shrub-1", domain.GrowthHabitShrub)
	shrub.HardinessZones = domain.IntRange{Min: 3, Max: 7}

	cover := testRecord("cover-1", domain.GrowthHabitGroundcover)
	cover.HardinessZones = domain.IntRange{Min: 4, Max: 8}

	return mustCatalog(tree, shrub, cover)
}
