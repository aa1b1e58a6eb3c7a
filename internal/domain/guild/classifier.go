package guild

import (
	"fmt"

	"github.com/florawise/guild-api/internal/domain"
)

// classifyRecord assigns a plant record to exactly one forest layer. The
// mapping is total over valid growth habits: habit decides the layer
// directly, except for trees, where mature height splits canopy from
// understory. A tree exactly at the threshold resolves to the shorter
// layer (understory).
//
// The error branch is only reachable with a record that bypassed catalog
// validation; it indicates a defect, not bad input.
func classifyRecord(r domain.PlantRecord, canopyHeightFt float64) (domain.ForestLayer, error) {
	switch r.GrowthHabit {
	case domain.GrowthHabitTree:
		if r.MatureHeight.Max > canopyHeightFt {
			return domain.LayerCanopy, nil
		}
		return domain.LayerUnderstory, nil
	case domain.GrowthHabitShrub:
		return domain.LayerShrub, nil
	case domain.GrowthHabitHerbaceous:
		return domain.LayerHerbaceous, nil
	case domain.GrowthHabitGroundcover:
		return domain.LayerGroundcover, nil
	case domain.GrowthHabitVine:
		return domain.LayerVine, nil
	case domain.GrowthHabitRoot:
		return domain.LayerRoot, nil
	default:
		return "", fmt.Errorf(
			"%w: taxon %q has growth habit %q",
			ErrUnclassifiable, r.TaxonID, r.GrowthHabit,
		)
	}
}
