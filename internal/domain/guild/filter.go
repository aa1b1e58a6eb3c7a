package guild

import "github.com/florawise/guild-api/internal/domain"

// filterCatalog classifies every catalog record and retains it under its
// layer only if it satisfies every active constraint. Layers outside the
// target set are dropped from the output entirely. An empty catalog, or a
// catalog with no eligible records, yields an empty mapping rather than an
// error; downstream that surfaces as layers with no candidate.
//
// Candidate pools keep catalog load order here. Any per-layer cap is
// applied later, after scoring, so the true best candidates are never lost
// to premature truncation.
func filterCatalog(
	catalog *domain.Catalog,
	constraints domain.Constraints,
	params *Params,
) (map[domain.ForestLayer][]domain.PlantRecord, error) {
	targets := make(map[domain.ForestLayer]struct{})
	for _, layer := range constraints.EffectiveTargetLayers() {
		targets[layer] = struct{}{}
	}

	pools := make(map[domain.ForestLayer][]domain.PlantRecord)
	for _, record := range catalog.Records() {
		layer, err := classifyRecord(record, params.CanopyHeightFt)
		if err != nil {
			// Catalog validation guarantees classifiable records;
			// reaching this branch is a programming error.
			return nil, err
		}
		if _, wanted := targets[layer]; !wanted {
			continue
		}
		if !eligible(record, constraints) {
			continue
		}
		pools[layer] = append(pools[layer], record)
	}

	return pools, nil
}

// eligible reports whether a record satisfies every active constraint.
// All range checks are inclusive on both ends.
func eligible(r domain.PlantRecord, c domain.Constraints) bool {
	if !r.HardinessZones.Contains(c.HardinessZone) {
		return false
	}
	if c.SoilPH != nil && !r.SoilPH.Contains(*c.SoilPH) {
		return false
	}
	if c.EdibleOnly && !r.Edible {
		return false
	}
	if c.LightAvailable != "" && !r.Light.SatisfiedBy(c.LightAvailable) {
		return false
	}
	return true
}
