package guild

import "github.com/florawise/guild-api/internal/domain"

// scoreCandidate computes the compatibility of a candidate with the guild
// assembled so far. The score is a weighted combination of shared native
// range, niche differentiation against already-selected plants, and a
// baseline constant, clamped to [0,1].
//
// The function is pure and order-stable: identical inputs with identical
// selection order produce bit-identical scores. No maps are iterated, so
// there is no unordered aggregation to disturb determinism.
func scoreCandidate(
	candidate domain.PlantRecord,
	selected []domain.GuildEntry,
	params *Params,
) float64 {
	score := params.BaselineScore
	score += params.RegionWeight * sharedRegionFraction(candidate, selected)
	score += params.NicheWeight * nicheDifferentiation(candidate, selected)

	if candidate.NitrogenFixer && !hasNitrogenFixer(selected) {
		score += params.NitrogenFixerBonus
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// sharedRegionFraction is the fraction of the candidate's native regions
// that at least one already-selected plant shares, in [0,1]. An empty guild
// or a candidate with no recorded regions scores 0 on this component.
func sharedRegionFraction(candidate domain.PlantRecord, selected []domain.GuildEntry) float64 {
	if len(selected) == 0 || len(candidate.NativeRegions) == 0 {
		return 0
	}

	guildRegions := make(map[string]struct{})
	for _, entry := range selected {
		for _, region := range entry.Plant.NativeRegions {
			guildRegions[region] = struct{}{}
		}
	}

	shared := 0
	for _, region := range candidate.NativeRegions {
		if _, ok := guildRegions[region]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(candidate.NativeRegions))
}

// nicheDifferentiation rewards candidates whose water and light needs do
// not duplicate plants already in the guild, averaged over the selection.
// Each already-selected plant contributes up to 1.0: half for a different
// water requirement, half for a different light requirement.
func nicheDifferentiation(candidate domain.PlantRecord, selected []domain.GuildEntry) float64 {
	if len(selected) == 0 {
		return 0
	}

	total := 0.0
	for _, entry := range selected {
		if entry.Plant.Water != candidate.Water {
			total += 0.5
		}
		if entry.Plant.Light != candidate.Light {
			total += 0.5
		}
	}

	return total / float64(len(selected))
}

// hasNitrogenFixer reports whether any selected plant fixes nitrogen.
func hasNitrogenFixer(selected []domain.GuildEntry) bool {
	for _, entry := range selected {
		if entry.Plant.NitrogenFixer {
			return true
		}
	}
	return false
}
