package guild

import (
	"sort"

	"github.com/florawise/guild-api/internal/domain"
)

// scoredCandidate pairs a candidate with its score against the guild so far.
type scoredCandidate struct {
	record domain.PlantRecord
	score  float64
}

// selectGuild assembles a guild greedily, one layer at a time, in the
// caller's priority order. Filling high-priority layers first lets the
// scorer condition each later pick on a non-empty guild. For each layer the
// single best-scoring candidate wins, ties broken by taxon ID ascending; a
// layer with no candidates is skipped without error.
//
// Greedy one-step lookahead is intentional: linear in candidates times
// layers, deterministic, and explainable. Layers are structurally
// near-independent, so a guild whose pairwise relationships are each good
// does not need a globally optimal joint selection.
func selectGuild(
	pools map[domain.ForestLayer][]domain.PlantRecord,
	targetLayers []domain.ForestLayer,
	maxCandidatesPerLayer int,
	params *Params,
) domain.Guild {
	guild := domain.Guild{}
	scoreSum := 0.0

	for _, layer := range targetLayers {
		candidates := pools[layer]
		if len(candidates) == 0 {
			continue
		}

		ranked := rankCandidates(candidates, guild.Entries, params)
		if maxCandidatesPerLayer > 0 && len(ranked) > maxCandidatesPerLayer {
			ranked = ranked[:maxCandidatesPerLayer]
		}

		winner := ranked[0]
		guild.Entries = append(guild.Entries, domain.GuildEntry{
			Layer: layer,
			Plant: winner.record,
			Score: winner.score,
		})
		scoreSum += winner.score
	}

	if len(guild.Entries) > 0 {
		guild.Score = scoreSum / float64(len(guild.Entries))
	}

	return guild
}

// rankCandidates scores every candidate against the guild assembled so far
// and sorts the result by score descending, then taxon ID ascending. The
// sort is deterministic by construction; truncation to a candidate cap
// happens only on this already-scored ordering.
func rankCandidates(
	candidates []domain.PlantRecord,
	selected []domain.GuildEntry,
	params *Params,
) []scoredCandidate {
	ranked := make([]scoredCandidate, len(candidates))
	for i, candidate := range candidates {
		ranked[i] = scoredCandidate{
			record: candidate,
			score:  scoreCandidate(candidate, selected, params),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].record.TaxonID < ranked[j].record.TaxonID
	})

	return ranked
}
