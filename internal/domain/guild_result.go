package domain

// GuildEntry is one selected (layer, plant) pair within a guild, together
// with the compatibility score the plant earned at selection time.
type GuildEntry struct {
	Layer ForestLayer `json:"layer"`
	Plant PlantRecord `json:"plant"`
	Score float64     `json:"score"`
}

// Guild is the result of a recommendation: an ordered sequence of entries,
// at most one per requested layer, plus the aggregate compatibility score
// (the arithmetic mean of per-pick scores, 0 when empty). A layer with no
// eligible candidate is simply absent.
type Guild struct {
	Entries []GuildEntry `json:"entries"`
	Score   float64      `json:"score"`
}

// Layers returns the layers filled by the guild, in selection order.
func (g *Guild) Layers() []ForestLayer {
	layers := make([]ForestLayer, len(g.Entries))
	for i, e := range g.Entries {
		layers[i] = e.Layer
	}
	return layers
}

// HasLayer reports whether the guild filled the given layer.
func (g *Guild) HasLayer(layer ForestLayer) bool {
	for _, e := range g.Entries {
		if e.Layer == layer {
			return true
		}
	}
	return false
}
