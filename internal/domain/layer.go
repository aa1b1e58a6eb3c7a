package domain

// ForestLayer is an ecological stratum a guild member occupies. Every valid
// plant record maps to exactly one layer via its growth habit and mature
// height.
type ForestLayer string

// The seven forest layers, tallest first. This is also the default fill
// priority when a caller does not request specific layers.
const (
	LayerCanopy      ForestLayer = "canopy"
	LayerUnderstory  ForestLayer = "understory"
	LayerShrub       ForestLayer = "shrub"
	LayerHerbaceous  ForestLayer = "herbaceous"
	LayerGroundcover ForestLayer = "groundcover"
	LayerVine        ForestLayer = "vine"
	LayerRoot        ForestLayer = "root"
)

// AllLayers returns the full ordered set of forest layers. The slice is
// freshly allocated on each call so callers may reorder it.
func AllLayers() []ForestLayer {
	return []ForestLayer{
		LayerCanopy,
		LayerUnderstory,
		LayerShrub,
		LayerHerbaceous,
		LayerGroundcover,
		LayerVine,
		LayerRoot,
	}
}

// IsValid reports whether the layer is one of the seven recognized values.
func (l ForestLayer) IsValid() bool {
	switch l {
	case LayerCanopy,
		LayerUnderstory,
		LayerShrub,
		LayerHerbaceous,
		LayerGroundcover,
		LayerVine,
		LayerRoot:
		return true
	default:
		return false
	}
}
