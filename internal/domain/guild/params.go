// Package guild implements the guild recommendation engine: layer
// classification, constraint filtering, compatibility scoring, and greedy
// per-layer selection over a validated plant catalog.
package guild

// Params defines all configurable parameters for the recommendation engine.
// The scoring weights sum to at most 1 so a raw score never leaves [0,1].
type Params struct {
	// CanopyHeightFt splits tree-habit records between canopy and
	// understory. A tree strictly taller than the threshold is canopy;
	// at or below it is understory.
	CanopyHeightFt float64

	// BaselineScore is the constant component of every score, so the
	// first pick into an empty guild still scores above zero.
	BaselineScore float64

	// RegionWeight scales the shared-native-region component.
	RegionWeight float64

	// NicheWeight scales the water/light niche-differentiation bonus,
	// rewarding candidates that do not duplicate the needs of plants
	// already in the guild.
	NicheWeight float64

	// NitrogenFixerBonus is paid to the first nitrogen fixer entering a
	// guild that has none yet.
	NitrogenFixerBonus float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	CanopyHeightFt     float64
	BaselineScore      float64
	RegionWeight       float64
	NicheWeight        float64
	NitrogenFixerBonus float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		CanopyHeightFt:     50,
		BaselineScore:      0.20,
		RegionWeight:       0.50,
		NicheWeight:        0.25,
		NitrogenFixerBonus: 0.05,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.CanopyHeightFt > 0 {
		params.CanopyHeightFt = config.CanopyHeightFt
	}
	if config.BaselineScore > 0 {
		params.BaselineScore = config.BaselineScore
	}
	if config.RegionWeight > 0 {
		params.RegionWeight = config.RegionWeight
	}
	if config.NicheWeight > 0 {
		params.NicheWeight = config.NicheWeight
	}
	if config.NitrogenFixerBonus > 0 {
		params.NitrogenFixerBonus = config.NitrogenFixerBonus
	}

	return params
}
