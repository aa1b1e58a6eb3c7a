package domain

import "fmt"

// GrowthHabit is the closed set of growth habits recognized by the catalog.
// Raw source data uses free-text habit descriptions; the data-preparation
// pipeline maps those onto these values before handoff.
type GrowthHabit string

// Recognized growth habits.
const (
	GrowthHabitTree        GrowthHabit = "tree"
	GrowthHabitShrub       GrowthHabit = "shrub"
	GrowthHabitVine        GrowthHabit = "vine"
	GrowthHabitHerbaceous  GrowthHabit = "herbaceous"
	GrowthHabitGroundcover GrowthHabit = "groundcover"
	GrowthHabitRoot        GrowthHabit = "root"
)

// IsValid reports whether the growth habit is one of the recognized values.
func (g GrowthHabit) IsValid() bool {
	switch g {
	case GrowthHabitTree,
		GrowthHabitShrub,
		GrowthHabitVine,
		GrowthHabitHerbaceous,
		GrowthHabitGroundcover,
		GrowthHabitRoot:
		return true
	default:
		return false
	}
}

// LightRequirement describes how much light a plant needs, or how much light
// a planting site offers.
type LightRequirement string

// Recognized light requirements, from most to least light.
const (
	LightFullSun      LightRequirement = "full_sun"
	LightPartialShade LightRequirement = "partial_shade"
	LightFullShade    LightRequirement = "full_shade"
)

// IsValid reports whether the light requirement is one of the recognized values.
func (l LightRequirement) IsValid() bool {
	switch l {
	case LightFullSun, LightPartialShade, LightFullShade:
		return true
	default:
		return false
	}
}

// Rank orders light levels so that availability comparisons are simple
// integer comparisons: full_sun > partial_shade > full_shade.
func (l LightRequirement) Rank() int {
	switch l {
	case LightFullSun:
		return 2
	case LightPartialShade:
		return 1
	default:
		return 0
	}
}

// SatisfiedBy reports whether a plant with this light requirement can grow
// at a site offering the given light. A plant needing less light than
// available is acceptable; a plant needing more is not.
func (l LightRequirement) SatisfiedBy(available LightRequirement) bool {
	return l.Rank() <= available.Rank()
}

// WaterRequirement describes how much water a plant needs.
type WaterRequirement string

// Recognized water requirements.
const (
	WaterLow    WaterRequirement = "low"
	WaterMedium WaterRequirement = "medium"
	WaterHigh   WaterRequirement = "high"
)

// IsValid reports whether the water requirement is one of the recognized values.
func (w WaterRequirement) IsValid() bool {
	switch w {
	case WaterLow, WaterMedium, WaterHigh:
		return true
	default:
		return false
	}
}

// FloatRange is an inclusive numeric range.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls within the range, boundary-inclusive.
func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v falls within the range, boundary-inclusive.
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// PlantRecord is one normalized species entry in the catalog. Records arrive
// from the data-preparation collaborator already deduplicated and mapped to
// the closed enumerations above; Validate enforces the schema invariants a
// second time so a bad record can never reach selection.
type PlantRecord struct {
	TaxonID        string           `json:"taxon_id"`
	Genus          string           `json:"genus"`
	Species        string           `json:"species"`
	CommonNames    []string         `json:"common_names,omitempty"`
	GrowthHabit    GrowthHabit      `json:"growth_habit"`
	MatureHeight   FloatRange       `json:"mature_height_range"`
	HardinessZones IntRange         `json:"hardiness_zone_range"`
	SoilPH         FloatRange       `json:"soil_ph_range"`
	Light          LightRequirement `json:"light_requirement"`
	Water          WaterRequirement `json:"water_requirement"`
	Edible         bool             `json:"edible"`
	NitrogenFixer  bool             `json:"nitrogen_fixer"`
	NativeRegions  []string         `json:"native_regions,omitempty"`
}

// ScientificName returns the binomial name of the record.
func (r *PlantRecord) ScientificName() string {
	return fmt.Sprintf("%s %s", r.Genus, r.Species)
}

// Validate checks the record against the catalog schema invariants.
// Returns the first violation found.
func (r *PlantRecord) Validate() error {
	if r.TaxonID == "" {
		return ErrTaxonIDEmpty
	}
	if r.Genus == "" {
		return ErrGenusEmpty
	}
	if r.Species == "" {
		return ErrSpeciesEmpty
	}
	if !r.GrowthHabit.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGrowthHabit, r.GrowthHabit)
	}
	if r.MatureHeight.Min < 0 {
		return ErrNegativeHeight
	}
	if r.MatureHeight.Min > r.MatureHeight.Max {
		return fmt.Errorf("mature height: %w", ErrInvertedRange)
	}
	if r.HardinessZones.Min > r.HardinessZones.Max {
		return fmt.Errorf("hardiness zone: %w", ErrInvertedRange)
	}
	if r.SoilPH.Min > r.SoilPH.Max {
		return fmt.Errorf("soil pH: %w", ErrInvertedRange)
	}
	if r.SoilPH.Min < 0 || r.SoilPH.Max > 14 {
		return ErrSoilPHOutOfBounds
	}
	if !r.Light.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLightRequirement, r.Light)
	}
	if !r.Water.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidWaterRequirement, r.Water)
	}
	return nil
}
