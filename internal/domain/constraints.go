package domain

import "fmt"

// InvalidConstraintError reports malformed or incomplete constraints passed
// to guild creation. It is recoverable: the caller can fix the named field
// and retry.
type InvalidConstraintError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q: %s", e.Field, e.Message)
}

// NewInvalidConstraintError creates a new InvalidConstraintError.
func NewInvalidConstraintError(field, message string) *InvalidConstraintError {
	return &InvalidConstraintError{Field: field, Message: message}
}

// Constraints is the per-request configuration for guild creation.
// HardinessZone is the only required option; zero values elsewhere mean
// "no constraint".
type Constraints struct {
	// HardinessZone is the USDA hardiness zone of the planting site.
	// Required. A record is eligible only if its zone range contains it.
	HardinessZone int

	// SoilPH, when non-nil, restricts records to those whose soil pH range
	// contains this value (boundary-inclusive).
	SoilPH *float64

	// EdibleOnly, when true, excludes non-edible records outright.
	EdibleOnly bool

	// LightAvailable, when non-empty, restricts records to those whose
	// light requirement is satisfied by the site's available light.
	LightAvailable LightRequirement

	// TargetLayers lists the layers to fill, in priority order. Order is
	// significant: earlier layers are filled first, letting the scorer
	// condition later picks on an already-growing guild. Empty means all
	// seven layers, tallest first.
	TargetLayers []ForestLayer

	// MaxCandidatesPerLayer caps the per-layer candidate pool, applied
	// after scoring. Zero means unbounded.
	MaxCandidatesPerLayer int
}

// EffectiveTargetLayers returns the layers to fill, defaulting to all seven
// when none were requested.
func (c *Constraints) EffectiveTargetLayers() []ForestLayer {
	if len(c.TargetLayers) == 0 {
		return AllLayers()
	}
	return c.TargetLayers
}

// Validate checks the constraints for completeness and well-formedness.
// Returns an InvalidConstraintError naming the offending field.
func (c *Constraints) Validate() error {
	if c.HardinessZone == 0 {
		return NewInvalidConstraintError("hardiness_zone", "is required")
	}
	if c.HardinessZone < 1 || c.HardinessZone > 13 {
		return NewInvalidConstraintError("hardiness_zone", "must be between 1 and 13")
	}
	if c.SoilPH != nil && (*c.SoilPH < 0 || *c.SoilPH > 14) {
		return NewInvalidConstraintError("soil_ph", "must be between 0 and 14")
	}
	if c.LightAvailable != "" && !c.LightAvailable.IsValid() {
		return NewInvalidConstraintError(
			"light_available",
			fmt.Sprintf("unrecognized value %q", c.LightAvailable),
		)
	}
	seen := make(map[ForestLayer]struct{}, len(c.TargetLayers))
	for _, layer := range c.TargetLayers {
		if !layer.IsValid() {
			return NewInvalidConstraintError(
				"target_layers",
				fmt.Sprintf("unrecognized layer %q", layer),
			)
		}
		if _, dup := seen[layer]; dup {
			return NewInvalidConstraintError(
				"target_layers",
				fmt.Sprintf("layer %q listed twice", layer),
			)
		}
		seen[layer] = struct{}{}
	}
	if c.MaxCandidatesPerLayer < 0 {
		return NewInvalidConstraintError("max_candidates_per_layer", "must be positive")
	}
	return nil
}
