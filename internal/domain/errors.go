// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrTaxonIDEmpty is returned when a plant record has no taxon ID.
	ErrTaxonIDEmpty = errors.New("taxon ID cannot be empty")

	// ErrGenusEmpty is returned when a plant record has no genus.
	ErrGenusEmpty = errors.New("genus cannot be empty")

	// ErrSpeciesEmpty is returned when a plant record has no species epithet.
	ErrSpeciesEmpty = errors.New("species cannot be empty")

	// ErrInvalidGrowthHabit is returned when a growth habit is not one of
	// the recognized values.
	ErrInvalidGrowthHabit = errors.New("invalid growth habit")

	// ErrInvalidLightRequirement is returned when a light requirement is not
	// one of the recognized values.
	ErrInvalidLightRequirement = errors.New("invalid light requirement")

	// ErrInvalidWaterRequirement is returned when a water requirement is not
	// one of the recognized values.
	ErrInvalidWaterRequirement = errors.New("invalid water requirement")

	// ErrInvalidForestLayer is returned when a forest layer name is not one
	// of the recognized values.
	ErrInvalidForestLayer = errors.New("invalid forest layer")

	// ErrInvertedRange is returned when a numeric range has min > max.
	ErrInvertedRange = errors.New("range minimum exceeds maximum")

	// ErrNegativeHeight is returned when a mature height bound is negative.
	ErrNegativeHeight = errors.New("mature height cannot be negative")

	// ErrSoilPHOutOfBounds is returned when a soil pH value falls outside
	// the 0-14 scale.
	ErrSoilPHOutOfBounds = errors.New("soil pH must be between 0 and 14")

	// ErrDuplicateTaxonID is returned when two catalog records share a taxon ID.
	ErrDuplicateTaxonID = errors.New("duplicate taxon ID")
)
