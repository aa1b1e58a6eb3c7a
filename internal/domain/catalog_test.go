package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	first := validRecord()
	second := validRecord()
	second.TaxonID = "QUAL"
	second.Genus = "Quercus"
	second.Species = "alba"

	catalog, err := NewCatalog([]PlantRecord{first, second})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
}

func TestNewCatalogEmptyInput(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestNewCatalogRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	bad := validRecord()
	bad.TaxonID = "BAD1"
	bad.GrowthHabit = "bryophyte"

	_, err := NewCatalog([]PlantRecord{validRecord(), bad})
	require.Error(t, err)

	var validationErr *CatalogValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, bad.TaxonID, validationErr.TaxonID)
	assert.ErrorIs(t, err, ErrInvalidGrowthHabit)
}

func TestNewCatalogRejectsDuplicateTaxonID(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog([]PlantRecord{validRecord(), validRecord()})

	var validationErr *CatalogValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ACSA3", validationErr.TaxonID)
	assert.ErrorIs(t, err, ErrDuplicateTaxonID)
}

func TestNewCatalogCopiesInput(t *testing.T) {
	t.Parallel()

	records := []PlantRecord{validRecord()}
	catalog, err := NewCatalog(records)
	require.NoError(t, err)

	records[0].Genus = "Mutated"
	assert.Equal(t, "Acer", catalog.Records()[0].Genus,
		"caller mutation after construction must not reach the catalog")
}
