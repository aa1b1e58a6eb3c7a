package guild

import (
	"testing"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCatalogZoneContainment(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		zone     int
		expected int
	}{
		{name: "zone inside all ranges keeps all layers", zone: 6, expected: 3},
		{name: "zone at a range boundary is inclusive", zone: 5, expected: 3},
		{name: "zone outside every range keeps nothing", zone: 2, expected: 0},
		{name: "zone matching only two records", zone: 9, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pools, err := filterCatalog(
				scenarioCatalog(),
				domain.Constraints{HardinessZone: tc.zone},
				params,
			)
			require.NoError(t, err)

			total := 0
			for _, pool := range pools {
				total += len(pool)
			}
			assert.Equal(t, tc.expected, total)
		})
	}
}

func TestFilterCatalogSoilPHBoundary(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Record pH range is 5.5-7.5.
	record := testRecord("ph-1", domain.GrowthHabitShrub)
	catalog := mustCatalog(record)

	testCases := []struct {
		name string
		ph   float64
		kept bool
	}{
		{name: "pH at lower bound accepted", ph: 5.5, kept: true},
		{name: "pH at upper bound accepted", ph: 7.5, kept: true},
		{name: "pH inside range accepted", ph: 6.5, kept: true},
		{name: "pH one unit below rejected", ph: 4.5, kept: false},
		{name: "pH one unit above rejected", ph: 8.5, kept: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ph := tc.ph
			pools, err := filterCatalog(
				catalog,
				domain.Constraints{HardinessZone: 6, SoilPH: &ph},
				params,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.kept, len(pools[domain.LayerShrub]) == 1)
		})
	}
}

func TestFilterCatalogLightOrdering(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	sunLover := testRecord("sun-1", domain.GrowthHabitShrub)
	sunLover.Light = domain.LightFullSun
	shadeTolerant := testRecord("shade-1", domain.GrowthHabitShrub)
	shadeTolerant.Light = domain.LightFullShade
	middling := testRecord("mid-1", domain.GrowthHabitShrub)
	middling.Light = domain.LightPartialShade

	catalog := mustCatalog(sunLover, shadeTolerant, middling)

	testCases := []struct {
		name      string
		available domain.LightRequirement
		kept      []string
	}{
		{
			name:      "full sun available accepts everything",
			available: domain.LightFullSun,
			kept:      []string{"sun-1", "shade-1", "mid-1"},
		},
		{
			name:      "partial shade excludes plants needing full sun",
			available: domain.LightPartialShade,
			kept:      []string{"shade-1", "mid-1"},
		},
		{
			name:      "full shade accepts only shade plants",
			available: domain.LightFullShade,
			kept:      []string{"shade-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pools, err := filterCatalog(
				catalog,
				domain.Constraints{HardinessZone: 6, LightAvailable: tc.available},
				params,
			)
			require.NoError(t, err)

			var got []string
			for _, record := range pools[domain.LayerShrub] {
				got = append(got, record.TaxonID)
			}
			assert.ElementsMatch(t, tc.kept, got)
		})
	}
}

func TestFilterCatalogEdibleOnly(t *testing.T) {
	t.Parallel()

	edible := testRecord("edible-1", domain.GrowthHabitShrub)
	edible.Edible = true
	inedible := testRecord("inedible-1", domain.GrowthHabitShrub)

	pools, err := filterCatalog(
		mustCatalog(edible, inedible),
		domain.Constraints{HardinessZone: 6, EdibleOnly: true},
		NewDefaultParams(),
	)
	require.NoError(t, err)
	require.Len(t, pools[domain.LayerShrub], 1)
	assert.Equal(t, "edible-1", pools[domain.LayerShrub][0].TaxonID)
}

func TestFilterCatalogDropsUntargetedLayers(t *testing.T) {
	t.Parallel()

	pools, err := filterCatalog(
		scenarioCatalog(),
		domain.Constraints{
			HardinessZone: 6,
			TargetLayers:  []domain.ForestLayer{domain.LayerCanopy},
		},
		NewDefaultParams(),
	)
	require.NoError(t, err)

	assert.Len(t, pools, 1)
	assert.Contains(t, pools, domain.LayerCanopy)
	assert.NotContains(t, pools, domain.LayerShrub)
	assert.NotContains(t, pools, domain.LayerGroundcover)
}

func TestFilterCatalogEmptyCatalog(t *testing.T) {
	t.Parallel()

	pools, err := filterCatalog(
		mustCatalog(),
		domain.Constraints{HardinessZone: 6},
		NewDefaultParams(),
	)
	require.NoError(t, err)
	assert.Empty(t, pools)
}

func TestFilterCatalogNarrowingNeverGrowsPools(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	catalog := scenarioCatalog()

	broad, err := filterCatalog(catalog, domain.Constraints{HardinessZone: 6}, params)
	require.NoError(t, err)

	narrow, err := filterCatalog(
		catalog,
		domain.Constraints{HardinessZone: 6, EdibleOnly: true},
		params,
	)
	require.NoError(t, err)

	for layer, pool := range narrow {
		assert.LessOrEqual(t, len(pool), len(broad[layer]),
			"narrowing constraints grew pool for layer %s", layer)
	}
}
