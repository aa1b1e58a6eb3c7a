package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/florawise/guild-api/internal/domain/guild"
	"github.com/florawise/guild-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPlantStore serves a fixed record set.
type stubPlantStore struct {
	records []domain.PlantRecord
}

func (s *stubPlantStore) GetAll(ctx context.Context) ([]domain.PlantRecord, error) {
	return s.records, nil
}

func apiTestRecord(taxonID string, habit domain.GrowthHabit) domain.PlantRecord {
	return domain.PlantRecord{
		TaxonID:        taxonID,
		Genus:          "Asimina",
		Species:        "triloba",
		CommonNames:    []string{"pawpaw"},
		GrowthHabit:    habit,
		MatureHeight:   domain.FloatRange{Min: 15, Max: 35},
		HardinessZones: domain.IntRange{Min: 5, Max: 8},
		SoilPH:         domain.FloatRange{Min: 5.5, Max: 7.0},
		Light:          domain.LightPartialShade,
		Water:          domain.WaterMedium,
		Edible:         true,
	}
}

// newLoadedHandler builds a GuildHandler over a catalog containing the
// given records.
func newLoadedHandler(t *testing.T, records ...domain.PlantRecord) *GuildHandler {
	t.Helper()

	provider, err := service.NewCatalogProvider(&stubPlantStore{records: records}, nil)
	require.NoError(t, err)

	svc, err := service.NewGuildService(provider, guild.NewDefaultService(), nil)
	require.NoError(t, err)

	_, err = svc.ReloadCatalog(context.Background())
	require.NoError(t, err)

	return NewGuildHandler(svc, slog.Default())
}

func postGuild(t *testing.T, handler *GuildHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/guilds", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.CreateGuild(rec, req)
	return rec
}

func TestCreateGuildHandlerSuccess(t *testing.T) {
	t.Parallel()

	handler := newLoadedHandler(t, apiTestRecord("ASTR", domain.GrowthHabitTree))
	rec := postGuild(t, handler, CreateGuildRequest{HardinessZone: 6})

	require.Equal(t, http.StatusOK, rec.Code)

	var response GuildResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Entries, 1)

	entry := response.Entries[0]
	assert.Equal(t, "understory", entry.Layer)
	assert.Equal(t, "ASTR", entry.TaxonID)
	assert.Equal(t, "Asimina", entry.Genus)
	assert.Contains(t, entry.ReferenceURL, "pfaf.org")
	assert.Contains(t, entry.ReferenceURL, "Asimina+triloba")
}

func TestCreateGuildHandlerMissingZone(t *testing.T) {
	t.Parallel()

	handler := newLoadedHandler(t, apiTestRecord("ASTR", domain.GrowthHabitTree))
	rec := postGuild(t, handler, CreateGuildRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "hardiness_zone")
}

func TestCreateGuildHandlerUnrecognizedLayer(t *testing.T) {
	t.Parallel()

	handler := newLoadedHandler(t, apiTestRecord("ASTR", domain.GrowthHabitTree))
	rec := postGuild(t, handler, CreateGuildRequest{
		HardinessZone: 6,
		TargetLayers:  []string{"midstory"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "target_layers")
}

func TestCreateGuildHandlerMalformedJSON(t *testing.T) {
	t.Parallel()

	handler := newLoadedHandler(t, apiTestRecord("ASTR", domain.GrowthHabitTree))

	req := httptest.NewRequest(http.MethodPost, "/api/guilds", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.CreateGuild(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGuildHandlerCatalogNotLoaded(t *testing.T) {
	t.Parallel()

	provider, err := service.NewCatalogProvider(&stubPlantStore{}, nil)
	require.NoError(t, err)
	svc, err := service.NewGuildService(provider, guild.NewDefaultService(), nil)
	require.NoError(t, err)
	handler := NewGuildHandler(svc, slog.Default())

	rec := postGuild(t, handler, CreateGuildRequest{HardinessZone: 6})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateGuildHandlerEmptyGuildIsOK(t *testing.T) {
	t.Parallel()

	// Zone 2 is outside the record's 5-8 range; an empty guild is a valid
	// result, not an error.
	handler := newLoadedHandler(t, apiTestRecord("ASTR", domain.GrowthHabitTree))
	rec := postGuild(t, handler, CreateGuildRequest{HardinessZone: 2})

	require.Equal(t, http.StatusOK, rec.Code)

	var response GuildResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Entries)
	assert.Zero(t, response.Score)
}
