// Package api provides HTTP handlers for the API.
package api

import (
	"fmt"
	"net/url"

	"github.com/florawise/guild-api/internal/domain"
)

// CreateGuildRequest is the request body for POST /api/guilds. It mirrors
// domain.Constraints with JSON-friendly types; ToConstraints converts and
// the domain performs the authoritative validation.
type CreateGuildRequest struct {
	HardinessZone         int      `json:"hardiness_zone"`
	SoilPH                *float64 `json:"soil_ph,omitempty"`
	EdibleOnly            bool     `json:"edible_only,omitempty"`
	LightAvailable        string   `json:"light_available,omitempty"`
	TargetLayers          []string `json:"target_layers,omitempty"`
	MaxCandidatesPerLayer int      `json:"max_candidates_per_layer,omitempty"`
}

// ToConstraints converts the request into domain constraints. Enum values
// pass through as-is; domain validation rejects unrecognized ones with a
// field-scoped error.
func (req *CreateGuildRequest) ToConstraints() domain.Constraints {
	constraints := domain.Constraints{
		HardinessZone:         req.HardinessZone,
		SoilPH:                req.SoilPH,
		EdibleOnly:            req.EdibleOnly,
		LightAvailable:        domain.LightRequirement(req.LightAvailable),
		MaxCandidatesPerLayer: req.MaxCandidatesPerLayer,
	}
	for _, layer := range req.TargetLayers {
		constraints.TargetLayers = append(constraints.TargetLayers, domain.ForestLayer(layer))
	}
	return constraints
}

// Validate checks the request through its domain constraint form, so the
// handler can reject bad input before touching the catalog.
func (req *CreateGuildRequest) Validate() error {
	constraints := req.ToConstraints()
	return constraints.Validate()
}

// GuildEntryResponse is one selected plant in the guild response.
type GuildEntryResponse struct {
	Layer        string   `json:"layer"`
	TaxonID      string   `json:"taxon_id"`
	Genus        string   `json:"genus"`
	Species      string   `json:"species"`
	CommonNames  []string `json:"common_names,omitempty"`
	Edible       bool     `json:"edible"`
	Score        float64  `json:"score"`
	ReferenceURL string   `json:"reference_url"`
}

// GuildResponse is the response body for POST /api/guilds.
type GuildResponse struct {
	Entries []GuildEntryResponse `json:"entries"`
	Score   float64              `json:"score"`
}

// guildToResponse transforms a domain guild into its response shape.
func guildToResponse(g *domain.Guild) GuildResponse {
	response := GuildResponse{
		Entries: make([]GuildEntryResponse, len(g.Entries)),
		Score:   g.Score,
	}
	for i, entry := range g.Entries {
		response.Entries[i] = GuildEntryResponse{
			Layer:        string(entry.Layer),
			TaxonID:      entry.Plant.TaxonID,
			Genus:        entry.Plant.Genus,
			Species:      entry.Plant.Species,
			CommonNames:  entry.Plant.CommonNames,
			Edible:       entry.Plant.Edible,
			Score:        entry.Score,
			ReferenceURL: referenceURL(entry.Plant),
		}
	}
	return response
}

// referenceURL builds the Plants For A Future page for a species, a
// presentation convenience carried over from the original recommender.
func referenceURL(p domain.PlantRecord) string {
	latin := fmt.Sprintf("%s %s", p.Genus, p.Species)
	return "https://pfaf.org/user/Plant.aspx?LatinName=" + url.QueryEscape(latin)
}

// CatalogStatusResponse reports the size of the published catalog.
type CatalogStatusResponse struct {
	Records int `json:"records"`
}
