package guild

import (
	"errors"

	"github.com/florawise/guild-api/internal/domain"
)

// Common errors
var (
	ErrNilCatalog = errors.New("catalog cannot be nil")

	// ErrUnclassifiable indicates a record whose growth habit resolves to
	// no layer. Catalog validation rejects such records at load, so seeing
	// this during a request means the classifier's rule table and the
	// record validator have diverged.
	ErrUnclassifiable = errors.New("record cannot be classified into a forest layer")
)

// Service defines the interface for guild recommendation operations.
type Service interface {
	// CreateGuild assembles a guild from the catalog under the given
	// constraints. It never mutates the catalog.
	CreateGuild(catalog *domain.Catalog, constraints domain.Constraints) (*domain.Guild, error)

	// Classify resolves the forest layer for a single record using the
	// service's height threshold.
	Classify(record domain.PlantRecord) (domain.ForestLayer, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new recommendation service with default
// parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new recommendation service with custom
// parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CreateGuild implements the Service interface.
func (s *defaultService) CreateGuild(
	catalog *domain.Catalog,
	constraints domain.Constraints,
) (*domain.Guild, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	pools, err := filterCatalog(catalog, constraints, s.params)
	if err != nil {
		return nil, err
	}

	guild := selectGuild(
		pools,
		constraints.EffectiveTargetLayers(),
		constraints.MaxCandidatesPerLayer,
		s.params,
	)

	return &guild, nil
}

// Classify implements the Service interface.
func (s *defaultService) Classify(record domain.PlantRecord) (domain.ForestLayer, error) {
	return classifyRecord(record, s.params.CanopyHeightFt)
}
