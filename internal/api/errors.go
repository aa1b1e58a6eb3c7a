package api

import (
	"errors"
	"net/http"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/florawise/guild-api/internal/service"
	"github.com/florawise/guild-api/internal/store"
)

// MapErrorToStatusCode translates service and domain errors into HTTP
// status codes. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	var constraintErr *domain.InvalidConstraintError
	switch {
	case errors.As(err, &constraintErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for an error. Constraint
// errors are safe to echo verbatim since they describe the caller's own
// input; everything else gets a generic message.
func GetSafeErrorMessage(err error) string {
	var constraintErr *domain.InvalidConstraintError
	switch {
	case errors.As(err, &constraintErr):
		return constraintErr.Error()
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return "Plant catalog is not available yet"
	case errors.Is(err, store.ErrStoreUnavailable):
		return "Catalog storage is unavailable"
	default:
		return "Internal server error"
	}
}
