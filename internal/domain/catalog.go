package domain

import "fmt"

// CatalogValidationError reports a record that violated the catalog schema
// during construction. It identifies the offending taxon so the upstream
// data pipeline can be diagnosed without re-running the load.
type CatalogValidationError struct {
	TaxonID string
	Index   int
	Err     error
}

// Error implements the error interface.
func (e *CatalogValidationError) Error() string {
	if e.TaxonID == "" {
		return fmt.Sprintf("catalog validation failed at record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("catalog validation failed for taxon %q: %v", e.TaxonID, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogValidationError) Unwrap() error {
	return e.Err
}

// Catalog is an immutable, validated collection of plant records. It is
// loaded once and shared by reference across concurrent recommendation
// requests; a refresh publishes a new Catalog rather than mutating this one.
type Catalog struct {
	records []PlantRecord
}

// NewCatalog validates the given records and builds a catalog from them.
// Construction fails with a CatalogValidationError on the first record that
// violates a schema invariant or reuses a taxon ID. The input slice is
// copied so later mutation by the caller cannot affect the catalog.
func NewCatalog(records []PlantRecord) (*Catalog, error) {
	seen := make(map[string]struct{}, len(records))
	copied := make([]PlantRecord, len(records))

	for i := range records {
		r := records[i]
		if err := r.Validate(); err != nil {
			return nil, &CatalogValidationError{TaxonID: r.TaxonID, Index: i, Err: err}
		}
		if _, dup := seen[r.TaxonID]; dup {
			return nil, &CatalogValidationError{TaxonID: r.TaxonID, Index: i, Err: ErrDuplicateTaxonID}
		}
		seen[r.TaxonID] = struct{}{}
		copied[i] = r
	}

	return &Catalog{records: copied}, nil
}

// Records returns the catalog's records in load order. The returned slice is
// shared and must be treated as read-only.
func (c *Catalog) Records() []PlantRecord {
	return c.records
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
