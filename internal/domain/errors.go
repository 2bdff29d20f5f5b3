package domain

import "errors"

var (
	// ErrInvalidCatalog is returned when the catalog is missing, empty, or not a list of rows
	ErrInvalidCatalog = errors.New("invalid catalog data")

	// ErrRawDataRequired is returned when the raw product text is missing or blank
	ErrRawDataRequired = errors.New("raw data is required")

	// ErrCatalogTooLarge is returned when the catalog exceeds the configured row limit
	ErrCatalogTooLarge = errors.New("catalog exceeds maximum size")

	// ErrEnrichmentFailed is returned when derivation fails for an unexpected reason
	ErrEnrichmentFailed = errors.New("failed to enrich catalog")
)
