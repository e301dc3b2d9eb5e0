package domains

import "errors"

// Domain errors for registry operations.
var (
	// ErrDomainNotFound is returned when the registry has no domain with the requested name.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrInvalidDefinition is returned when a definition declares min greater than max
	// or an empty name.
	ErrInvalidDefinition = errors.New("invalid domain definition")

	// ErrFailedToLoadDefinitions is returned when the source cannot produce its definitions.
	ErrFailedToLoadDefinitions = errors.New("failed to load domain definitions")
)
