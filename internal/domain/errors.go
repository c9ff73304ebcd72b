package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrShowNotFound indicates the requested show does not exist in the catalog
	ErrShowNotFound = errors.New("show not found")

	// ErrPersonNotFound indicates the requested person does not exist in the catalog
	ErrPersonNotFound = errors.New("person not found")

	// ErrCatalogUnavailable indicates the catalog API is unreachable
	ErrCatalogUnavailable = errors.New("catalog is unreachable")

	// ErrRateLimited indicates the catalog rejected the request for exceeding its rate limit
	ErrRateLimited = errors.New("catalog rate limit exceeded")
)
