package domain

import (
	"context"
)

// Catalog provides read access to the remote show catalog
type Catalog interface {
	// GetShows returns one page of the full show index, in catalog order.
	// A page past the end yields an empty slice, not an error.
	GetShows(ctx context.Context, page int) ([]Show, error)

	// GetShow returns a single show; ErrShowNotFound if it doesn't exist
	GetShow(ctx context.Context, id int) (*Show, error)

	// SearchShows runs a free-text show search, unwrapped to bare records
	SearchShows(ctx context.Context, query string) ([]Show, error)

	// SearchPeople runs a people search, keeping the relevance score
	SearchPeople(ctx context.Context, query string) ([]PersonMatch, error)

	// GetPersonCastCredits returns the person's credits with the show embedded
	GetPersonCastCredits(ctx context.Context, personID int) ([]CastCredit, error)
}
