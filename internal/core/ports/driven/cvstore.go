package driven

import (
	"context"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// CVStore owns persistence and the authoritative CV collection.
type CVStore interface {
	// List returns every CV in store order (creation order).
	List(ctx context.Context) ([]domain.CV, error)

	// Get retrieves a CV by ID.
	// Returns domain.ErrNotFound if no CV has the ID.
	Get(ctx context.Context, id string) (*domain.CV, error)

	// Save inserts or updates a CV. Insertion keeps the CV's position
	// at the end of the collection; updates keep the existing position.
	Save(ctx context.Context, cv *domain.CV) error

	// Delete removes a CV. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id string) error
}
