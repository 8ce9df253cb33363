package driving

import (
	"context"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// CVService manages the user's CV collection.
type CVService interface {
	// List returns the whole collection in store order.
	List(ctx context.Context) ([]domain.CV, error)

	// Search returns the CVs whose title or owner name contains query,
	// ignoring case. An empty query returns the whole collection.
	Search(ctx context.Context, query string) ([]domain.CV, error)

	// Get retrieves a CV by ID.
	Get(ctx context.Context, id string) (*domain.CV, error)

	// Create adds a new CV and returns it with its assigned ID.
	Create(ctx context.Context, title, fullName string) (*domain.CV, error)

	// Update changes the title and owner name of an existing CV.
	Update(ctx context.Context, id, title, fullName string) (*domain.CV, error)

	// Delete removes a CV immediately, without a grace interval.
	Delete(ctx context.Context, id string) error
}
