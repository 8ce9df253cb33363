package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driven"
)

// Ensure CVStore implements the interface.
var _ driven.CVStore = (*CVStore)(nil)

// CVStore is an in-memory implementation of driven.CVStore.
// It keeps CVs in insertion order.
type CVStore struct {
	mu    sync.RWMutex
	order []string
	cvs   map[string]domain.CV
}

// NewCVStore creates a new in-memory CV store seeded with cvs.
func NewCVStore(cvs ...domain.CV) *CVStore {
	s := &CVStore{
		cvs: make(map[string]domain.CV, len(cvs)),
	}
	for i := range cvs {
		if _, ok := s.cvs[cvs[i].ID]; !ok {
			s.order = append(s.order, cvs[i].ID)
		}
		s.cvs[cvs[i].ID] = cvs[i]
	}
	return s
}

// List returns every CV in insertion order.
func (s *CVStore) List(_ context.Context) ([]domain.CV, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CV, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.cvs[id])
	}
	return result, nil
}

// Get retrieves a CV by ID.
func (s *CVStore) Get(_ context.Context, id string) (*domain.CV, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cv, ok := s.cvs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cv, nil
}

// Save stores or updates a CV.
func (s *CVStore) Save(_ context.Context, cv *domain.CV) error {
	if cv == nil || cv.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cvs[cv.ID]; !ok {
		s.order = append(s.order, cv.ID)
	}
	s.cvs[cv.ID] = *cv
	return nil
}

// Delete removes a CV. Unknown IDs are ignored.
func (s *CVStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cvs[id]; !ok {
		return nil
	}
	delete(s.cvs, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// Len returns the number of stored CVs.
func (s *CVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
