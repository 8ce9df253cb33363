package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driven"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
	"github.com/gradsuite/cvdash/internal/logger"
)

// Ensure CVService implements the interface.
var _ driving.CVService = (*CVService)(nil)

// CVService manages the CV collection through the store.
type CVService struct {
	store driven.CVStore
	now   func() time.Time
}

// NewCVService creates a new CV service.
func NewCVService(store driven.CVStore) *CVService {
	return &CVService{
		store: store,
		now:   time.Now,
	}
}

// List returns the whole collection in store order.
func (s *CVService) List(ctx context.Context) ([]domain.CV, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	cvs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("listed %d cvs", len(cvs))
	return cvs, nil
}

// Search returns the CVs matching query in store order.
func (s *CVService) Search(ctx context.Context, query string) ([]domain.CV, error) {
	cvs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCVs(cvs, query), nil
}

// Get retrieves a CV by ID.
func (s *CVService) Get(ctx context.Context, id string) (*domain.CV, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty cv id", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Create adds a new CV with a fresh ID.
func (s *CVService) Create(ctx context.Context, title, fullName string) (*domain.CV, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	now := s.now()
	cv := &domain.CV{
		ID:           uuid.New().String(),
		Title:        title,
		PersonalInfo: domain.PersonalInfo{FullName: strings.TrimSpace(fullName)},
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.store.Save(ctx, cv); err != nil {
		return nil, fmt.Errorf("saving cv: %w", err)
	}
	logger.Info("created cv %s (%q)", cv.ID, cv.Title)
	return cv, nil
}

// Update changes the title and owner name of an existing CV and bumps
// its LastModified timestamp.
func (s *CVService) Update(ctx context.Context, id, title, fullName string) (*domain.CV, error) {
	cv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	cv.Title = title
	cv.PersonalInfo.FullName = strings.TrimSpace(fullName)
	cv.LastModified = s.now()
	if err := s.store.Save(ctx, cv); err != nil {
		return nil, fmt.Errorf("saving cv: %w", err)
	}
	logger.Info("updated cv %s", cv.ID)
	return cv, nil
}

// Delete removes a CV immediately.
func (s *CVService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting cv: %w", err)
	}
	logger.Info("deleted cv %s", id)
	return nil
}
