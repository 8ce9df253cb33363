package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/memory"
	"github.com/gradsuite/cvdash/internal/core/domain"
)

// mockCVStore lets tests inject store failures.
type mockCVStore struct {
	listFn   func(ctx context.Context) ([]domain.CV, error)
	getFn    func(ctx context.Context, id string) (*domain.CV, error)
	saveFn   func(ctx context.Context, cv *domain.CV) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCVStore) List(ctx context.Context) ([]domain.CV, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCVStore) Get(ctx context.Context, id string) (*domain.CV, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCVStore) Save(ctx context.Context, cv *domain.CV) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, cv)
	}
	return nil
}

func (m *mockCVStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newTestCVService(cvs ...domain.CV) (*CVService, *memory.CVStore) {
	store := memory.NewCVStore(cvs...)
	svc := NewCVService(store)
	return svc, store
}

func TestCVService_List(t *testing.T) {
	svc, _ := newTestCVService(sampleCVs()...)

	cvs, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(cvs))
}

func TestCVService_List_StoreError(t *testing.T) {
	svc := NewCVService(&mockCVStore{
		listFn: func(context.Context) ([]domain.CV, error) {
			return nil, errors.New("boom")
		},
	})

	_, err := svc.List(context.Background())

	assert.EqualError(t, err, "boom")
}

func TestCVService_NilStore(t *testing.T) {
	svc := NewCVService(nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = svc.Create(ctx, "t", "n")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, svc.Delete(ctx, "a"), domain.ErrNotImplemented)
}

func TestCVService_Search(t *testing.T) {
	svc, _ := newTestCVService(sampleCVs()...)

	cvs, err := svc.Search(context.Background(), "DESIGN")

	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(cvs))
}

func TestCVService_Get(t *testing.T) {
	svc, _ := newTestCVService(sampleCVs()...)

	cv, err := svc.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Designer", cv.Title)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCVService_Create(t *testing.T) {
	svc, store := newTestCVService()
	fixed := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	cv, err := svc.Create(context.Background(), "  Backend Engineer ", " Alice ")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(cv.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "Backend Engineer", cv.Title)
	assert.Equal(t, "Alice", cv.PersonalInfo.FullName)
	assert.Equal(t, fixed, cv.CreatedAt)
	assert.Equal(t, fixed, cv.LastModified)
	assert.Equal(t, 1, store.Len())
}

func TestCVService_Create_RequiresTitle(t *testing.T) {
	svc, store := newTestCVService()

	_, err := svc.Create(context.Background(), "   ", "Alice")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestCVService_Create_SaveError(t *testing.T) {
	svc := NewCVService(&mockCVStore{
		saveFn: func(context.Context, *domain.CV) error {
			return errors.New("read-only")
		},
	})

	_, err := svc.Create(context.Background(), "t", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving cv")
}

func TestCVService_Update(t *testing.T) {
	svc, store := newTestCVService(sampleCVs()...)
	later := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	cv, err := svc.Update(context.Background(), "1", "Staff Engineer", "Alice S.")

	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", cv.Title)
	assert.Equal(t, later, cv.LastModified)

	stored, err := store.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Alice S.", stored.PersonalInfo.FullName)

	// Order is unchanged by an update.
	cvs, _ := svc.List(context.Background())
	assert.Equal(t, []string{"1", "2", "3"}, ids(cvs))
}

func TestCVService_Update_Errors(t *testing.T) {
	svc, _ := newTestCVService(sampleCVs()...)

	_, err := svc.Update(context.Background(), "missing", "t", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(context.Background(), "1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCVService_Delete(t *testing.T) {
	svc, store := newTestCVService(sampleCVs()...)

	require.NoError(t, svc.Delete(context.Background(), "2"))
	assert.Equal(t, 2, store.Len())

	// Unknown IDs are not an error.
	assert.NoError(t, svc.Delete(context.Background(), "2"))
}

func TestCVService_Delete_StoreError(t *testing.T) {
	svc := NewCVService(&mockCVStore{
		deleteFn: func(context.Context, string) error {
			return errors.New("locked")
		},
	})

	err := svc.Delete(context.Background(), "a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting cv")
}
