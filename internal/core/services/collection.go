package services

import "github.com/gradsuite/cvdash/internal/core/domain"

// EmptyState explains why the visible list is empty.
type EmptyState int

const (
	// EmptyNone means at least one CV is visible.
	EmptyNone EmptyState = iota
	// EmptyNoCVs means the collection itself is empty.
	EmptyNoCVs
	// EmptyNoMatches means a non-empty query filtered every CV out.
	EmptyNoMatches
)

// CollectionView is the state a hosting view owns: the collection as the
// store last supplied it, the current query and the filtered result.
// Every setter recomputes the filtered result, so it is never stale.
type CollectionView struct {
	all     []domain.CV
	query   string
	visible []domain.CV
}

// NewCollectionView creates an empty view.
func NewCollectionView() *CollectionView {
	return &CollectionView{}
}

// SetCollection replaces the collection wholesale and refilters.
func (v *CollectionView) SetCollection(cvs []domain.CV) {
	v.all = cvs
	v.recompute()
}

// Remove drops id from the collection and refilters. It reports whether
// id was present. The slice passed to SetCollection is not modified.
func (v *CollectionView) Remove(id string) bool {
	kept := make([]domain.CV, 0, len(v.all))
	for i := range v.all {
		if v.all[i].ID != id {
			kept = append(kept, v.all[i])
		}
	}
	if len(kept) == len(v.all) {
		return false
	}
	v.all = kept
	v.recompute()
	return true
}

// SetQuery replaces the query and refilters.
func (v *CollectionView) SetQuery(query string) {
	v.query = query
	v.recompute()
}

func (v *CollectionView) recompute() {
	v.visible = FilterCVs(v.all, v.query)
}

// Query returns the current query.
func (v *CollectionView) Query() string {
	return v.query
}

// All returns the full collection.
func (v *CollectionView) All() []domain.CV {
	return v.all
}

// Visible returns the filtered collection in store order.
func (v *CollectionView) Visible() []domain.CV {
	return v.visible
}

// Len returns the number of visible CVs.
func (v *CollectionView) Len() int {
	return len(v.visible)
}

// At returns the visible CV at index i, or nil when out of range.
func (v *CollectionView) At(i int) *domain.CV {
	if i < 0 || i >= len(v.visible) {
		return nil
	}
	return &v.visible[i]
}

// Empty reports why nothing is visible. The distinction between no CVs
// and no matches comes from the query alone.
func (v *CollectionView) Empty() EmptyState {
	switch {
	case len(v.visible) > 0:
		return EmptyNone
	case v.query != "":
		return EmptyNoMatches
	default:
		return EmptyNoCVs
	}
}
