package services

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// fold applies full Unicode case folding, so "STRASSE" matches "straße"
// and both sides of a comparison are folded the same way.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether cv matches query. An empty query matches every
// CV; otherwise the case-folded query must be a substring of the
// case-folded title or owner name.
func Matches(cv domain.CV, query string) bool {
	if query == "" {
		return true
	}
	return matchesFolded(cv, fold(query))
}

func matchesFolded(cv domain.CV, folded string) bool {
	return strings.Contains(fold(cv.Title), folded) ||
		strings.Contains(fold(cv.PersonalInfo.FullName), folded)
}

// FilterCVs returns the CVs matching query in their original order.
// An empty query returns cvs itself.
func FilterCVs(cvs []domain.CV, query string) []domain.CV {
	if query == "" {
		return cvs
	}

	folded := fold(query)
	result := make([]domain.CV, 0, len(cvs))
	for i := range cvs {
		if matchesFolded(cvs[i], folded) {
			result = append(result, cvs[i])
		}
	}
	return result
}
