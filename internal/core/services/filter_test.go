package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

func cvFixture(id, title, name string) domain.CV {
	return domain.CV{
		ID:           id,
		Title:        title,
		PersonalInfo: domain.PersonalInfo{FullName: name},
	}
}

func sampleCVs() []domain.CV {
	return []domain.CV{
		cvFixture("1", "Backend Engineer", "Alice Smith"),
		cvFixture("2", "Designer", "Bob Jones"),
		cvFixture("3", "Data Scientist", "Carol Alison"),
	}
}

func ids(cvs []domain.CV) []string {
	out := make([]string, len(cvs))
	for i := range cvs {
		out[i] = cvs[i].ID
	}
	return out
}

func TestMatches(t *testing.T) {
	cv := cvFixture("1", "Senior Go Developer", "Zoë Straße")

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query", "", true},
		{"title substring", "go dev", true},
		{"title upper case", "SENIOR", true},
		{"name substring", "zoë", true},
		{"name upper case", "ZOË", true},
		{"sharp s folds to ss", "STRASSE", true},
		{"no match", "manager", false},
		{"whitespace is literal", "  ", false},
		{"punctuation", "go-dev", false},
		{"email is not searched", "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(cv, tt.query))
		})
	}
}

func TestMatches_EmptyFields(t *testing.T) {
	cv := cvFixture("1", "", "")

	assert.True(t, Matches(cv, ""))
	assert.False(t, Matches(cv, "a"))
}

func TestFilterCVs_EmptyQueryReturnsInput(t *testing.T) {
	cvs := sampleCVs()

	got := FilterCVs(cvs, "")

	assert.Equal(t, cvs, got)
}

func TestFilterCVs_MatchesTitleOrName(t *testing.T) {
	got := FilterCVs(sampleCVs(), "ali")

	// "Alice Smith" by name and "Carol Alison" by name.
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterCVs_CaseInsensitive(t *testing.T) {
	assert.Equal(t, ids(FilterCVs(sampleCVs(), "engineer")), ids(FilterCVs(sampleCVs(), "ENGINEER")))
	assert.Equal(t, []string{"1"}, ids(FilterCVs(sampleCVs(), "ENGINEER")))
}

func TestFilterCVs_NoMatches(t *testing.T) {
	got := FilterCVs(sampleCVs(), "zzz")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterCVs_NilInput(t *testing.T) {
	assert.Nil(t, FilterCVs(nil, ""))
	assert.Empty(t, FilterCVs(nil, "a"))
}

func TestFilterCVs_PreservesOrderAndIsSubset(t *testing.T) {
	cvs := []domain.CV{
		cvFixture("z", "Alpha", ""),
		cvFixture("y", "Beta", "alpha beta"),
		cvFixture("x", "Gamma", ""),
		cvFixture("w", "alphabet", ""),
	}

	for _, query := range []string{"a", "alpha", "BETA", "gam", "q", "ALPHABET"} {
		got := FilterCVs(cvs, query)

		// Every result matches and appears in input order.
		pos := -1
		for _, cv := range got {
			assert.True(t, Matches(cv, query), "query %q returned non-matching %s", query, cv.ID)
			idx := indexOf(cvs, cv.ID)
			assert.Greater(t, idx, pos, "query %q broke order", query)
			pos = idx
		}

		// Every matching input appears in the result.
		for _, cv := range cvs {
			if Matches(cv, query) {
				assert.Contains(t, ids(got), cv.ID, "query %q dropped %s", query, cv.ID)
			}
		}
	}
}

func TestFilterCVs_DoesNotMutateInput(t *testing.T) {
	cvs := sampleCVs()
	before := append([]domain.CV(nil), cvs...)

	_ = FilterCVs(cvs, "bob")

	assert.Equal(t, before, cvs)
}

func indexOf(cvs []domain.CV, id string) int {
	for i := range cvs {
		if cvs[i].ID == id {
			return i
		}
	}
	return -1
}
