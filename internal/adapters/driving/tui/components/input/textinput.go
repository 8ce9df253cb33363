// Package input provides text input components for the TUI.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
)

// SearchPlaceholder is shown while the search field is empty.
const SearchPlaceholder = "Search by title or name..."

const (
	searchLabel    = "Search: "
	queryLimit     = 256
	minSearchWidth = 20
	// label, box border and the match counter
	searchChrome = 12
)

// SearchInput is the dashboard query field. It starts blurred so
// single-key shortcuts reach the dashboard, and shows how many CVs the
// current query matches.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
	matches   int
	total     int
}

// NewSearchInput creates a blurred, empty search field.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.CharLimit = queryLimit
	ti.Prompt = ""

	in := &SearchInput{textinput: ti, styles: s}
	in.SetWidth(0)
	return in
}

// Update forwards msg to the field. changed reports whether the query
// differs afterwards, so callers refilter only on real edits.
func (s *SearchInput) Update(msg tea.Msg) (in *SearchInput, cmd tea.Cmd, changed bool) {
	before := s.textinput.Value()
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd, s.textinput.Value() != before
}

// SetCounts records how many CVs the query matches out of the collection.
func (s *SearchInput) SetCounts(matches, total int) {
	s.matches = matches
	s.total = total
}

// View renders the label, the field and, while a query is set, the
// match counter.
func (s *SearchInput) View() string {
	box := s.styles.InputField
	if s.textinput.Focused() {
		box = box.BorderForeground(s.styles.Theme().Primary)
	}
	parts := []string{
		s.styles.Title.Render(searchLabel),
		box.Render(s.textinput.View()),
	}
	if s.Query() != "" {
		parts = append(parts, s.styles.Muted.Render(fmt.Sprintf(" %d/%d", s.matches, s.total)))
	}
	//nolint:misspell // lipgloss.Center is the library constant
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Query returns the text typed so far.
func (s *SearchInput) Query() string {
	return s.textinput.Value()
}

// SetQuery replaces the query.
func (s *SearchInput) SetQuery(q string) {
	s.textinput.SetValue(q)
}

// Clear empties the query. Focus is left as it was.
func (s *SearchInput) Clear() {
	s.textinput.Reset()
}

// Focus gives the field keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur hands keys back to the dashboard.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused reports whether the field has keyboard focus.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth fits the field into width columns, never below minSearchWidth.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.textinput.Width = max(width-searchChrome, minSearchWidth)
}

// Width returns the width last passed to SetWidth.
func (s *SearchInput) Width() int {
	return s.width
}
