// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
	"github.com/gradsuite/cvdash/internal/core/domain"
)

// RemovingLabel marks a CV whose delete grace interval is running.
const RemovingLabel = "removing…"

// linesPerCard is the rendered height of one CV entry.
const linesPerCard = 2

// CVList displays CVs as a navigable list of cards.
type CVList struct {
	cvs       []domain.CV
	selected  int
	styles    *styles.Styles
	isPending func(id string) bool
	width     int
	height    int
}

// NewCVList creates a new CV list component. isPending marks CVs in
// their delete grace interval; nil means none are.
func NewCVList(s *styles.Styles, isPending func(id string) bool) *CVList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if isPending == nil {
		isPending = func(string) bool { return false }
	}

	return &CVList{
		styles:    s,
		isPending: isPending,
		width:     80,
		height:    20,
	}
}

// Init initialises the list.
func (l *CVList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *CVList) Update(msg tea.Msg) (*CVList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of cards.
func (l *CVList) View() string {
	if len(l.cvs) == 0 {
		return ""
	}

	visibleCount := l.height / linesPerCard
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(l.cvs))

	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, l.renderCard(i, &l.cvs[i]))
	}
	if len(l.cvs) > visibleCount {
		cards = append(cards, l.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]", start+1, end, len(l.cvs))))
	}
	return strings.Join(cards, "\n")
}

// renderCard formats one CV: title and owner on the first line, last
// modified time on the second.
func (l *CVList) renderCard(index int, cv *domain.CV) string {
	title := truncate(cv.DisplayTitle(), max(l.width/2, 10))
	owner := cv.PersonalInfo.FullName
	modified := "Last modified: " + domain.FormatLastModified(cv.LastModified)

	if l.isPending(cv.ID) {
		head := l.styles.Removing.Render(title)
		if owner != "" {
			head += "  " + l.styles.Removing.Render(owner)
		}
		return l.styles.Card.Render(head + "\n" + l.styles.Muted.Render(RemovingLabel))
	}

	card := l.styles.Card
	titleStyle := l.styles.Normal.Bold(true)
	if index == l.selected {
		card = l.styles.CardSelected
		titleStyle = l.styles.Title
	}

	head := titleStyle.Render(title)
	if owner != "" {
		head += "  " + l.styles.Subtitle.Render(owner)
	}
	return card.Render(head + "\n" + l.styles.Muted.Render(modified))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

// SetCVs replaces the list contents. The selection stays at the same
// index, clamped to the new length, so deleting a card selects its
// neighbour.
func (l *CVList) SetCVs(cvs []domain.CV) {
	l.cvs = cvs
	l.clamp()
}

func (l *CVList) clamp() {
	if l.selected >= len(l.cvs) {
		l.selected = len(l.cvs) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// CVs returns the listed CVs.
func (l *CVList) CVs() []domain.CV {
	return l.cvs
}

// Selected returns the index of the selected CV.
func (l *CVList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *CVList) SetSelected(index int) {
	if index >= 0 && index < len(l.cvs) {
		l.selected = index
	}
}

// SelectedCV returns the currently selected CV, or nil if none.
func (l *CVList) SelectedCV() *domain.CV {
	if l.selected < 0 || l.selected >= len(l.cvs) {
		return nil
	}
	return &l.cvs[l.selected]
}

// MoveUp moves selection up.
func (l *CVList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *CVList) MoveDown() {
	if l.selected < len(l.cvs)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *CVList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of listed CVs.
func (l *CVList) Count() int {
	return len(l.cvs)
}

// IsEmpty returns whether the list is empty.
func (l *CVList) IsEmpty() bool {
	return len(l.cvs) == 0
}
