// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/keymap"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
)

// State represents the current dashboard state for display.
type State string

const (
	StateReady     State = "ready"
	StateLoading   State = "loading"
	StateSearching State = "searching"
	StateError     State = "error"
)

// Bar displays collection counts and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	notice  string
	visible int
	total   int
	pending int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state and counts.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady, StateSearching:
	}

	var text string
	if s.visible == s.total {
		text = pluralise(s.total, "CV", "CVs")
	} else {
		text = fmt.Sprintf("%d of %s", s.visible, pluralise(s.total, "CV", "CVs"))
	}
	if s.message != "" {
		text += " · " + s.message
	}

	parts := []string{s.styles.Normal.Render(text)}
	if s.pending > 0 {
		parts = append(parts, s.styles.Warning.Render(fmt.Sprintf("%d removing", s.pending)))
	}
	if s.notice != "" {
		parts = append(parts, s.styles.Success.Render(s.notice))
	}
	return strings.Join(parts, s.styles.Muted.Render(" · "))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case s.state == StateSearching:
		bindings = []key.Binding{s.keymap.Back}
	case s.total == 0:
		bindings = s.keymap.ShortHelp()
	default:
		bindings = s.keymap.DashboardHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func pluralise(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetNotice shows a confirmation next to the counts until cleared.
func (s *Bar) SetNotice(notice string) {
	s.notice = notice
}

// Notice returns the current confirmation.
func (s *Bar) Notice() string {
	return s.notice
}

// SetCounts sets the visible, total and pending CV counts.
func (s *Bar) SetCounts(visible, total, pending int) {
	s.visible = visible
	s.total = total
	s.pending = pending
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.notice = ""
}
