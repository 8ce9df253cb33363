package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
)

// Field is a labelled single-line form field.
type Field struct {
	label     string
	textinput textinput.Model
	styles    *styles.Styles
}

// NewField creates a blurred field.
func NewField(s *styles.Styles, label, placeholder string, limit int) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40

	return &Field{label: label, textinput: ti, styles: s}
}

// Update forwards msg to the underlying input.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the input. The focused field gets the
// accent border.
func (f *Field) View() string {
	label := f.styles.Subtitle.Render(f.label)
	box := f.styles.InputField
	if f.textinput.Focused() {
		box = box.BorderForeground(f.styles.Theme().Primary)
	}
	return label + "\n" + box.Render(f.textinput.View())
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue replaces the value.
func (f *Field) SetValue(v string) {
	f.textinput.SetValue(v)
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the input width.
func (f *Field) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.textinput.Width = width
}
