// Package editor provides the create/edit form for a CV's title and
// owner name.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/components/input"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/keymap"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

var errServiceUnavailable = errors.New("cv service not available")

const (
	fieldTitle = iota
	fieldName
	fieldCount
)

// View is the editor form.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	cvService driving.CVService
	ctx       context.Context

	fields  [fieldCount]*input.Field
	focus   int
	editing *domain.CV
	loading bool
	saving  bool
	err     error
	width   int
	height  int
}

// NewView creates an editor view.
func NewView(s *styles.Styles, cvService driving.CVService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		cvService: cvService,
		ctx:       context.Background(),
	}
	v.fields[fieldTitle] = input.NewField(s, "Title", "e.g. Backend Engineer", 120)
	v.fields[fieldName] = input.NewField(s, "Full name", "e.g. Alice Smith", 120)
	return v
}

// SetContext sets the context used for store calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Reset clears the form for a new CV.
func (v *View) Reset() tea.Cmd {
	v.editing = nil
	v.loading = false
	v.saving = false
	v.err = nil
	for _, f := range v.fields {
		f.SetValue("")
	}
	return v.focusField(fieldTitle)
}

// Load clears the form and fetches the CV with id for editing.
func (v *View) Load(id string) tea.Cmd {
	v.Reset()
	v.loading = true
	svc := v.cvService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.CVLoaded{Err: errServiceUnavailable}
		}
		cv, err := svc.Get(ctx, id)
		return messages.CVLoaded{CV: cv, Err: err}
	}
}

func (v *View) focusField(i int) tea.Cmd {
	v.focus = i
	for j, f := range v.fields {
		if j != i {
			f.Blur()
		}
	}
	return v.fields[i].Focus()
}

// Update handles messages for the editor.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CVLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.editing = msg.CV
		v.fields[fieldTitle].SetValue(msg.CV.Title)
		v.fields[fieldName].SetValue(msg.CV.PersonalInfo.FullName)
		return v, v.focusField(fieldTitle)

	case messages.CVSaved:
		v.saving = false
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDashboard}
		}
	case "tab", "down":
		return v, v.focusField((v.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return v, v.focusField((v.focus + fieldCount - 1) % fieldCount)
	case "enter", "ctrl+s":
		return v, v.save()
	}

	if v.loading {
		return v, nil
	}
	var cmd tea.Cmd
	_, cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

// save validates the form and returns the create or update command.
func (v *View) save() tea.Cmd {
	if v.loading || v.saving {
		return nil
	}
	title := strings.TrimSpace(v.fields[fieldTitle].Value())
	name := v.fields[fieldName].Value()
	if title == "" {
		v.err = fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		return v.focusField(fieldTitle)
	}

	v.saving = true
	v.err = nil
	svc := v.cvService
	ctx := v.ctx
	editing := v.editing
	return func() tea.Msg {
		if svc == nil {
			return messages.CVSaved{Err: errServiceUnavailable}
		}
		var (
			cv  *domain.CV
			err error
		)
		if editing == nil {
			cv, err = svc.Create(ctx, title, name)
		} else {
			cv, err = svc.Update(ctx, editing.ID, title, name)
		}
		return messages.CVSaved{CV: cv, Err: err}
	}
}

// View renders the editor.
func (v *View) View() string {
	var b strings.Builder

	heading := "New CV"
	if v.editing != nil {
		heading = "Edit CV"
	}
	b.WriteString(v.styles.Title.Render(heading))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading CV..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n\n")
	}

	if v.editing != nil {
		b.WriteString(v.styles.Muted.Render("Last modified: " + domain.FormatLastModified(v.editing.LastModified)))
		b.WriteString("\n\n")
	}

	switch {
	case v.saving:
		b.WriteString(v.styles.Muted.Render("Saving..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	hints := make([]string, 0, 3)
	for _, k := range v.keymap.EditorHelp() {
		h := k.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return v.styles.Help.Render(strings.Join(hints, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	for _, f := range v.fields {
		f.SetWidth(width - 8)
	}
}

// Editing returns the CV being edited, or nil when creating.
func (v *View) Editing() *domain.CV {
	return v.editing
}

// Values returns the current title and name inputs.
func (v *View) Values() (title, name string) {
	return v.fields[fieldTitle].Value(), v.fields[fieldName].Value()
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
