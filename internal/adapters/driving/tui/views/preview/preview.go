// Package preview provides the read-only view of a single CV.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

var errServiceUnavailable = errors.New("cv service not available")

// View shows one CV.
type View struct {
	styles    *styles.Styles
	cvService driving.CVService
	ctx       context.Context

	cv      *domain.CV
	loading bool
	err     error
	width   int
	height  int
}

// NewView creates a preview view.
func NewView(s *styles.Styles, cvService driving.CVService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		cvService: cvService,
		ctx:       context.Background(),
	}
}

// SetContext sets the context used for store calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Load fetches the CV with id.
func (v *View) Load(id string) tea.Cmd {
	v.cv = nil
	v.err = nil
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

// Update handles messages for the preview.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.CVLoaded:
		v.loading = false
		v.cv = msg.CV
		v.err = msg.Err

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDashboard}
			}
		case "e":
			if v.cv == nil {
				return v, nil
			}
			id := v.cv.ID
			return v, func() tea.Msg {
				return messages.Navigate{Route: domain.RouteEdit, ID: id}
			}
		}
	}
	return v, nil
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading CV..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.cv != nil:
		b.WriteString(v.renderCV())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[e] edit  [esc] back"))
	return b.String()
}

func (v *View) renderCV() string {
	cv := v.cv
	rows := []struct{ label, value string }{
		{"Name", cv.PersonalInfo.FullName},
		{"Email", cv.PersonalInfo.Email},
		{"Phone", cv.PersonalInfo.Phone},
		{"Created", domain.FormatLastModified(cv.CreatedAt)},
		{"Last modified", domain.FormatLastModified(cv.LastModified)},
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(cv.DisplayTitle()))
	b.WriteString("\n\n")
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-14s", r.label)))
		b.WriteString(v.styles.Normal.Render(r.value))
		b.WriteString("\n")
	}
	return v.styles.Border.Padding(1, 2).Render(strings.TrimRight(b.String(), "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// CV returns the displayed CV.
func (v *View) CV() *domain.CV {
	return v.cv
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
