package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/views/dashboard"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/views/editor"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/views/preview"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// router collects navigation requests from the dashboard.
	router *router

	dashboardView *dashboard.View
	editorView    *editor.View
	previewView   *preview.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool

	closeOnce sync.Once
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	r := &router{}

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		router:        r,
		dashboardView: dashboard.NewView(s, ports.CV, ports.Deleter, r),
		editorView:    editor.NewView(s, ports.CV),
		previewView:   preview.NewView(s, ports.CV),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dashboardView.SetContext(ctx)
	a.editorView.SetContext(ctx)
	a.previewView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
// It loads the collection and starts listening for store changes.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("cvdash - My CVs"),
		a.dashboardView.Init(),
		a.waitForChange(),
	)
}

// waitForChange blocks on the store watcher and reports one change.
// It is re-armed after every CollectionChanged.
func (a *App) waitForChange() tea.Cmd {
	changes := a.ports.Changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.CollectionChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}

	case messages.Quit:
		return a, a.quit()

	case messages.Navigate:
		return a, a.navigate(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewDashboard {
			return a, a.dashboardView.Reload()
		}
		return a, nil

	case messages.CVLoaded:
		switch a.currentView {
		case messages.ViewEditor:
			a.editorView, cmd = a.editorView.Update(msg)
		case messages.ViewPreview:
			a.previewView, cmd = a.previewView.Update(msg)
		case messages.ViewDashboard:
			// Stale load for a view that was left.
		}
		return a, cmd

	case messages.CVSaved:
		a.editorView, cmd = a.editorView.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		logger.Debug("saved cv %s", msg.CV.ID)
		a.dashboardView.Notify(fmt.Sprintf("Saved %q", msg.CV.DisplayTitle()))
		a.currentView = messages.ViewDashboard
		return a, tea.Batch(cmd, a.dashboardView.Reload())

	case messages.GraceElapsed:
		// The dashboard owns pending deletes whichever view is active.
		logger.Debug("grace interval elapsed for %s", msg.ID)
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.CollectionChanged:
		logger.Debug("store changed on disk, reloading")
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, tea.Batch(cmd, a.waitForChange())

	case messages.CVsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Warn("%v", msg.Err)
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view. Navigation requested by the
// dashboard during the update is appended afterwards.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		if nav := a.router.drain(); nav != nil {
			return tea.Batch(cmd, nav)
		}
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewPreview:
		a.previewView, cmd = a.previewView.Update(msg)
	}
	return cmd
}

// navigate switches to the view for msg.Route and starts its load.
func (a *App) navigate(msg messages.Navigate) tea.Cmd {
	if msg.Route.RequiresID() && msg.ID == "" {
		a.err = fmt.Errorf("%w: %s needs a cv id", domain.ErrInvalidInput, msg.Route)
		return nil
	}
	logger.Debug("navigate %s %s", msg.Route, msg.ID)

	switch msg.Route {
	case domain.RouteCreate:
		a.currentView = messages.ViewEditor
		return a.editorView.Reset()
	case domain.RouteEdit:
		a.currentView = messages.ViewEditor
		return a.editorView.Load(msg.ID)
	case domain.RoutePreview:
		a.currentView = messages.ViewPreview
		return a.previewView.Load(msg.ID)
	}
	return nil
}

// quit drops pending deletes and exits.
func (a *App) quit() tea.Cmd {
	a.shutdown()
	return tea.Quit
}

func (a *App) shutdown() {
	a.closeOnce.Do(func() {
		if pending := a.ports.Deleter.Pending(); len(pending) > 0 {
			logger.Info("dropping %d pending delete(s)", len(pending))
		}
		a.ports.Deleter.Close()
	})
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewEditor:
		return a.editorView.View()
	case messages.ViewPreview:
		return a.previewView.View()
	default:
		return a.dashboardView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.shutdown()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Dashboard returns the dashboard view.
func (a *App) Dashboard() *dashboard.View {
	return a.dashboardView
}

// Editor returns the editor view.
func (a *App) Editor() *editor.View {
	return a.editorView
}

// Preview returns the preview view.
func (a *App) Preview() *preview.View {
	return a.previewView
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.editorView.SetDimensions(width, height)
	a.previewView.SetDimensions(width, height)
}
