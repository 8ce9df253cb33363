// Package dashboard provides the CV collection view: incremental search,
// grace-period deletes and the create/edit/preview triggers.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/components/input"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/components/list"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/components/status"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/keymap"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/styles"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
	"github.com/gradsuite/cvdash/internal/core/services"
)

// Empty-state messages.
const (
	NoCVsMessage     = "You haven't created any CVs yet. Let's get started!"
	NoMatchesMessage = "No CVs match your search criteria."
)

// errServiceUnavailable is reported when the view has no CV service.
var errServiceUnavailable = errors.New("cv service not available")

// View is the dashboard. It owns the collection state; the store stays
// authoritative and is re-read after every commit.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	cvService  driving.CVService
	deleter    driving.Deleter
	dispatcher *services.NavigationDispatcher

	ctx        context.Context
	collection *services.CollectionView
	search     *input.SearchInput
	list       *list.CVList
	status     *status.Bar

	width   int
	height  int
	ready   bool
	loading bool
	err     error
}

// NewView creates a dashboard. navigator receives create, edit and
// preview transitions.
func NewView(
	s *styles.Styles,
	cvService driving.CVService,
	deleter driving.Deleter,
	navigator driving.Navigator,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	v := &View{
		styles:     s,
		keymap:     km,
		cvService:  cvService,
		deleter:    deleter,
		dispatcher: services.NewNavigationDispatcher(navigator),
		ctx:        context.Background(),
		collection: services.NewCollectionView(),
		search:     input.NewSearchInput(s),
		status:     status.NewBar(s, km),
	}
	v.list = list.NewCVList(s, v.isPending)
	return v
}

// SetContext sets the context used for store calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the collection.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload re-reads the whole collection from the store.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	svc := v.cvService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.CVsLoaded{Err: errServiceUnavailable}
		}
		cvs, err := svc.List(ctx)
		return messages.CVsLoaded{CVs: cvs, Err: err}
	}
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.search.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleKey(msg)

	case messages.CVsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.status.SetState(status.StateReady)
		v.status.SetMessage("")
		v.collection.SetCollection(msg.CVs)
		v.refresh()
		return v, nil

	case messages.GraceElapsed:
		return v, v.commitDelete(msg.ID)

	case messages.CollectionChanged:
		return v, v.Reload()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleSearchKey routes keys while the search field has focus. Every
// edit refilters the collection.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.search.Clear()
		v.search.Blur()
		v.setQuery("")
		return v, nil
	case "enter", "down", "tab":
		v.search.Blur()
		v.status.SetState(status.StateReady)
		return v, nil
	case "ctrl+c":
		return v, nil
	}

	_, cmd, changed := v.search.Update(msg)
	if changed {
		v.setQuery(v.search.Query())
	}
	return v, cmd
}

// handleKey routes keys in list mode.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.status.SetNotice("")
	keyStr := msg.String()
	selected := v.list.SelectedCV()

	switch {
	case keymap.Matches(keyStr, v.keymap.Search):
		v.status.SetState(status.StateSearching)
		return v, v.search.Focus()

	case keymap.Matches(keyStr, v.keymap.Up), keymap.Matches(keyStr, v.keymap.Down):
		v.list.Update(msg)

	case keymap.Matches(keyStr, v.keymap.Create):
		v.dispatcher.Create()

	case keymap.Matches(keyStr, v.keymap.Edit):
		if selected != nil && !v.isPending(selected.ID) {
			v.dispatcher.Edit(selected.ID)
		}

	case keymap.Matches(keyStr, v.keymap.Preview):
		if selected != nil && !v.isPending(selected.ID) {
			v.dispatcher.Preview(selected.ID)
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if selected != nil {
			return v, v.requestDelete(selected.ID)
		}

	case keymap.Matches(keyStr, v.keymap.Reload):
		v.status.Clear()
		return v, v.Reload()

	case keymap.Matches(keyStr, v.keymap.Back):
		if v.collection.Query() != "" {
			v.search.Clear()
			v.setQuery("")
		}

	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}

	return v, nil
}

// requestDelete marks id as removing and arms the grace timer. A second
// request for a pending id does nothing.
func (v *View) requestDelete(id string) tea.Cmd {
	if v.deleter == nil || !v.deleter.Begin(id) {
		return nil
	}
	v.refresh()

	return tea.Tick(v.deleter.GraceInterval(), func(time.Time) tea.Msg {
		return messages.GraceElapsed{ID: id}
	})
}

// commitDelete runs on the event loop. The store delete, the cleared
// pending mark and the card leaving the collection land in one update;
// the reload afterwards reconciles with the store.
func (v *View) commitDelete(id string) tea.Cmd {
	if v.deleter == nil || !v.deleter.Commit(v.ctx, id) {
		return nil
	}
	v.collection.Remove(id)
	v.refresh()
	return v.Reload()
}

// Notify shows a confirmation in the status bar until the next key.
func (v *View) Notify(text string) {
	v.status.SetNotice(text)
}

func (v *View) isPending(id string) bool {
	return v.deleter != nil && v.deleter.IsPending(id)
}

func (v *View) setQuery(query string) {
	v.collection.SetQuery(query)
	v.refresh()
}

func (v *View) setError(err error) {
	v.err = err
	v.status.SetState(status.StateError)
	v.status.SetMessage(err.Error())
}

// refresh pushes the filtered collection into the list and status bar.
func (v *View) refresh() {
	v.list.SetCVs(v.collection.Visible())
	pending := 0
	if v.deleter != nil {
		pending = len(v.deleter.Pending())
	}
	v.status.SetCounts(v.collection.Len(), len(v.collection.All()), pending)
	v.search.SetCounts(v.collection.Len(), len(v.collection.All()))
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("My CVs"))
	b.WriteString("\n\n")
	b.WriteString(v.search.View())
	b.WriteString("\n\n")

	switch {
	case v.loading && len(v.collection.All()) == 0:
		b.WriteString(v.styles.Muted.Render("Loading CVs..."))
	case v.err != nil && len(v.collection.All()) == 0:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		b.WriteString(v.renderCollection())
	}

	b.WriteString("\n\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderCollection() string {
	switch v.collection.Empty() {
	case services.EmptyNoCVs:
		return v.styles.Empty.Render(NoCVsMessage) + "\n" +
			v.styles.Help.Render("  [n] create your first CV")
	case services.EmptyNoMatches:
		return v.styles.Empty.Render(NoMatchesMessage) + "\n" +
			v.styles.Help.Render("  [esc] clear search  [n] create a new CV")
	case services.EmptyNone:
	}
	return v.list.View()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.search.SetWidth(width)
	v.status.SetWidth(width)
	// Reserve lines for title, search box and status bar.
	v.list.SetDimensions(width, height-9)
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.collection.Query()
}

// Visible returns the filtered collection.
func (v *View) Visible() []string {
	visible := v.collection.Visible()
	ids := make([]string, len(visible))
	for i := range visible {
		ids[i] = visible[i].ID
	}
	return ids
}

// Empty reports the empty state of the collection.
func (v *View) Empty() services.EmptyState {
	return v.collection.Empty()
}

// SelectedIndex returns the selected list index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Searching reports whether the search field has focus.
func (v *View) Searching() bool {
	return v.search.Focused()
}

// Loading reports whether a reload is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
