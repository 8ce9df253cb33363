package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/memory"
	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/services"
)

type navCall struct {
	route domain.Route
	id    string
}

// mockNavigator records GoTo calls.
type mockNavigator struct {
	calls []navCall
}

func (m *mockNavigator) GoTo(route domain.Route, id string) {
	m.calls = append(m.calls, navCall{route, id})
}

func sampleCVs() []domain.CV {
	return []domain.CV{
		{ID: "a", Title: "Backend Engineer", PersonalInfo: domain.PersonalInfo{FullName: "Alice Smith"}},
		{ID: "b", Title: "Designer", PersonalInfo: domain.PersonalInfo{FullName: "Bob Jones"}},
		{ID: "c", Title: "Data Scientist", PersonalInfo: domain.PersonalInfo{FullName: "Carol Alison"}},
	}
}

type fixture struct {
	view  *View
	store *memory.CVStore
	coord *services.DeletionCoordinator
	nav   *mockNavigator
}

func newFixture(t *testing.T, cvs ...domain.CV) *fixture {
	t.Helper()
	store := memory.NewCVStore(cvs...)
	svc := services.NewCVService(store)
	coord := services.NewDeletionCoordinator(svc, 0)
	t.Cleanup(coord.Close)
	nav := &mockNavigator{}

	v := NewView(nil, svc, coord, nav)
	v.SetDimensions(120, 40)
	return &fixture{view: v, store: store, coord: coord, nav: nav}
}

// load runs the initial load command through Update.
func (f *fixture) load(t *testing.T) {
	t.Helper()
	cmd := f.view.Init()
	require.NotNil(t, cmd)
	f.view.Update(cmd())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeQuery(v *View, q string) {
	v.Update(key("/"))
	for _, r := range q {
		v.Update(key(string(r)))
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, &mockNavigator{})

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Equal(t, services.EmptyNoCVs, v.Empty())
	assert.False(t, v.Searching())
}

func TestView_InitLoadsCollection(t *testing.T) {
	f := newFixture(t, sampleCVs()...)

	f.load(t)

	assert.False(t, f.view.Loading())
	assert.Equal(t, []string{"a", "b", "c"}, f.view.Visible())
	assert.Equal(t, services.EmptyNone, f.view.Empty())
}

func TestView_LoadWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil, &mockNavigator{})

	v.Update(v.Init()())

	assert.ErrorIs(t, v.Err(), errServiceUnavailable)
	assert.Contains(t, v.View(), "cv service not available")
}

func TestView_LoadError(t *testing.T) {
	f := newFixture(t)

	f.view.Update(messages.CVsLoaded{Err: errors.New("database locked")})

	assert.EqualError(t, f.view.Err(), "database locked")
	assert.Contains(t, f.view.View(), "database locked")
}

// ==================== Search Tests ====================

func TestView_SearchFiltersIncrementally(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	typeQuery(f.view, "ali")

	assert.True(t, f.view.Searching())
	assert.Equal(t, "ali", f.view.Query())
	assert.Equal(t, []string{"a", "c"}, f.view.Visible())

	f.view.Update(key("backspace"))
	assert.Equal(t, "al", f.view.Query())
	assert.Equal(t, []string{"a", "c"}, f.view.Visible())

	f.view.Update(key("backspace"))
	f.view.Update(key("backspace"))
	assert.Equal(t, "", f.view.Query())
	assert.Equal(t, []string{"a", "b", "c"}, f.view.Visible())
}

func TestView_SearchCaseInsensitive(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	typeQuery(f.view, "DESIGN")

	assert.Equal(t, []string{"b"}, f.view.Visible())
}

func TestView_SearchNoMatches(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	typeQuery(f.view, "zzz")

	assert.Empty(t, f.view.Visible())
	assert.Equal(t, services.EmptyNoMatches, f.view.Empty())
	assert.Contains(t, f.view.View(), NoMatchesMessage)
	assert.NotContains(t, f.view.View(), NoCVsMessage)
}

func TestView_SearchEscClearsQuery(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)
	typeQuery(f.view, "bob")

	f.view.Update(key("esc"))

	assert.False(t, f.view.Searching())
	assert.Equal(t, "", f.view.Query())
	assert.Len(t, f.view.Visible(), 3)
}

func TestView_SearchEnterKeepsQuery(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)
	typeQuery(f.view, "bob")

	f.view.Update(key("enter"))

	assert.False(t, f.view.Searching())
	assert.Equal(t, "bob", f.view.Query())

	// Esc in list mode clears the remaining query.
	f.view.Update(key("esc"))
	assert.Equal(t, "", f.view.Query())
}

func TestView_SearchSurvivesReload(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)
	typeQuery(f.view, "alice")
	f.view.Update(key("enter"))

	require.NoError(t, f.store.Save(context.Background(), &domain.CV{ID: "d", Title: "Alice's CV"}))
	_, cmd := f.view.Update(messages.CollectionChanged{})
	require.NotNil(t, cmd)
	f.view.Update(cmd())

	assert.Equal(t, []string{"a", "d"}, f.view.Visible())
}

// ==================== Empty State Tests ====================

func TestView_EmptyCollection(t *testing.T) {
	f := newFixture(t)
	f.load(t)

	view := f.view.View()

	assert.Equal(t, services.EmptyNoCVs, f.view.Empty())
	assert.Contains(t, view, NoCVsMessage)
	assert.Contains(t, view, "create your first CV")
}

func TestView_EmptyCollectionCreate(t *testing.T) {
	f := newFixture(t)
	f.load(t)

	f.view.Update(key("n"))

	assert.Equal(t, []navCall{{domain.RouteCreate, ""}}, f.nav.calls)
}

// ==================== Navigation Tests ====================

func TestView_NavigationTriggers(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	f.view.Update(key("down"))
	f.view.Update(key("e"))
	f.view.Update(key("p"))
	f.view.Update(key("n"))
	f.view.Update(key("enter"))

	assert.Equal(t, []navCall{
		{domain.RouteEdit, "b"},
		{domain.RoutePreview, "b"},
		{domain.RouteCreate, ""},
		{domain.RouteEdit, "b"},
	}, f.nav.calls)
}

func TestView_EditIgnoredWithoutSelection(t *testing.T) {
	f := newFixture(t)
	f.load(t)

	f.view.Update(key("e"))
	f.view.Update(key("p"))
	f.view.Update(key("d"))

	assert.Empty(t, f.nav.calls)
}

func TestView_QuitKey(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.view.Update(key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_TypingInSearchDoesNotTriggerShortcuts(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	typeQuery(f.view, "neq")

	assert.Empty(t, f.nav.calls)
	assert.Equal(t, "neq", f.view.Query())
}

// ==================== Delete Tests ====================

func TestView_DeleteMarksRemovingThenCommits(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	_, cmd := f.view.Update(key("d"))
	require.NotNil(t, cmd)

	// During the grace interval the card stays, rendered as removing.
	assert.True(t, f.coord.IsPending("a"))
	assert.Equal(t, []string{"a", "b", "c"}, f.view.Visible())
	assert.Contains(t, f.view.View(), "removing…")
	assert.Equal(t, 3, f.store.Len())

	msg := cmd()
	require.Equal(t, messages.GraceElapsed{ID: "a"}, msg)
	// The timer itself does not touch the store.
	assert.Equal(t, 3, f.store.Len())

	_, reload := f.view.Update(msg)
	require.NotNil(t, reload)
	assert.Equal(t, 2, f.store.Len())
	assert.False(t, f.coord.IsPending("a"))

	f.view.Update(reload())

	assert.Equal(t, []string{"b", "c"}, f.view.Visible())
	assert.NotContains(t, f.view.View(), "removing…")
}

func TestView_CommittedCardLeavesBeforeReload(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	_, tick := f.view.Update(key("d"))
	require.NotNil(t, tick)
	_, reload := f.view.Update(tick())
	require.NotNil(t, reload)

	// Frame drawn after the commit, with the reload still in flight.
	frame := f.view.View()
	assert.NotContains(t, frame, "Backend Engineer")
	assert.NotContains(t, frame, "removing…")
	assert.Equal(t, []string{"b", "c"}, f.view.Visible())

	// The selection now sits on the next card, so these act on "b".
	f.view.Update(key("e"))
	require.Len(t, f.nav.calls, 1)
	assert.Equal(t, "b", f.nav.calls[0].id)

	_, again := f.view.Update(key("d"))
	require.NotNil(t, again)
	assert.False(t, f.coord.IsPending("a"))
	assert.True(t, f.coord.IsPending("b"))
	assert.Equal(t, 2, f.store.Len())
}

func TestView_GraceElapsedForUnknownIDIsIgnored(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	_, cmd := f.view.Update(messages.GraceElapsed{ID: "a"})

	assert.Nil(t, cmd)
	assert.Equal(t, []string{"a", "b", "c"}, f.view.Visible())
	assert.Equal(t, 3, f.store.Len())
}

func TestView_DoubleDeleteSchedulesOnce(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	_, first := f.view.Update(key("d"))
	_, second := f.view.Update(key("x"))

	require.NotNil(t, first)
	assert.Nil(t, second)
}

func TestView_PendingCVCannotBeOpened(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	f.view.Update(key("d"))
	f.view.Update(key("e"))
	f.view.Update(key("p"))

	assert.Empty(t, f.nav.calls)
}

func TestView_DeleteWhileFiltered(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)
	typeQuery(f.view, "ali")
	f.view.Update(key("enter"))
	f.view.Update(key("down"))

	_, cmd := f.view.Update(key("d"))
	require.NotNil(t, cmd)
	assert.True(t, f.coord.IsPending("c"))

	_, reload := f.view.Update(cmd())
	f.view.Update(reload())

	assert.Equal(t, []string{"a"}, f.view.Visible())
	assert.Equal(t, "ali", f.view.Query())
}

func TestView_DeleteAfterCloseIsNoop(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)
	f.coord.Close()

	_, cmd := f.view.Update(key("d"))

	assert.Nil(t, cmd)
	assert.Equal(t, 3, f.store.Len())
}

func TestView_CommitUsesGraceInterval(t *testing.T) {
	store := memory.NewCVStore(sampleCVs()...)
	svc := services.NewCVService(store)
	coord := services.NewDeletionCoordinator(svc, 30*time.Millisecond)
	defer coord.Close()
	v := NewView(nil, svc, coord, &mockNavigator{})
	v.Update(v.Init()())

	start := time.Now()
	_, cmd := v.Update(key("d"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, 3, store.Len())

	v.Update(msg)
	assert.Equal(t, 2, store.Len())
}

// ==================== Misc Tests ====================

func TestView_ReloadKey(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	f.view.Notify("Saved")
	f.view.Update(messages.CVsLoaded{Err: errors.New("boom")})

	_, cmd := f.view.Update(key("r"))

	require.NotNil(t, cmd)
	assert.IsType(t, messages.CVsLoaded{}, cmd())
	assert.NotContains(t, f.view.View(), "Error: boom")
	assert.NotContains(t, f.view.View(), "Saved")
}

func TestView_ErrorOccurred(t *testing.T) {
	f := newFixture(t)

	f.view.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, f.view.Err(), "boom")
}

func TestView_WindowSize(t *testing.T) {
	f := newFixture(t)

	f.view.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, f.view.width)
	assert.Equal(t, 30, f.view.height)
	assert.True(t, f.view.ready)
}

func TestView_RendersTitleAndSearch(t *testing.T) {
	f := newFixture(t, sampleCVs()...)
	f.load(t)

	view := f.view.View()

	assert.Contains(t, view, "My CVs")
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "Backend Engineer")
	assert.Contains(t, view, "3 CVs")
}
