package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

type navCall struct {
	route domain.Route
	id    string
}

// mockNavigator records every GoTo call.
type mockNavigator struct {
	calls []navCall
}

func (m *mockNavigator) GoTo(route domain.Route, id string) {
	m.calls = append(m.calls, navCall{route: route, id: id})
}

func TestNavigationDispatcher(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(d *NavigationDispatcher)
		want    navCall
	}{
		{"create", func(d *NavigationDispatcher) { d.Create() }, navCall{domain.RouteCreate, ""}},
		{"edit", func(d *NavigationDispatcher) { d.Edit("cv-1") }, navCall{domain.RouteEdit, "cv-1"}},
		{"preview", func(d *NavigationDispatcher) { d.Preview("cv-2") }, navCall{domain.RoutePreview, "cv-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &mockNavigator{}
			d := NewNavigationDispatcher(nav)

			tt.trigger(d)

			assert.Equal(t, []navCall{tt.want}, nav.calls)
		})
	}
}

func TestNavigationDispatcher_OneTransitionPerTrigger(t *testing.T) {
	nav := &mockNavigator{}
	d := NewNavigationDispatcher(nav)

	d.Edit("a")
	d.Edit("a")
	d.Preview("a")

	assert.Len(t, nav.calls, 3)
}
