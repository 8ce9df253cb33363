package services

import (
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

// NavigationDispatcher turns dashboard triggers into exactly one
// navigator transition each. It holds no state.
type NavigationDispatcher struct {
	navigator driving.Navigator
}

// NewNavigationDispatcher creates a dispatcher for navigator.
func NewNavigationDispatcher(navigator driving.Navigator) *NavigationDispatcher {
	return &NavigationDispatcher{navigator: navigator}
}

// Create opens the editor for a new CV.
func (d *NavigationDispatcher) Create() {
	d.navigator.GoTo(domain.RouteCreate, "")
}

// Edit opens the editor for the CV with id.
func (d *NavigationDispatcher) Edit(id string) {
	d.navigator.GoTo(domain.RouteEdit, id)
}

// Preview opens the preview of the CV with id.
func (d *NavigationDispatcher) Preview(id string) {
	d.navigator.GoTo(domain.RoutePreview, id)
}
