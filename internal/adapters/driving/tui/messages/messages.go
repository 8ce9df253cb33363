// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/gradsuite/cvdash/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the CV collection with search.
	ViewDashboard ViewType = iota
	// ViewEditor creates or edits a CV.
	ViewEditor
	// ViewPreview shows a single CV.
	ViewPreview
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewEditor:
		return "editor"
	case ViewPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Navigate is a navigator transition queued by the dashboard.
type Navigate struct {
	Route domain.Route
	ID    string
}

// CVsLoaded carries the collection as the store returned it.
type CVsLoaded struct {
	CVs []domain.CV
	Err error
}

// CVLoaded carries a single CV for the editor or preview.
type CVLoaded struct {
	CV  *domain.CV
	Err error
}

// CVSaved signals the editor finished a create or update.
type CVSaved struct {
	CV  *domain.CV
	Err error
}

// GraceElapsed signals the grace interval for a pending delete ran out.
// The dashboard commits the delete when it handles the message.
type GraceElapsed struct {
	ID string
}

// CollectionChanged signals the store was mutated outside this process.
type CollectionChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
