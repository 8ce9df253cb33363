// Package tui provides the interactive CV dashboard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

// Ports aggregates the driving ports and event sources the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// CV manages the CV collection.
	CV driving.CVService

	// Deleter runs grace-period deletes.
	Deleter driving.Deleter

	// Changes signals that the store was modified outside the TUI.
	// Optional; nil disables external reloads.
	Changes <-chan struct{}
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(cv driving.CVService, deleter driving.Deleter) *Ports {
	return &Ports{
		CV:      cv,
		Deleter: deleter,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.CV == nil {
		return ErrMissingCVService
	}
	if p.Deleter == nil {
		return ErrMissingDeleter
	}
	return nil
}
