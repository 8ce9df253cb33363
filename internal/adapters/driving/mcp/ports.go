package mcp

import (
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// CV manages the CV collection.
	CV driving.CVService

	// Deleter runs grace-period deletes. Optional; without it the
	// delete_cv tool is not registered.
	Deleter driving.Deleter
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.CV == nil {
		return ErrMissingCVService
	}
	return nil
}
