// Package mcp provides an MCP (Model Context Protocol) server adapter for cvdash.
// It lets AI assistants search, read and manage the CV collection.
package mcp

import "errors"

// ErrMissingCVService is returned when the CV service is not provided.
var ErrMissingCVService = errors.New("mcp: cv service is required")
