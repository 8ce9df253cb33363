package tui

import "errors"

// ErrMissingCVService is returned when the CV service is not provided.
var ErrMissingCVService = errors.New("tui: cv service is required")

// ErrMissingDeleter is returned when the deletion coordinator is not provided.
var ErrMissingDeleter = errors.New("tui: deleter is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
