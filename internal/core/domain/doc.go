// Package domain defines the core business entities for cvdash.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CV: A résumé record in the user's collection
//   - Route: A view transition requested from the navigator
//   - Settings: Dashboard and storage configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
