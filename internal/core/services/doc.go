// Package services implements the driving port interfaces and the
// collection-management core of the dashboard:
//
//   - FilterCVs / CollectionView: incremental search over the collection
//   - DeletionCoordinator: grace-period deletes keyed by CV ID
//   - NavigationDispatcher: create/edit/preview view transitions
//
// Services are pure Go and talk to infrastructure only through driven ports.
package services
