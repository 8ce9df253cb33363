package driving

import "github.com/gradsuite/cvdash/internal/core/domain"

// Navigator performs view transitions. It holds no view logic of its own.
type Navigator interface {
	// GoTo requests a transition to route. id is empty for RouteCreate.
	GoTo(route domain.Route, id string)
}
