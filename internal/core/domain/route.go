package domain

// Route identifies a view the navigator can transition to.
type Route int

const (
	// RouteCreate opens the editor for a new CV.
	RouteCreate Route = iota
	// RouteEdit opens the editor for an existing CV.
	RouteEdit
	// RoutePreview opens the read-only preview of an existing CV.
	RoutePreview
)

// String returns the string representation of the route.
func (r Route) String() string {
	switch r {
	case RouteCreate:
		return "create"
	case RouteEdit:
		return "edit"
	case RoutePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// RequiresID reports whether the route targets an existing CV.
func (r Route) RequiresID() bool {
	return r == RouteEdit || r == RoutePreview
}
