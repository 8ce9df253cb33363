package driving

import (
	"context"
	"time"
)

// Deleter runs grace-period deletes. A CV ID moves from idle to pending
// on Begin and is removed from the store on Commit.
type Deleter interface {
	// Begin marks id as pending. Returns false if it already is, or if
	// the deleter has been closed.
	Begin(id string) bool

	// Commit deletes a pending id from the store and clears the mark.
	// Returns false when there was nothing to commit.
	Commit(ctx context.Context, id string) bool

	// RequestDelete is Begin plus a scheduled Commit after the grace interval.
	RequestDelete(ctx context.Context, id string) bool

	// IsPending reports whether id is in its grace interval.
	IsPending(id string) bool

	// Pending returns every pending ID in sorted order.
	Pending() []string

	// GraceInterval returns the delay between request and commit.
	GraceInterval() time.Duration

	// Close drops pending deletes and stops their timers.
	Close()
}
