package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gradsuite/cvdash/internal/core/ports/driving"
	"github.com/gradsuite/cvdash/internal/logger"
)

// Ensure DeletionCoordinator implements the interface.
var _ driving.Deleter = (*DeletionCoordinator)(nil)

// CVDeleter is the store mutation the coordinator commits.
// driven.CVStore satisfies it.
type CVDeleter interface {
	Delete(ctx context.Context, id string) error
}

// AfterFunc runs fn once after d on its own goroutine and returns a
// function that cancels the call if it has not started yet.
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

func timeAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// pendingDelete is one accepted request. Timer callbacks hold on to it
// so a stale callback cannot commit a later request for the same ID.
type pendingDelete struct {
	requested time.Time
	stop      func() bool
}

// DeletionCoordinator runs the two-phase delete: a CV ID is marked
// pending, and only after the grace interval does the store delete it.
// A second request for a pending ID is a no-op, so the store sees at
// most one Delete per accepted request. Requests are not cancellable.
type DeletionCoordinator struct {
	store     CVDeleter
	grace     time.Duration
	afterFunc AfterFunc
	onCommit  func(id string, err error)

	mu      sync.Mutex
	pending map[string]*pendingDelete
	closed  bool
}

// DeletionOption configures a DeletionCoordinator.
type DeletionOption func(*DeletionCoordinator)

// WithAfterFunc replaces time.AfterFunc as the grace timer.
func WithAfterFunc(f AfterFunc) DeletionOption {
	return func(c *DeletionCoordinator) {
		c.afterFunc = f
	}
}

// WithCommitHook registers a function called after each commit with the
// store's result. It runs outside the coordinator lock.
func WithCommitHook(h func(id string, err error)) DeletionOption {
	return func(c *DeletionCoordinator) {
		c.onCommit = h
	}
}

// NewDeletionCoordinator creates a coordinator deleting from store after grace.
func NewDeletionCoordinator(store CVDeleter, grace time.Duration, opts ...DeletionOption) *DeletionCoordinator {
	c := &DeletionCoordinator{
		store:     store,
		grace:     grace,
		afterFunc: timeAfterFunc,
		pending:   make(map[string]*pendingDelete),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GraceInterval returns the delay between request and commit.
func (c *DeletionCoordinator) GraceInterval() time.Duration {
	return c.grace
}

// Begin marks id as pending without scheduling the commit. Callers that
// own their own timer (the TUI uses tea.Tick) call Commit when it fires.
// Returns false if id is already pending or the coordinator is closed.
func (c *DeletionCoordinator) Begin(id string) bool {
	return c.begin(id) != nil
}

func (c *DeletionCoordinator) begin(id string) *pendingDelete {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		logger.Debug("delete %s ignored: coordinator closed", id)
		return nil
	}
	if _, ok := c.pending[id]; ok {
		logger.Debug("delete %s ignored: already pending", id)
		return nil
	}

	p := &pendingDelete{requested: time.Now()}
	c.pending[id] = p
	logger.Debug("delete %s pending for %s", id, c.grace)
	return p
}

// RequestDelete marks id as pending and schedules the commit after the
// grace interval. It returns immediately. The commit runs even if ctx is
// cancelled first; only Close prevents it.
func (c *DeletionCoordinator) RequestDelete(ctx context.Context, id string) bool {
	p := c.begin(id)
	if p == nil {
		return false
	}

	commitCtx := context.WithoutCancel(ctx)
	stop := c.afterFunc(c.grace, func() {
		c.commit(commitCtx, id, p)
	})

	c.mu.Lock()
	if c.pending[id] == p {
		p.stop = stop
	}
	c.mu.Unlock()
	return true
}

// Commit deletes id from the store and clears its pending mark.
// It is a no-op returning false if id is not pending or the coordinator
// has been closed.
func (c *DeletionCoordinator) Commit(ctx context.Context, id string) bool {
	return c.commit(ctx, id, nil)
}

func (c *DeletionCoordinator) commit(ctx context.Context, id string, want *pendingDelete) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		logger.Debug("commit %s dropped: coordinator closed", id)
		return false
	}
	p, ok := c.pending[id]
	if !ok || (want != nil && p != want) {
		c.mu.Unlock()
		return false
	}

	// The store mutation and the pending clear happen under one lock so
	// no reader sees one without the other.
	err := c.store.Delete(ctx, id)
	delete(c.pending, id)
	hook := c.onCommit
	c.mu.Unlock()

	if err != nil {
		logger.Warn("delete %s: store error ignored: %v", id, err)
	} else {
		logger.Debug("delete %s committed after %s", id, time.Since(p.requested).Round(time.Millisecond))
	}
	if hook != nil {
		hook(id, err)
	}
	return true
}

// IsPending reports whether id is in its grace interval.
func (c *DeletionCoordinator) IsPending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	return ok
}

// Pending returns the pending IDs in sorted order.
func (c *DeletionCoordinator) Pending() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Close tears the coordinator down. Outstanding timers are stopped and
// any callback that still fires does nothing. Pending deletes are dropped.
func (c *DeletionCoordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, p := range c.pending {
		if p.stop != nil {
			p.stop()
		}
		logger.Debug("delete %s dropped on close", id)
	}
	clear(c.pending)
}
