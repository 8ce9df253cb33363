package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradsuite/cvdash/internal/adapters/driving/tui/messages"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

// router is the dashboard's Navigator. Transitions are queued and turned
// into Navigate messages once the current update returns, so a view
// never switches while it is still handling a key.
type router struct {
	mu      sync.Mutex
	pending []messages.Navigate
}

var _ driving.Navigator = (*router)(nil)

// GoTo queues a transition to route.
func (r *router) GoTo(route domain.Route, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, messages.Navigate{Route: route, ID: id})
}

// drain returns the queued transitions as commands, oldest first.
func (r *router) drain() tea.Cmd {
	r.mu.Lock()
	queued := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(queued))
	for _, nav := range queued {
		cmds = append(cmds, func() tea.Msg { return nav })
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}
