// Package handlers exposes the draft engine over HTTP/JSON. Routing and
// payload plumbing only; all draft semantics live in the app layers.
package handlers

import (
	"github.com/castdraft/castdraft/go/internal/group"
	"github.com/castdraft/castdraft/go/internal/queue"
	"github.com/castdraft/castdraft/go/internal/roster"
)

// Handlers holds the application services the HTTP layer dispatches to.
type Handlers struct {
	Groups *group.App
	Queues *queue.App
	Roster *roster.App
}

// New creates the HTTP handler set.
func New(groups *group.App, queues *queue.App, rosterApp *roster.App) *Handlers {
	return &Handlers{
		Groups: groups,
		Queues: queues,
		Roster: rosterApp,
	}
}
