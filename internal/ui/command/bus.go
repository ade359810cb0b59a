package command

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/focusring/internal/logging/events"
)

// Request encapsulates a form action invocation.
type Request struct {
	ID     string
	Label  string
	Values map[string]string
}

// Result is delivered back to the model once an action ran.
type Result struct {
	ID     string
	Values map[string]string
	Err    error
}

// Bus coordinates the execution of form actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	return func() tea.Msg {
		if req.ID == "" {
			return Result{Err: fmt.Errorf("action %q has no id", req.Label)}
		}
		events.UI.Submit(req.ID, req.Values)
		return Result{ID: req.ID, Values: req.Values}
	}
}
