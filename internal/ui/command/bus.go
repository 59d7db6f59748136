package command

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/slack-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds a single provider round trip.
const DefaultTimeout = 15 * time.Second

// Runner performs a provider call and converts the outcome into a message.
type Runner func(ctx context.Context) tea.Msg

// Request encapsulates a provider invocation.
type Request struct {
	ID    string
	Label string
	Run   Runner
}

// Bus coordinates the execution of provider calls off the update loop.
type Bus struct {
	timeout time.Duration
}

// New initialises a command bus instance. A non-positive timeout selects
// DefaultTimeout.
func New(timeout time.Duration) *Bus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bus{timeout: timeout}
}

// Execute wraps a provider call into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	timeout := DefaultTimeout
	if b != nil {
		timeout = b.timeout
	}
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msg := req.Run(ctx)
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
