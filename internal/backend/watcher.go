package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/slack-tui/internal/chat"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindTeams Kind = iota
	KindChannels
	KindUsers
)

func (k Kind) String() string {
	switch k {
	case KindTeams:
		return "teams"
	case KindChannels:
		return "channels"
	case KindUsers:
		return "users"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher fetches the channel, user and team lists once at start and then
// every interval, publishing each result as an Event. An interval of zero
// disables the periodic refresh.
type Watcher struct {
	provider chat.Provider
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls provider every interval.
func NewWatcher(provider chat.Provider, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		provider: provider,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	// The Web API rate-limits per method, so each poller gets its own throttle.
	teams := newThrottle(time.Second)
	channels := newThrottle(time.Second)
	users := newThrottle(time.Second)
	w.start(KindTeams, func(ctx context.Context) (interface{}, error) {
		if !teams.wait(ctx) {
			return nil, ctx.Err()
		}
		return provider.FetchTeams(ctx)
	})
	w.start(KindChannels, func(ctx context.Context) (interface{}, error) {
		if !channels.wait(ctx) {
			return nil, ctx.Err()
		}
		return provider.FetchChannels(ctx)
	})
	w.start(KindUsers, func(ctx context.Context) (interface{}, error) {
		if !users.wait(ctx) {
			return nil, ctx.Err()
		}
		return provider.FetchUsers(ctx)
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) start(kind Kind, fetch func(context.Context) (interface{}, error)) {
	w.wg.Add(1)
	go w.poll(kind, fetch)
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
