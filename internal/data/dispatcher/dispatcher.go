package dispatcher

import (
	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/chat"
	"github.com/atomicstack/slack-tui/internal/state"
)

// Result reports which snapshots an event replaced.
type Result struct {
	TeamsUpdated    bool
	ChannelsUpdated bool
	UsersUpdated    bool
}

// Dispatcher routes backend events into the directory store.
type Dispatcher struct {
	directory state.DirectoryStore
}

func New(d state.DirectoryStore) *Dispatcher {
	return &Dispatcher{directory: d}
}

// Handle applies evt. Failed polls leave the previous snapshot in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindTeams:
		if teams, ok := evt.Data.([]string); ok {
			d.directory.SetTeams(teams)
			res.TeamsUpdated = true
		}
	case backend.KindChannels:
		if channels, ok := evt.Data.([]chat.Channel); ok {
			d.directory.SetChannels(channels)
			res.ChannelsUpdated = true
		}
	case backend.KindUsers:
		if users, ok := evt.Data.([]chat.User); ok {
			d.directory.SetUsers(users)
			res.UsersUpdated = true
		}
	}
	return res
}
