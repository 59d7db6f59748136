package state

import "github.com/atomicstack/slack-tui/internal/chat"

// DirectoryStore keeps the latest channel and user snapshots delivered by the
// backend watcher.
type DirectoryStore interface {
	Teams() []string
	SetTeams([]string)
	Channels() []chat.Channel
	SetChannels([]chat.Channel)
	Users() []chat.User
	SetUsers([]chat.User)
}

type directoryStore struct {
	teams    []string
	channels []chat.Channel
	users    []chat.User
}

func NewDirectoryStore() DirectoryStore {
	return &directoryStore{}
}

func (s *directoryStore) Teams() []string {
	return cloneSlice(s.teams)
}

func (s *directoryStore) SetTeams(teams []string) {
	s.teams = cloneSlice(teams)
}

func (s *directoryStore) Channels() []chat.Channel {
	return cloneSlice(s.channels)
}

func (s *directoryStore) SetChannels(channels []chat.Channel) {
	s.channels = cloneSlice(channels)
}

func (s *directoryStore) Users() []chat.User {
	return cloneSlice(s.users)
}

func (s *directoryStore) SetUsers(users []chat.User) {
	s.users = cloneSlice(users)
}

func cloneSlice[T any](entries []T) []T {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]T, len(entries))
	copy(dup, entries)
	return dup
}
