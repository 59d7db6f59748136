package ui

import (
	"context"
	"errors"
	"sync"

	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/chat"
	tea "github.com/charmbracelet/bubbletea"
)

var errBoom = errors.New("boom")

type fakeProvider struct {
	mu       sync.Mutex
	history  map[string][]chat.Message
	fetchErr error
	sendErr  error
	rejected bool
	fetched  []string
	sent     []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{history: map[string][]chat.Message{}}
}

func (f *fakeProvider) FetchTeams(context.Context) ([]string, error) {
	return []string{"acme"}, nil
}

func (f *fakeProvider) FetchChannels(context.Context) ([]chat.Channel, error) {
	return testChannels(), nil
}

func (f *fakeProvider) FetchUsers(context.Context) ([]chat.User, error) {
	return nil, nil
}

func (f *fakeProvider) FetchMessages(_ context.Context, id string) ([]chat.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	if f.fetchErr != nil {
		return nil, chat.WrapError("conversations.history", f.fetchErr)
	}
	return append([]chat.Message(nil), f.history[id]...), nil
}

func (f *fakeProvider) SendMessage(_ context.Context, id, text string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return false, chat.WrapError("chat.postMessage", f.sendErr)
	}
	if f.rejected {
		return false, nil
	}
	f.sent = append(f.sent, id+":"+text)
	f.history[id] = append(f.history[id], chat.Message{Author: "me", Text: text, Timestamp: "1700000100.000000"})
	return true, nil
}

func (f *fakeProvider) fetchedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

func testChannels() []chat.Channel {
	return []chat.Channel{{ID: "C1", Name: "general"}, {ID: "C2", Name: "random"}}
}

func newTestHarness(p chat.Provider) *Harness {
	return NewHarness(NewModel(Options{Provider: p, Width: 80, Height: 24}))
}

func channelsEvent(channels ...chat.Channel) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindChannels, Data: channels}}
}

func teamsEvent(teams ...string) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindTeams, Data: teams}}
}

func usersEvent(users ...chat.User) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindUsers, Data: users}}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
