package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/logging"
	"github.com/atomicstack/slack-tui/internal/logging/events"
	uistate "github.com/atomicstack/slack-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent replaces list items wholesale. List controllers keep
// their selection only while it still indexes a valid item.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = fmt.Sprintf("%s: %v", evt.Kind, evt.Err)
		events.Backend.Error(evt.Kind.String(), evt.Err)
		logging.Error(evt.Err)
		return nil
	}

	res := m.dispatcher.Handle(evt)
	var cmd tea.Cmd
	if res.TeamsUpdated {
		events.Backend.Refresh(evt.Kind.String(), len(m.directory.Teams()))
	}
	if res.ChannelsUpdated {
		m.channels.SetItems(m.directory.Channels())
		events.List.Refresh(m.channels.ID, m.channels.Len())
		cmd = m.openInitialChannel()
	}
	if res.UsersUpdated {
		m.users.SetItems(m.directory.Users())
		events.List.Refresh(m.users.ID, m.users.Len())
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	return cmd
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}

// openInitialChannel loads the channel named on the command line the first
// time the channel list arrives, as if it had been committed from the list.
func (m *Model) openInitialChannel() tea.Cmd {
	query := strings.TrimSpace(m.initialChannel)
	if query == "" || m.channels.Len() == 0 {
		return nil
	}
	m.initialChannel = ""
	idx := matchLabel(query, m.channels.Labels())
	if idx < 0 {
		m.errMsg = fmt.Sprintf("no channel matches %q", query)
		return nil
	}
	ch := m.channels.Items()[idx]
	return m.requestConversation(uistate.Commit{Key: ch.Key(), Label: ch.Label()})
}

// matchLabel prefers an exact case-insensitive match and falls back to the
// closest fuzzy match. It returns -1 when nothing matches.
func matchLabel(query string, labels []string) int {
	query = strings.TrimPrefix(query, "#")
	for i, label := range labels {
		if strings.EqualFold(label, query) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex
}
