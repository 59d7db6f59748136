package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/slack-tui/internal/chat"
	"github.com/atomicstack/slack-tui/internal/logging"
	"github.com/atomicstack/slack-tui/internal/logging/events"
	"github.com/atomicstack/slack-tui/internal/ui/command"
	uistate "github.com/atomicstack/slack-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoProvider = errors.New("no chat provider configured")

// messagesLoadedMsg mirrors the async history fetch response.
type messagesLoadedMsg struct {
	conversation chat.Conversation
	messages     []chat.Message
	err          error
}

// messageSentMsg mirrors the async send response.
type messageSentMsg struct {
	conversation chat.Conversation
	text         string
	err          error
}

// requestConversation marks commit as the pending conversation and fetches
// its history. The displayed conversation is not touched until the fetch
// succeeds.
func (m *Model) requestConversation(commit uistate.Commit) tea.Cmd {
	conv := chat.Conversation{ID: commit.Key, Name: commit.Label}
	m.loading = true
	m.pendingID = conv.ID
	m.pendingLabel = conv.Name
	m.errMsg = ""
	events.Conversation.Request(conv.ID, conv.Name)
	return m.loadMessagesCmd(conv)
}

func (m *Model) loadMessagesCmd(conv chat.Conversation) tea.Cmd {
	provider := m.provider
	return m.bus.Execute(command.Request{
		ID:    "messages:" + conv.ID,
		Label: conv.Name,
		Run: func(ctx context.Context) tea.Msg {
			if provider == nil {
				return messagesLoadedMsg{conversation: conv, err: errNoProvider}
			}
			msgs, err := provider.FetchMessages(ctx, conv.ID)
			return messagesLoadedMsg{conversation: conv, messages: msgs, err: err}
		},
	})
}

func (m *Model) handleMessagesLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(messagesLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.conversation.ID != m.pendingID {
		events.Conversation.Stale(loaded.conversation.ID)
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if loaded.err != nil {
		// The previous conversation and its messages stay on screen.
		m.errMsg = describeError(loaded.err)
		logging.Error(loaded.err)
		events.Conversation.Error(loaded.conversation.ID, loaded.err)
		return nil
	}
	m.conversation = loaded.conversation
	m.messages = loaded.messages
	m.errMsg = ""
	events.Conversation.Change(m.conversation.ID, m.conversation.Name, len(m.messages))
	return nil
}

func (m *Model) sendInput() tea.Cmd {
	text := m.input.Text()
	if strings.TrimSpace(text) == "" || m.sending {
		return nil
	}
	if m.conversation.IsZero() {
		m.errMsg = "select a channel or user before sending"
		return nil
	}
	m.sending = true
	conv := m.conversation
	provider := m.provider
	events.Input.Send(conv.ID, m.input.Len())
	return m.bus.Execute(command.Request{
		ID:    "send:" + conv.ID,
		Label: conv.Name,
		Run: func(ctx context.Context) tea.Msg {
			if provider == nil {
				return messageSentMsg{conversation: conv, text: text, err: errNoProvider}
			}
			ok, err := provider.SendMessage(ctx, conv.ID, text)
			if err == nil && !ok {
				err = fmt.Errorf("message to %s was not accepted", conv.Name)
			}
			return messageSentMsg{conversation: conv, text: text, err: err}
		},
	})
}

func (m *Model) handleMessageSentMsg(msg tea.Msg) tea.Cmd {
	sent, ok := msg.(messageSentMsg)
	if !ok {
		return nil
	}
	m.sending = false
	if sent.err != nil {
		m.errMsg = describeError(sent.err)
		logging.Error(sent.err)
		return nil
	}
	m.input.Clear()
	m.errMsg = ""
	if m.pendingID != "" || sent.conversation.ID != m.conversation.ID {
		return nil
	}
	m.loading = true
	m.pendingID = m.conversation.ID
	m.pendingLabel = m.conversation.Name
	return m.loadMessagesCmd(m.conversation)
}

// describeError names the failed provider operation when there is one.
func describeError(err error) string {
	var perr *chat.ProviderError
	if errors.As(err, &perr) {
		return fmt.Sprintf("%s failed: %v", perr.Op, perr.Err)
	}
	return err.Error()
}
