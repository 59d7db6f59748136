package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/slack-tui/internal/logging/events"
	"github.com/atomicstack/slack-tui/internal/pane"
	uistate "github.com/atomicstack/slack-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg applies the dispatch priority: quit, then escape, then the
// handler for whichever pane is active.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	active := m.focus.Active()
	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Quit) && active != pane.Input:
		return m.quit()
	case key.Matches(keyMsg, m.keys.Escape):
		m.release()
		return nil
	}
	switch active {
	case pane.Channels:
		return handleListKey(m, m.channels, keyMsg)
	case pane.Users:
		return handleListKey(m, m.users, keyMsg)
	case pane.Input:
		return m.handleInputKey(keyMsg)
	case pane.None:
		return m.handleNavigationKey(keyMsg)
	default:
		// Teams and the reserved panes capture focus but have no keys of their own.
		return nil
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	events.App.Quit(m.focus.Active().String())
	return tea.Quit
}

// release drops the captured pane and any in-progress list selection.
func (m *Model) release() {
	exited := m.focus.Exit()
	m.channels.Clear()
	m.users.Clear()
	events.Focus.Exit(exited.String())
}

func (m *Model) handleNavigationKey(msg tea.KeyMsg) tea.Cmd {
	var dir pane.Direction
	switch {
	case key.Matches(msg, m.keys.Up):
		dir = pane.Up
	case key.Matches(msg, m.keys.Down):
		dir = pane.Down
	case key.Matches(msg, m.keys.Left):
		dir = pane.Left
	case key.Matches(msg, m.keys.Right):
		dir = pane.Right
	case key.Matches(msg, m.keys.Enter):
		entered := m.focus.Enter()
		events.Focus.Enter(entered.String())
		return nil
	default:
		return nil
	}
	from := m.focus.Hovered()
	if m.focus.Move(dir) {
		events.Focus.Move(dir.String(), from.String(), m.focus.Hovered().String())
	}
	return nil
}

func handleListKey[T uistate.Item](m *Model, list *uistate.List[T], msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if list.MoveUp() {
			traceListCursor(list)
		}
	case key.Matches(msg, m.keys.Down):
		if list.MoveDown() {
			traceListCursor(list)
		}
	case key.Matches(msg, m.keys.Enter):
		commit, ok := list.Commit()
		if !ok {
			return nil
		}
		events.List.Commit(list.ID, commit.Key, commit.Label)
		return m.requestConversation(commit)
	}
	return nil
}

func traceListCursor[T uistate.Item](list *uistate.List[T]) {
	idx, ok := list.Selected()
	if !ok {
		idx = -1
	}
	events.List.Cursor(list.ID, idx)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.sendInput()
	case key.Matches(msg, m.keys.Backspace):
		if m.input.Backspace() {
			events.Input.Backspace(m.input.Index(), m.input.CursorColumn())
		}
		return nil
	case key.Matches(msg, m.keys.Left):
		if m.input.MoveLeft() {
			events.Input.Cursor(m.input.Index(), m.input.CursorColumn())
		}
		return nil
	case key.Matches(msg, m.keys.Right):
		if m.input.MoveRight() {
			events.Input.Cursor(m.input.Index(), m.input.CursorColumn())
		}
		return nil
	}
	var text string
	switch msg.Type {
	case tea.KeySpace:
		text = " "
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		text = singleLine(msg.Runes)
	default:
		return nil
	}
	if text == "" {
		return nil
	}
	if m.input.InsertText(text) {
		events.Input.Insert(text, m.input.Index(), m.input.CursorColumn())
	}
	return nil
}

// singleLine flattens runes for the one-line Input buffer. Line breaks and
// tabs from a paste become spaces and other control runes are dropped.
func singleLine(runes []rune) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, string(runes))
}
