package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/chat"
	"github.com/atomicstack/slack-tui/internal/pane"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelInitialFocus(t *testing.T) {
	m := NewModel(Options{})
	if got := m.Focus().Hovered(); got != pane.Channels {
		t.Fatalf("expected Channels hovered, got %s", got)
	}
	if got := m.Focus().Active(); got != pane.None {
		t.Fatalf("expected nothing active, got %s", got)
	}
	if _, ok := m.Channels().Selected(); ok {
		t.Fatalf("expected no channel selection")
	}
}

func TestHoverEnterAndEscape(t *testing.T) {
	h := newTestHarness(newFakeProvider())

	h.Send(press(tea.KeyRight))
	if got := h.Model().Focus().Hovered(); got != pane.Input {
		t.Fatalf("expected Input hovered, got %s", got)
	}
	h.Send(press(tea.KeyEnter))
	if got := h.Model().Focus().Active(); got != pane.Input {
		t.Fatalf("expected Input active, got %s", got)
	}
	h.Send(press(tea.KeyEsc))
	if got := h.Model().Focus().Active(); got != pane.None {
		t.Fatalf("expected nothing active, got %s", got)
	}
	h.Send(press(tea.KeyEsc))
	if got := h.Model().Focus().Active(); got != pane.None {
		t.Fatalf("expected repeated escape to be idempotent, got %s", got)
	}
}

func TestArrowsDoNotMoveHoverWhileActive(t *testing.T) {
	h := newTestHarness(newFakeProvider())
	h.Send(channelsEvent(testChannels()...))
	h.Keys(press(tea.KeyEnter), press(tea.KeyRight), press(tea.KeyLeft))
	if got := h.Model().Focus().Hovered(); got != pane.Channels {
		t.Fatalf("expected hover to stay on Channels, got %s", got)
	}
}

func TestQuitOutsideInput(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.Quitting() {
		t.Fatalf("expected model to be quitting")
	}
	if view := m.View(); view != "" {
		t.Fatalf("expected empty view after quit, got %q", view)
	}
}

func TestQuitKeyIsTextInsideInput(t *testing.T) {
	h := newTestHarness(newFakeProvider())
	h.Keys(press(tea.KeyRight), press(tea.KeyEnter))
	h.Type("quiq")
	m := h.Model()
	if m.Quitting() {
		t.Fatalf("q must not quit while Input is active")
	}
	if got := m.Input().Text(); got != "quiq" {
		t.Fatalf("expected typed text, got %q", got)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected ctrl+c to quit from Input")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestQuitRequiresNoModifiers(t *testing.T) {
	m := NewModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true})
	if cmd != nil || m.Quitting() {
		t.Fatalf("alt+q must not quit")
	}
}

func TestTickOnlyRearmsTimer(t *testing.T) {
	m := NewModel(Options{})
	hovered, active := m.Focus().Hovered(), m.Focus().Active()
	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatalf("expected tick to be re-armed")
	}
	if m.Focus().Hovered() != hovered || m.Focus().Active() != active {
		t.Fatalf("tick must not change focus")
	}
	if m.ticks != 1 {
		t.Fatalf("expected one tick, got %d", m.ticks)
	}
}

func TestInitSchedulesTick(t *testing.T) {
	m := NewModel(Options{})
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected Init to schedule a tick")
	}
}

func TestWindowSizeHonoursFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 60})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 60 {
		t.Fatalf("expected fixed width 60, got %d", m.width)
	}
	if m.height != 30 {
		t.Fatalf("expected height 30, got %d", m.height)
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m := NewModel(Options{})
	if _, cmd := m.Update(struct{}{}); cmd != nil {
		t.Fatalf("expected unknown message to be ignored")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected nil handler for nil msg")
	}
	if m.handlerFor(&backendDoneMsg{}) == nil {
		t.Fatalf("expected pointer messages to resolve")
	}
}

func TestBackendEventsReplaceLists(t *testing.T) {
	provider := newFakeProvider()
	h := newTestHarness(provider)
	h.Send(channelsEvent(
		chat.Channel{ID: "C1", Name: "general"},
		chat.Channel{ID: "C2", Name: "random"},
		chat.Channel{ID: "C3", Name: "ops"},
	))
	h.Keys(press(tea.KeyEnter), press(tea.KeyDown), press(tea.KeyDown), press(tea.KeyDown))
	if idx, _ := h.Model().Channels().Selected(); idx != 2 {
		t.Fatalf("expected selection 2, got %d", idx)
	}

	h.Send(channelsEvent(chat.Channel{ID: "C1", Name: "general"}))
	idx, ok := h.Model().Channels().Selected()
	if !ok || idx != 0 {
		t.Fatalf("expected selection clamped to 0, got %d %v", idx, ok)
	}

	h.Send(channelsEvent())
	if _, ok := h.Model().Channels().Selected(); ok {
		t.Fatalf("expected empty list to clear selection")
	}
	h.Send(press(tea.KeyEnter))
	if got := provider.fetchedIDs(); len(got) != 0 {
		t.Fatalf("expected no fetch from empty list, got %v", got)
	}
}

func TestBackendErrorShownInStatus(t *testing.T) {
	h := newTestHarness(newFakeProvider())
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindUsers, Err: chat.WrapError("users.list", errBoom)}})
	if !strings.Contains(h.View(), "Refresh failed") {
		t.Fatalf("expected refresh failure in status line")
	}
	h.Send(usersEvent(chat.User{ID: "U1", Name: "ada"}))
	if strings.Contains(h.View(), "Refresh failed") {
		t.Fatalf("expected status to clear after a successful refresh")
	}
	if h.Model().Users().Len() != 1 {
		t.Fatalf("expected users to be loaded")
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	m := NewModel(Options{Watcher: &backend.Watcher{}})
	m.Update(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected watcher to be detached")
	}
}
