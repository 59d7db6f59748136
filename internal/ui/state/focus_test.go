package state

import (
	"testing"

	"github.com/atomicstack/slack-tui/internal/pane"
)

func TestFocusInitialState(t *testing.T) {
	f := NewFocus()
	if f.Hovered() != pane.Channels || f.Active() != pane.None {
		t.Fatalf("unexpected initial state %s/%s", f.Hovered(), f.Active())
	}
}

func TestFocusMoveEnterExit(t *testing.T) {
	f := NewFocus()
	if !f.Move(pane.Right) {
		t.Fatalf("expected move right from channels")
	}
	if f.Hovered() != pane.Input {
		t.Fatalf("expected hovered input, got %s", f.Hovered())
	}
	if got := f.Enter(); got != pane.Input {
		t.Fatalf("expected active input, got %s", got)
	}
	if f.Move(pane.Left) {
		t.Fatalf("expected hover movement to be suppressed while active")
	}
	if f.Hovered() != pane.Input {
		t.Fatalf("expected hovered to stay on input, got %s", f.Hovered())
	}
	if exited := f.Exit(); exited != pane.Input {
		t.Fatalf("expected exit from input, got %s", exited)
	}
	if f.Active() != pane.None {
		t.Fatalf("expected no active pane, got %s", f.Active())
	}
	if exited := f.Exit(); exited != pane.None || f.Active() != pane.None {
		t.Fatalf("expected second exit to be idempotent")
	}
}

func TestFocusEnterIsIdempotent(t *testing.T) {
	f := NewFocus()
	f.Enter()
	f.Enter()
	if f.Active() != pane.Channels {
		t.Fatalf("expected channels active, got %s", f.Active())
	}
}

func TestFocusUnmappedMoveIsNoOp(t *testing.T) {
	f := NewFocus()
	if f.Move(pane.Left) {
		t.Fatalf("expected left from channels to be a no-op")
	}
	if f.Hovered() != pane.Channels {
		t.Fatalf("expected hovered unchanged, got %s", f.Hovered())
	}
}

func TestFocusExitClearsBoundSelection(t *testing.T) {
	channels := newTestList("C1", "general", "C2", "random")
	users := newTestList("U1", "ada")
	f := NewFocus()
	f.Bind(pane.Channels, channels)
	f.Bind(pane.Users, users)
	users.MoveDown()

	f.Enter()
	channels.MoveDown()
	f.Exit()
	if _, ok := channels.Selected(); ok {
		t.Fatalf("expected channel selection cleared on exit")
	}
	if _, ok := users.Selected(); !ok {
		t.Fatalf("expected user selection untouched by channel exit")
	}
}
