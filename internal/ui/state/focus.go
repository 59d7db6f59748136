package state

import "github.com/atomicstack/slack-tui/internal/pane"

// Deselecter is implemented by controllers whose selection is dropped when
// their pane loses focus.
type Deselecter interface {
	Clear() bool
}

// Focus tracks the hovered pane (moved by directional keys) and the active
// pane (which has captured keyboard input). Active is only ever set from
// Hovered, and Hovered is never pane.None.
type Focus struct {
	hovered  pane.Pane
	active   pane.Pane
	bindings map[pane.Pane]Deselecter
}

// NewFocus returns the initial state: Channels hovered, nothing active.
func NewFocus() *Focus {
	return &Focus{
		hovered:  pane.Channels,
		active:   pane.None,
		bindings: make(map[pane.Pane]Deselecter),
	}
}

// Bind ties a controller to a pane so Exit can clear its selection.
func (f *Focus) Bind(p pane.Pane, d Deselecter) {
	if d == nil {
		delete(f.bindings, p)
		return
	}
	f.bindings[p] = d
}

// Hovered returns the pane directional keys currently move.
func (f *Focus) Hovered() pane.Pane { return f.hovered }

// Active returns the captured pane, or pane.None.
func (f *Focus) Active() pane.Pane { return f.active }

// Move applies the adjacency table to the hovered pane. It does nothing
// while a pane is active.
func (f *Focus) Move(d pane.Direction) bool {
	if f.active != pane.None {
		return false
	}
	next := pane.Next(f.hovered, d)
	if next == f.hovered {
		return false
	}
	f.hovered = next
	return true
}

// Enter captures input on the hovered pane.
func (f *Focus) Enter() pane.Pane {
	f.active = f.hovered
	return f.active
}

// Exit releases the active pane and clears the selection of the controller
// bound to it. It returns the pane that was active.
func (f *Focus) Exit() pane.Pane {
	exited := f.active
	f.active = pane.None
	if d, ok := f.bindings[exited]; ok {
		d.Clear()
	}
	return exited
}
