package events

import "github.com/atomicstack/slack-tui/internal/logging"

type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Move(direction, from, to string) {
	logging.Trace("focus.move", map[string]interface{}{"direction": direction, "from": from, "to": to})
}

func (FocusTracer) Enter(pane string) {
	logging.Trace("focus.enter", map[string]interface{}{"pane": pane})
}

func (FocusTracer) Exit(pane string) {
	logging.Trace("focus.exit", map[string]interface{}{"pane": pane})
}
