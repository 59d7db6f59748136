package events

import "github.com/atomicstack/slack-tui/internal/logging"

type BackendTracer struct{}

type CommandTracer struct{}

var (
	Backend = BackendTracer{}
	Command = CommandTracer{}
)

func (BackendTracer) Refresh(kind string, count int) {
	logging.Trace("backend.refresh", map[string]interface{}{"kind": kind, "count": count})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
