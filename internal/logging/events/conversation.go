package events

import "github.com/atomicstack/slack-tui/internal/logging"

type ConversationTracer struct{}

var Conversation = ConversationTracer{}

func (ConversationTracer) Request(id, name string) {
	logging.Trace("conversation.request", map[string]interface{}{"id": id, "name": name})
}

func (ConversationTracer) Change(id, name string, messages int) {
	logging.Trace("conversation.change", map[string]interface{}{"id": id, "name": name, "messages": messages})
}

func (ConversationTracer) Stale(id string) {
	logging.Trace("conversation.stale", map[string]interface{}{"id": id})
}

func (ConversationTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("conversation.error", map[string]interface{}{"id": id, "error": err.Error()})
}
