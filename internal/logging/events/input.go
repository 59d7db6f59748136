package events

import "github.com/atomicstack/slack-tui/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Insert(text string, index, column int) {
	logging.Trace("input.insert", map[string]interface{}{"text": text, "index": index, "column": column})
}

func (InputTracer) Backspace(index, column int) {
	logging.Trace("input.backspace", map[string]interface{}{"index": index, "column": column})
}

func (InputTracer) Cursor(index, column int) {
	logging.Trace("input.cursor", map[string]interface{}{"index": index, "column": column})
}

func (InputTracer) Send(conversation string, length int) {
	logging.Trace("input.send", map[string]interface{}{"conversation": conversation, "length": length})
}
