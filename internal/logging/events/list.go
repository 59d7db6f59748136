package events

import "github.com/atomicstack/slack-tui/internal/logging"

type ListTracer struct{}

var List = ListTracer{}

func (ListTracer) Cursor(listID string, selected int) {
	logging.Trace("list.cursor", map[string]interface{}{"list": listID, "selected": selected})
}

func (ListTracer) Commit(listID, key, label string) {
	logging.Trace("list.commit", map[string]interface{}{"list": listID, "key": key, "label": label})
}

func (ListTracer) Refresh(listID string, count int) {
	logging.Trace("list.refresh", map[string]interface{}{"list": listID, "count": count})
}
