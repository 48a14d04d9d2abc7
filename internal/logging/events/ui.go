package events

import "github.com/atomicstack/servarr-dash/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type SearchTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Search = SearchTracer{}
	Action = ActionTracer{}
)

func (UITracer) Route(from, to string) {
	logging.Trace("ui.route", map[string]any{"from": from, "to": to})
}

func (UITracer) Key(route, key string) {
	logging.Trace("ui.key", map[string]any{"route": route, "key": key})
}

func (UITracer) Help(visible bool) {
	logging.Trace("ui.help", map[string]any{"visible": visible})
}

func (FilterTracer) Apply(route, filter string, matched bool) {
	logging.Trace("filter.apply", map[string]any{"route": route, "filter": filter, "matched": matched})
}

func (FilterTracer) Cleared(route string) {
	logging.Trace("filter.clear", map[string]any{"route": route})
}

func (SearchTracer) Apply(route, search string, matched bool) {
	logging.Trace("search.apply", map[string]any{"route": route, "search": search, "matched": matched})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]any{"error": err.Error()})
}

func (ActionTracer) Confirm(route, action string) {
	logging.Trace("action.confirm", map[string]any{"route": route, "action": action})
}

func (UITracer) Quit(key string) {
	logging.Trace("ui.quit", map[string]any{"key": key})
}
