package events

import "github.com/atomicstack/gitmoji-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Cancelled(stage string) {
	logging.Trace("app.cancel", map[string]interface{}{"stage": stage})
}

func (AppTracer) List(count int) {
	logging.Trace("app.list", map[string]interface{}{"items": count})
}
