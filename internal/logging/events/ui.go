package events

import "github.com/atomicstack/tabdeck/internal/logging"

type TabTracer struct{}

type LoopTracer struct{}

var (
	Tab  = TabTracer{}
	Loop = LoopTracer{}
)

func (TabTracer) Select(from, to int, label string) {
	logging.Trace("tab.select", map[string]interface{}{"from": from, "to": to, "label": label})
}

func (TabTracer) Ignore(key string) {
	logging.Trace("tab.ignore", map[string]interface{}{"key": key})
}

func (LoopTracer) Resize(width, height int) {
	logging.Trace("loop.resize", map[string]interface{}{"width": width, "height": height})
}

func (LoopTracer) Quit(iterations int) {
	logging.Trace("loop.quit", map[string]interface{}{"iterations": iterations})
}

func (LoopTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("loop.error", map[string]interface{}{"error": err.Error()})
}
