package events

import "github.com/atomicstack/focusring/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(key, outcome, focused string) {
	logging.Trace("ui.key", map[string]interface{}{
		"key":     key,
		"outcome": outcome,
		"focused": focused,
	})
}

func (UITracer) Mouse(x, y int, outcome, focused string) {
	logging.Trace("ui.mouse", map[string]interface{}{
		"x":       x,
		"y":       y,
		"outcome": outcome,
		"focused": focused,
	})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Submit(action string, values map[string]string) {
	logging.Trace("ui.submit", map[string]interface{}{"action": action, "values": values})
}
