package events

import "github.com/atomicstack/focusring/internal/logging"

type FocusTracer struct{}

var Focus = FocusTracer{}

// Transition records focus moving between two flags. Empty names stand for
// "no flag".
func (FocusTracer) Transition(pass, cause, from, to string) {
	logging.Trace("focus.transition", map[string]interface{}{
		"pass":  pass,
		"cause": cause,
		"from":  from,
		"to":    to,
	})
}

// Blocked records a directional move refused by the focused flag's navigation.
func (FocusTracer) Blocked(pass, name, navigation, direction string) {
	logging.Trace("focus.blocked", map[string]interface{}{
		"pass":       pass,
		"flag":       name,
		"navigation": navigation,
		"direction":  direction,
	})
}

func (FocusTracer) Hit(pass string, x, y int, name string, z int) {
	logging.Trace("focus.hit", map[string]interface{}{"pass": pass, "x": x, "y": y, "flag": name, "z": z})
}

func (FocusTracer) Miss(pass string, x, y int) {
	logging.Trace("focus.miss", map[string]interface{}{"pass": pass, "x": x, "y": y})
}
