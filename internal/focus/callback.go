package focus

// Callback pairs a handle with the function to run for it.
type Callback struct {
	Handle Handle
	Fn     func()
}

// On creates a callback for OnGained, OnLost and MatchFocus.
func On(h Handle, fn func()) Callback {
	return Callback{Handle: h, Fn: fn}
}

// OnGained runs every callback whose handle just gained the focus.
func OnGained(cbs ...Callback) {
	for _, cb := range cbs {
		if cb.Handle != nil && cb.Fn != nil && cb.Handle.Gained() {
			cb.Fn()
		}
	}
}

// OnLost runs every callback whose handle just lost the focus. Typical use is
// validating a field when the user leaves it.
func OnLost(cbs ...Callback) {
	for _, cb := range cbs {
		if cb.Handle != nil && cb.Fn != nil && cb.Handle.Lost() {
			cb.Fn()
		}
	}
}

// MatchFocus runs the first callback whose handle is focused and reports
// true. When none is focused it runs fallback, if any, and reports false.
func MatchFocus(fallback func(), cbs ...Callback) bool {
	for _, cb := range cbs {
		if cb.Handle != nil && cb.Handle.Get() {
			if cb.Fn != nil {
				cb.Fn()
			}
			return true
		}
	}
	if fallback != nil {
		fallback()
	}
	return false
}
