package focus

// Navigation declares how a widget takes part in keyboard navigation.
// The zero value is NavigationRegular.
type Navigation int

const (
	// NavigationRegular widgets can be reached and left in both directions.
	NavigationRegular Navigation = iota
	// NavigationNone widgets are neither reachable by keyboard nor by mouse.
	NavigationNone
	// NavigationMouse widgets can only be focused with the mouse.
	NavigationMouse
	// NavigationLeave widgets are never a keyboard target but can be left,
	// e.g. tabs or a split divider.
	NavigationLeave
	// NavigationReach widgets are keyboard targets that keyboard navigation
	// cannot leave, e.g. a text area consuming Tab.
	NavigationReach
	// NavigationReachLeaveFront widgets can only be left backwards.
	NavigationReachLeaveFront
	// NavigationReachLeaveBack widgets can only be left forwards.
	NavigationReachLeaveBack
)

func (n Navigation) String() string {
	switch n {
	case NavigationRegular:
		return "regular"
	case NavigationNone:
		return "none"
	case NavigationMouse:
		return "mouse"
	case NavigationLeave:
		return "leave"
	case NavigationReach:
		return "reach"
	case NavigationReachLeaveFront:
		return "reach-leave-front"
	case NavigationReachLeaveBack:
		return "reach-leave-back"
	default:
		return "unknown"
	}
}

// Reachable reports whether keyboard navigation may move the focus here.
func (n Navigation) Reachable() bool {
	switch n {
	case NavigationNone, NavigationMouse, NavigationLeave:
		return false
	default:
		return true
	}
}

// MouseReachable reports whether a click may move the focus here.
func (n Navigation) MouseReachable() bool {
	return n != NavigationNone
}

// CanLeave reports whether keyboard navigation in direction d may move the
// focus away from a widget with this navigation.
func (n Navigation) CanLeave(d Direction) bool {
	switch n {
	case NavigationReach:
		return false
	case NavigationReachLeaveFront:
		return d == Backward
	case NavigationReachLeaveBack:
		return d == Forward
	default:
		return true
	}
}

// Direction of keyboard navigation through the registry.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}
