package focus

import uv "github.com/charmbracelet/ultraviolet"

// Widget is a focusable leaf.
type Widget interface {
	FocusFlag() FocusFlag
	// Area is used for mouse focus.
	Area() uv.Rectangle
}

// Layered is implemented by widgets with several disjoint regions, usually
// because they show a popup. Area should be the union of the regions.
type Layered interface {
	ZAreas() []ZRect
}

// Navigable is implemented by widgets whose navigation is not
// NavigationRegular.
type Navigable interface {
	Navigation() Navigation
}

// Container is a widget that groups other widgets and builds the registry
// for its subtree.
type Container interface {
	Focus() *Focus
}

// Handle is the read side shared by FocusFlag and ContainerFlag.
type Handle interface {
	Get() bool
	Gained() bool
	Lost() bool
	Name() string
}

var (
	_ Handle = FocusFlag{}
	_ Handle = ContainerFlag{}
)

// ZAreasOf returns the widget's regions, empty unless it implements Layered.
func ZAreasOf(w Widget) []ZRect {
	if l, ok := w.(Layered); ok {
		return l.ZAreas()
	}
	return nil
}

// NavigationOf returns the widget's navigation, NavigationRegular unless it
// implements Navigable.
func NavigationOf(w Widget) Navigation {
	if n, ok := w.(Navigable); ok {
		return n.Navigation()
	}
	return NavigationRegular
}

func IsFocused(w Widget) bool   { return w.FocusFlag().Get() }
func GainedFocus(w Widget) bool { return w.FocusFlag().Gained() }
func LostFocus(w Widget) bool   { return w.FocusFlag().Lost() }

// ContainerFlagOf returns the flag of the registry built by c, if any.
func ContainerFlagOf(c Container) (ContainerFlag, bool) {
	return c.Focus().ContainerFlag()
}

// ContainerAreaOf returns the area of the registry built by c.
func ContainerAreaOf(c Container) uv.Rectangle {
	return c.Focus().ContainerArea()
}

// IsContainerFocused is false for containers without a flag.
func IsContainerFocused(c Container) bool {
	flag, ok := ContainerFlagOf(c)
	return ok && flag.Get()
}

func ContainerGainedFocus(c Container) bool {
	flag, ok := ContainerFlagOf(c)
	return ok && flag.Gained()
}

func ContainerLostFocus(c Container) bool {
	flag, ok := ContainerFlagOf(c)
	return ok && flag.Lost()
}
