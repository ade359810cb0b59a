package testutil

import (
	"testing"

	"github.com/atomicstack/focusring/internal/focus"
	uv "github.com/charmbracelet/ultraviolet"
)

// Widget is a configurable focusable leaf for engine tests.
type Widget struct {
	Flag    focus.FocusFlag
	Rect    uv.Rectangle
	Regions []focus.ZRect
	Nav     focus.Navigation
}

// NewWidget creates a regular widget named name covering area.
func NewWidget(name string, area uv.Rectangle) *Widget {
	return &Widget{Flag: focus.NamedFocusFlag(name), Rect: area}
}

// WithNavigation sets the widget's navigation and returns the widget.
func (w *Widget) WithNavigation(nav focus.Navigation) *Widget {
	w.Nav = nav
	return w
}

// WithZAreas replaces the widget's regions and widens its area to cover them.
func (w *Widget) WithZAreas(zareas ...focus.ZRect) *Widget {
	w.Regions = zareas
	w.Rect = w.Rect.Union(focus.UnionArea(zareas))
	return w
}

func (w *Widget) FocusFlag() focus.FocusFlag   { return w.Flag }
func (w *Widget) Area() uv.Rectangle           { return w.Rect }
func (w *Widget) ZAreas() []focus.ZRect        { return w.Regions }
func (w *Widget) Navigation() focus.Navigation { return w.Nav }

// Container groups widgets and nested containers in declaration order.
type Container struct {
	Flag  focus.ContainerFlag
	Rect  uv.Rectangle
	Parts []any
}

// NewContainer creates a named container. parts may hold focus.Widget and
// focus.Container values.
func NewContainer(name string, area uv.Rectangle, parts ...any) *Container {
	return &Container{Flag: focus.NamedContainerFlag(name), Rect: area, Parts: parts}
}

func (c *Container) Focus() *focus.Focus {
	f := focus.NewContainer(c.Flag, c.Rect)
	for _, part := range c.Parts {
		switch p := part.(type) {
		case focus.Container:
			f.AddContainer(p)
		case focus.Widget:
			f.Add(p)
		}
	}
	return f
}

// Row returns a one line rectangle at row y.
func Row(y, width int) uv.Rectangle {
	return uv.Rect(0, y, width, 1)
}

// Rows creates count regular widgets named after names, one per row.
func Rows(width int, names ...string) []*Widget {
	widgets := make([]*Widget, len(names))
	for i, name := range names {
		widgets[i] = NewWidget(name, Row(i, width))
	}
	return widgets
}

// AsWidgets converts fakes for focus.New.
func AsWidgets(ws ...*Widget) []focus.Widget {
	out := make([]focus.Widget, len(ws))
	for i, w := range ws {
		out[i] = w
	}
	return out
}

// AssertState fails the test when h does not hold the expected flags.
func AssertState(t *testing.T, h focus.Handle, focused, gained, lost bool) {
	t.Helper()
	if h.Get() != focused || h.Gained() != gained || h.Lost() != lost {
		t.Fatalf("%s: expected focused=%t gained=%t lost=%t, got focused=%t gained=%t lost=%t",
			h.Name(), focused, gained, lost, h.Get(), h.Gained(), h.Lost())
	}
}

// FocusedCount returns how many of the registry's flags are focused.
func FocusedCount(f *focus.Focus) int {
	n := 0
	for _, flag := range f.Flags() {
		if flag.Get() {
			n++
		}
	}
	return n
}
