package widget

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/atomicstack/focusring/internal/focus"
)

// Group is a container widget. Its children are stacked one per row, or
// placed side by side on a single row when the group is inline.
type Group struct {
	flag   focus.ContainerFlag
	area   uv.Rectangle
	inline bool
	items  []any
}

// NewGroup creates a vertical group. Items are Components or nested Groups.
func NewGroup(name string, items ...any) *Group {
	return &Group{flag: focus.NamedContainerFlag(name), items: items}
}

// NewInlineGroup creates a group laid out on one row.
func NewInlineGroup(name string, items ...any) *Group {
	g := NewGroup(name, items...)
	g.inline = true
	return g
}

func (g *Group) ContainerFlag() focus.ContainerFlag { return g.flag }
func (g *Group) Area() uv.Rectangle                 { return g.area }

// Rows is the number of rows the group occupies.
func (g *Group) Rows() int {
	if g.inline {
		return 1
	}
	n := 0
	for _, item := range g.items {
		n += rowsOf(item)
	}
	return n
}

func rowsOf(item any) int {
	if sub, ok := item.(*Group); ok {
		return sub.Rows()
	}
	return 1
}

// SetArea lays the children out inside r.
func (g *Group) SetArea(r uv.Rectangle) {
	g.area = r
	if g.inline {
		x := r.Min.X
		for _, item := range g.items {
			w := widthOf(item)
			if w == 0 || x+w > r.Max.X {
				w = r.Max.X - x
			}
			if w < 0 {
				w = 0
			}
			setArea(item, uv.Rect(x, r.Min.Y, w, 1))
			x += w + 1
		}
		return
	}
	y := r.Min.Y
	for _, item := range g.items {
		rows := rowsOf(item)
		setArea(item, uv.Rect(r.Min.X, y, r.Dx(), rows))
		y += rows
	}
}

func widthOf(item any) int {
	if c, ok := item.(Component); ok {
		return c.Width()
	}
	return 0
}

func setArea(item any, r uv.Rectangle) {
	switch v := item.(type) {
	case *Group:
		v.SetArea(r)
	case Component:
		v.SetArea(r)
	}
}

// Focus builds the registry for this group and everything nested in it.
func (g *Group) Focus() *focus.Focus {
	f := focus.NewContainer(g.flag, g.area)
	for _, item := range g.items {
		switch v := item.(type) {
		case *Group:
			f.AddContainer(v)
		case Component:
			f.Add(v)
		}
	}
	return f
}

// Components lists the leaf widgets in traversal order.
func (g *Group) Components() []Component {
	var out []Component
	for _, item := range g.items {
		switch v := item.(type) {
		case *Group:
			out = append(out, v.Components()...)
		case Component:
			out = append(out, v)
		}
	}
	return out
}

// Groups lists this group and every nested group.
func (g *Group) Groups() []*Group {
	out := []*Group{g}
	for _, item := range g.items {
		if sub, ok := item.(*Group); ok {
			out = append(out, sub.Groups()...)
		}
	}
	return out
}

// Focused returns the focused leaf, if any.
func (g *Group) Focused() Component {
	for _, c := range g.Components() {
		if c.FocusFlag().Get() {
			return c
		}
	}
	return nil
}

// SyncFocus lets every leaf react to the last transition.
func (g *Group) SyncFocus() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range g.Components() {
		if cmd := c.SyncFocus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (g *Group) View() string {
	views := make([]string, 0, len(g.items))
	for _, item := range g.items {
		switch v := item.(type) {
		case *Group:
			views = append(views, v.View())
		case Component:
			views = append(views, v.View())
		}
	}
	if g.inline {
		return strings.Join(views, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
