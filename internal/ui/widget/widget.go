// Package widget holds the small set of form widgets used by the demo. Each
// widget owns a focus flag and reports its screen area so the focus engine
// can drive it.
package widget

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/atomicstack/focusring/internal/focus"
	"github.com/atomicstack/focusring/internal/theme"
)

var styles = theme.Default()

// Component is a leaf widget hosted by a Group.
type Component interface {
	focus.Widget
	SetArea(uv.Rectangle)
	// Width is the preferred width; zero fills the row.
	Width() int
	Update(msg tea.Msg) tea.Cmd
	// SyncFocus reacts to the transient gained/lost state of the last
	// transition.
	SyncFocus() tea.Cmd
	View() string
}

type base struct {
	flag focus.FocusFlag
	area uv.Rectangle
}

func newBase(name string) base {
	return base{flag: focus.NamedFocusFlag(name)}
}

func (b *base) FocusFlag() focus.FocusFlag { return b.flag }
func (b *base) Area() uv.Rectangle         { return b.area }
func (b *base) SetArea(r uv.Rectangle)     { b.area = r }
func (b *base) Name() string               { return b.flag.Name() }
func (b *base) Width() int                 { return 0 }
func (b *base) SyncFocus() tea.Cmd         { return nil }

func (b *base) focused() bool { return b.flag.Get() }

// LabelWidth is the column where field contents start.
const LabelWidth = 8

func renderLabel(label string, focused bool) string {
	style := styles.Label
	if focused {
		style = styles.FocusedLabel
	}
	return style.Width(LabelWidth).Render(label)
}
