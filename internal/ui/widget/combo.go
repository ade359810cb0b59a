package widget

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/focusring/internal/focus"
)

const (
	maxPopupRows = 5
	// PopupZ is the z-order of an open popup.
	PopupZ = 1
)

// Combo is a choice field. While open it shows a popup list below its row
// that is registered as a second, higher z-area so clicks on the popup reach
// the combo even where it covers other widgets.
type Combo struct {
	base
	label     string
	options   []string
	selected  int
	open      bool
	query     string
	matches   []int
	highlight int
}

func NewCombo(name, label string, options ...string) *Combo {
	c := &Combo{base: newBase(name), label: label, options: options, selected: -1}
	c.refilter()
	return c
}

func (c *Combo) Value() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected]
}

func (c *Combo) Open() bool    { return c.open }
func (c *Combo) Query() string { return c.query }

// Matches returns the options currently listed in the popup.
func (c *Combo) Matches() []string {
	out := make([]string, 0, len(c.matches))
	for _, idx := range c.matches {
		out = append(out, c.options[idx])
	}
	return out
}

// Area covers the row and the open popup.
func (c *Combo) Area() uv.Rectangle {
	return focus.UnionArea(c.ZAreas())
}

// ZAreas reports the row and, while open, the popup above it.
func (c *Combo) ZAreas() []focus.ZRect {
	zareas := []focus.ZRect{focus.NewZRect(c.area, 0)}
	if popup, ok := c.PopupArea(); ok {
		zareas = append(zareas, focus.NewZRect(popup, PopupZ))
	}
	return zareas
}

// PopupArea is the screen area of the open popup.
func (c *Combo) PopupArea() (uv.Rectangle, bool) {
	rows := c.popupRows()
	if !c.open || rows == 0 {
		return uv.Rectangle{}, false
	}
	width := c.popupWidth()
	return uv.Rect(c.area.Min.X+LabelWidth, c.area.Min.Y+1, width, rows), true
}

func (c *Combo) popupRows() int {
	if len(c.matches) < maxPopupRows {
		return len(c.matches)
	}
	return maxPopupRows
}

func (c *Combo) popupWidth() int {
	width := 0
	for _, opt := range c.options {
		if w := ansi.StringWidth(opt); w > width {
			width = w
		}
	}
	return width + 2
}

func (c *Combo) SyncFocus() tea.Cmd {
	focus.OnLost(focus.On(c.flag, c.close))
	return nil
}

func (c *Combo) Update(msg tea.Msg) tea.Cmd {
	if !c.focused() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		c.handleKey(msg)
	case tea.MouseClickMsg:
		c.handleClick(uv.Pos(msg.X, msg.Y))
	}
	return nil
}

func (c *Combo) handleKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "down":
		if !c.open {
			c.open = true
			return
		}
		c.move(1)
	case "up":
		if c.open {
			c.move(-1)
		}
	case "enter", "space":
		if !c.open {
			c.open = true
			return
		}
		c.choose(c.highlight)
	case "esc":
		c.close()
	case "backspace":
		if c.query == "" {
			return
		}
		runes := []rune(c.query)
		c.query = string(runes[:len(runes)-1])
		c.refilter()
	default:
		if msg.Text == "" {
			return
		}
		c.query += msg.Text
		c.open = true
		c.refilter()
	}
}

func (c *Combo) handleClick(p uv.Position) {
	if popup, ok := c.PopupArea(); ok && p.In(popup) {
		c.choose(p.Y - popup.Min.Y)
		return
	}
	if p.In(c.area) {
		if c.open {
			c.close()
		} else {
			c.open = true
		}
	}
}

func (c *Combo) move(delta int) {
	rows := c.popupRows()
	if rows == 0 {
		return
	}
	c.highlight = (c.highlight + delta + rows) % rows
}

func (c *Combo) choose(row int) {
	if row >= 0 && row < c.popupRows() {
		c.selected = c.matches[row]
	}
	c.close()
}

func (c *Combo) close() {
	c.open = false
	c.query = ""
	c.refilter()
}

func (c *Combo) refilter() {
	c.highlight = 0
	c.matches = filterOptions(c.options, c.query)
}

func (c *Combo) View() string {
	value := c.Value()
	if c.open && c.query != "" {
		value = c.query
	}
	if value == "" {
		value = "choose"
	}
	style := styles.Field
	if c.focused() {
		style = styles.FocusedField
	}
	field := style.Render("[" + value + " v]")
	return renderLabel(c.label, c.focused()) + field
}

// PopupView renders the popup rows, or "" when closed.
func (c *Combo) PopupView() string {
	rows := c.popupRows()
	if !c.open || rows == 0 {
		return ""
	}
	width := c.popupWidth()
	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		style := styles.Popup
		if row == c.highlight {
			style = styles.PopupSelected
		}
		lines = append(lines, style.Width(width).Render(" "+c.options[c.matches[row]]))
	}
	return strings.Join(lines, "\n")
}
