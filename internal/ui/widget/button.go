package widget

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/atomicstack/focusring/internal/focus"
)

// Button runs its action on enter, space or a left click.
type Button struct {
	base
	label  string
	nav    focus.Navigation
	link   bool
	action func() tea.Cmd
}

func NewButton(name, label string, action func() tea.Cmd) *Button {
	return &Button{base: newBase(name), label: label, action: action}
}

// NewLink creates a button styled as a hyperlink. Links are only reachable
// with the mouse.
func NewLink(name, label string, action func() tea.Cmd) *Button {
	b := NewButton(name, label, action)
	b.link = true
	b.nav = focus.NavigationMouse
	return b
}

func (b *Button) Navigation() focus.Navigation { return b.nav }
func (b *Button) Label() string                { return b.label }

func (b *Button) Width() int {
	return lipgloss.Width(b.View())
}

func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused() {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "space":
			return b.press()
		}
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft && uv.Pos(msg.X, msg.Y).In(b.area) {
			return b.press()
		}
	}
	return nil
}

func (b *Button) press() tea.Cmd {
	if b.action == nil {
		return nil
	}
	return b.action()
}

func (b *Button) View() string {
	if b.link {
		style := styles.Link
		if b.focused() {
			style = styles.FocusedLink
		}
		return style.Render(b.label)
	}
	style := styles.Button
	if b.focused() {
		style = styles.FocusedButton
	}
	return style.Padding(0, 1).Render(b.label)
}

// Divider is a horizontal rule. Tab passes over it, a click can still focus
// it.
type Divider struct {
	base
}

func NewDivider(name string) *Divider {
	return &Divider{base: newBase(name)}
}

func (d *Divider) Navigation() focus.Navigation { return focus.NavigationLeave }
func (d *Divider) Update(tea.Msg) tea.Cmd       { return nil }

func (d *Divider) View() string {
	width := d.area.Dx()
	if width < 1 {
		width = 1
	}
	return styles.Divider.Render(strings.Repeat("─", width))
}
