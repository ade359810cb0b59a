package widget

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/focusring/internal/focus"
)

const tabWidth = 4

// TextField is a labelled single line input.
type TextField struct {
	base
	label string
	nav   focus.Navigation
	input textinput.Model
}

func NewTextField(name, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 128
	return &TextField{base: newBase(name), label: label, input: ti}
}

// WithNavigation sets the traversal policy. With focus.NavigationReach the
// field keeps Tab for itself and inserts spaces.
func (t *TextField) WithNavigation(nav focus.Navigation) *TextField {
	t.nav = nav
	return t
}

func (t *TextField) Navigation() focus.Navigation { return t.nav }
func (t *TextField) Value() string                { return t.input.Value() }
func (t *TextField) Label() string                { return t.label }

func (t *TextField) SetValue(v string) {
	t.input.SetValue(v)
	t.input.CursorEnd()
}

// Editing reports whether the input currently has the cursor.
func (t *TextField) Editing() bool { return t.input.Focused() }

func (t *TextField) SyncFocus() tea.Cmd {
	var cmd tea.Cmd
	focus.OnGained(focus.On(t.flag, func() {
		cmd = t.input.Focus()
	}))
	focus.OnLost(focus.On(t.flag, func() {
		t.input.Blur()
		t.input.SetValue(strings.TrimSpace(t.input.Value()))
	}))
	return cmd
}

func (t *TextField) Update(msg tea.Msg) tea.Cmd {
	if !t.focused() {
		return nil
	}
	if press, ok := msg.(tea.KeyPressMsg); ok && press.String() == "tab" && t.nav == focus.NavigationReach {
		t.insert(strings.Repeat(" ", tabWidth))
		return nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *TextField) insert(s string) {
	value := []rune(t.input.Value())
	pos := t.input.Position()
	if pos > len(value) {
		pos = len(value)
	}
	next := string(value[:pos]) + s + string(value[pos:])
	t.input.SetValue(next)
	t.input.SetCursor(pos + len([]rune(s)))
}

func (t *TextField) View() string {
	style := styles.Field
	if t.focused() {
		style = styles.FocusedField
	}
	width := t.area.Dx() - LabelWidth
	if width < 1 {
		width = 1
	}
	return renderLabel(t.label, t.focused()) + style.Width(width).MaxWidth(width).Render(t.input.View())
}
