package focus

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// KeyMap holds the bindings that move the focus.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap binds Tab and Shift+Tab.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(nil, nil)
}

// NewKeyMap builds a key map from key names such as "tab" or "ctrl+n".
// Empty lists keep the default binding for that direction.
func NewKeyMap(next, prev []string) KeyMap {
	if len(next) == 0 {
		next = []string{"tab"}
	}
	if len(prev) == 0 {
		prev = []string{"shift+tab"}
	}
	return KeyMap{
		Next: key.NewBinding(key.WithKeys(next...), key.WithHelp(next[0], "next field")),
		Prev: key.NewBinding(key.WithKeys(prev...), key.WithHelp(prev[0], "previous field")),
	}
}

// Handle dispatches a key press to the registry. Only presses matching Next
// or Prev are considered; every other message yields Continue.
func (km KeyMap) Handle(f *Focus, msg tea.Msg) Outcome {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return Continue
	}
	switch {
	case key.Matches(press, km.Next):
		return f.Next()
	case key.Matches(press, km.Prev):
		return f.Prev()
	}
	return Continue
}

// HandleFocus dispatches Tab/Shift+Tab key presses with DefaultKeyMap.
func HandleFocus(f *Focus, msg tea.Msg) Outcome {
	return DefaultKeyMap().Handle(f, msg)
}

// HandleMouseFocus dispatches left button presses to FocusAt.
func HandleMouseFocus(f *Focus, msg tea.Msg) Outcome {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok || click.Button != tea.MouseLeft {
		return Continue
	}
	return f.FocusAt(uv.Pos(click.X, click.Y))
}
