package app

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/focusring/internal/focus"
	"github.com/atomicstack/focusring/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width    int
	Height   int
	Mouse    bool
	NextKeys []string
	PrevKeys []string
}

// Options converts the configuration into UI model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Width:  c.Width,
		Height: c.Height,
		Mouse:  c.Mouse,
		Keys:   focus.NewKeyMap(c.NextKeys, c.PrevKeys),
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(cfg.Options())
	program := tea.NewProgram(model)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
