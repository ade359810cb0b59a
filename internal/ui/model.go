package ui

import (
	"reflect"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/atomicstack/focusring/internal/focus"
	"github.com/atomicstack/focusring/internal/logging"
	"github.com/atomicstack/focusring/internal/logging/events"
	"github.com/atomicstack/focusring/internal/theme"
	"github.com/atomicstack/focusring/internal/ui/command"
	"github.com/atomicstack/focusring/internal/ui/widget"
)

const (
	// formTop is the first screen row of the form, below the title.
	formTop      = 2
	defaultWidth = 60
	infoTTL      = 5 * time.Second
)

var styles = theme.Default()

var kindOptions = []string{"bug", "feature", "chore", "docs", "question", "refactor"}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the demo model.
type Options struct {
	Width  int
	Height int
	Mouse  bool
	Keys   focus.KeyMap
}

// Model implements the Bubble Tea model for the demo form.
type Model struct {
	form    *widget.Group
	actions *widget.Group
	name    *widget.TextField
	kind    *widget.Combo
	divider *widget.Divider
	notes   *widget.TextField
	help    *widget.Button
	ok      *widget.Button
	cancel  *widget.Button

	keys        focus.KeyMap
	mouse       bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	outcome    focus.Outcome
	gained     []string
	lost       []string
	infoMsg    string
	infoExpire time.Time
	submitted  string
	values     map[string]string

	bus      *command.Bus
	handlers map[reflect.Type]msgHandler
	initCmd  tea.Cmd
}

// NewModel builds the form and focuses its first field.
func NewModel(opts Options) *Model {
	m := &Model{
		keys:  opts.Keys,
		mouse: opts.Mouse,
		width: defaultWidth,
		bus:   command.New(),
	}
	if len(m.keys.Next.Keys()) == 0 && len(m.keys.Prev.Keys()) == 0 {
		m.keys = focus.DefaultKeyMap()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.name = widget.NewTextField("name", "Name", "your name")
	m.kind = widget.NewCombo("kind", "Kind", kindOptions...)
	m.divider = widget.NewDivider("divider")
	m.notes = widget.NewTextField("notes", "Notes", "tab indents").WithNavigation(focus.NavigationReach)
	m.help = widget.NewLink("help", "what can I click?", m.showHelp)
	m.ok = widget.NewButton("ok", "OK", func() tea.Cmd { return m.submit("ok") })
	m.cancel = widget.NewButton("cancel", "Cancel", func() tea.Cmd { return m.submit("cancel") })
	m.actions = widget.NewInlineGroup("actions", m.ok, m.cancel)
	m.form = widget.NewGroup("form", m.name, m.kind, m.divider, m.notes, m.help, m.actions)

	m.initCmd = m.settle(m.registry().First())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.initCmd
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	// cursor blinks and other widget-internal messages
	if c := m.form.Focused(); c != nil {
		return m, c.Update(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.MouseClickMsg{}): m.handleMouseClickMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) layout() {
	m.form.SetArea(uv.Rect(0, formTop, m.width, m.form.Rows()))
}

// registry lays the form out for the current size and builds a fresh focus
// registry from it.
func (m *Model) registry() *focus.Focus {
	m.layout()
	return m.form.Focus()
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if press.String() == "ctrl+c" {
		return tea.Quit
	}
	registry := m.registry()
	outcome := m.keys.Handle(registry, press)
	cmds := []tea.Cmd{m.settle(outcome)}
	if !outcome.IsConsumed() {
		if c := m.form.Focused(); c != nil {
			cmds = append(cmds, c.Update(press))
		}
	}
	events.UI.Key(press.String(), outcome.String(), registry.FocusedName())
	return tea.Batch(cmds...)
}

func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok || !m.mouse {
		return nil
	}
	registry := m.registry()
	outcome := focus.HandleMouseFocus(registry, click)
	cmds := []tea.Cmd{m.settle(outcome)}
	if outcome.IsConsumed() {
		if c := m.form.Focused(); c != nil {
			cmds = append(cmds, c.Update(click))
		}
	}
	events.UI.Mouse(click.X, click.Y, outcome.String(), registry.FocusedName())
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		logging.Error(res.Err)
		m.setInfo(res.Err.Error())
		return nil
	}
	m.submitted = res.ID
	m.values = res.Values
	return tea.Quit
}

// settle records the outcome of a dispatch and, after a transition, lets
// the widgets react to the flags that just gained or lost the focus.
func (m *Model) settle(outcome focus.Outcome) tea.Cmd {
	m.outcome = outcome
	m.gained, m.lost = nil, nil
	if outcome != focus.Changed {
		return nil
	}
	for _, c := range m.form.Components() {
		m.collect(c.FocusFlag())
	}
	for _, g := range m.form.Groups() {
		m.collect(g.ContainerFlag())
	}
	return m.form.SyncFocus()
}

func (m *Model) collect(h focus.Handle) {
	focus.OnGained(focus.On(h, func() { m.gained = append(m.gained, h.Name()) }))
	focus.OnLost(focus.On(h, func() { m.lost = append(m.lost, h.Name()) }))
}

func (m *Model) submit(action string) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:     action,
		Label:  strings.ToUpper(action[:1]) + action[1:],
		Values: m.Values(),
	})
}

func (m *Model) showHelp() tea.Cmd {
	m.setInfo("tab skips the divider and the link; notes keeps tab, click to leave it")
	return nil
}

// Values returns the current form contents.
func (m *Model) Values() map[string]string {
	return map[string]string{
		"name":  strings.TrimSpace(m.name.Value()),
		"kind":  m.kind.Value(),
		"notes": m.notes.Value(),
	}
}

// Submitted is the action that ended the program, if any.
func (m *Model) Submitted() string {
	return m.submitted
}

// SubmittedValues are the form contents sent with the final action.
func (m *Model) SubmittedValues() map[string]string {
	return m.values
}

// FocusedName is the name of the focused widget.
func (m *Model) FocusedName() string {
	if c := m.form.Focused(); c != nil {
		return c.FocusFlag().Name()
	}
	return ""
}

func (m *Model) Outcome() focus.Outcome { return m.outcome }
func (m *Model) Gained() []string       { return m.gained }
func (m *Model) Lost() []string         { return m.lost }

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
