package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/focusring/internal/focus"
)

// Screen rows of the demo form.
const (
	rowName    = formTop
	rowKind    = formTop + 1
	rowDivider = formTop + 2
	rowNotes   = formTop + 3
	rowHelp    = formTop + 4
	rowActions = formTop + 5
)

var (
	tabMsg      = tea.KeyPressMsg{Code: tea.KeyTab}
	shiftTabMsg = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(Options{Width: 60, Mouse: true, Keys: focus.DefaultKeyMap()}))
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestNewModelFocusesFirstField(t *testing.T) {
	h := newHarness(t)
	m := h.Model()
	if got := m.FocusedName(); got != "name" {
		t.Fatalf("expected name focused, got %q", got)
	}
	if !m.name.Editing() {
		t.Fatalf("expected the name input to take the cursor")
	}
	if !m.form.ContainerFlag().Get() {
		t.Fatalf("expected form container focused")
	}
	if m.actions.ContainerFlag().Get() {
		t.Fatalf("expected actions container not focused")
	}
}

func TestTabSkipsDivider(t *testing.T) {
	h := newHarness(t)
	h.Send(tabMsg)
	if got := h.Model().FocusedName(); got != "kind" {
		t.Fatalf("expected kind focused, got %q", got)
	}
	h.Send(tabMsg)
	m := h.Model()
	if got := m.FocusedName(); got != "notes" {
		t.Fatalf("expected divider skipped, got %q", got)
	}
	if m.Outcome() != focus.Changed {
		t.Fatalf("expected Changed, got %v", m.Outcome())
	}
	if !reflect.DeepEqual(m.Gained(), []string{"notes"}) || !reflect.DeepEqual(m.Lost(), []string{"kind"}) {
		t.Fatalf("unexpected transients gained=%v lost=%v", m.Gained(), m.Lost())
	}
}

func TestShiftTabWrapsToActions(t *testing.T) {
	h := newHarness(t)
	h.Send(shiftTabMsg)
	m := h.Model()
	if got := m.FocusedName(); got != "cancel" {
		t.Fatalf("expected wraparound to cancel, got %q", got)
	}
	if !reflect.DeepEqual(m.Gained(), []string{"cancel", "actions"}) {
		t.Fatalf("expected cancel and actions gained, got %v", m.Gained())
	}
	if m.name.Editing() {
		t.Fatalf("expected name input blurred")
	}
}

func TestReachFieldKeepsTab(t *testing.T) {
	h := newHarness(t)
	h.Send(tabMsg)
	h.Send(tabMsg)
	h.Send(tabMsg)
	m := h.Model()
	if got := m.FocusedName(); got != "notes" {
		t.Fatalf("expected notes to keep the focus, got %q", got)
	}
	if m.Outcome() != focus.Continue {
		t.Fatalf("expected Continue for a blocked tab, got %v", m.Outcome())
	}
	if got := m.notes.Value(); got != "    " {
		t.Fatalf("expected tab inserted into notes, got %q", got)
	}
	h.Send(shiftTabMsg)
	if got := h.Model().FocusedName(); got != "notes" {
		t.Fatalf("expected shift+tab blocked too, got %q", got)
	}
	h.Send(click(0, rowName))
	if got := h.Model().FocusedName(); got != "name" {
		t.Fatalf("expected a click to leave notes, got %q", got)
	}
}

func TestClickFocusesLinkAndShowsHelp(t *testing.T) {
	h := newHarness(t)
	h.Send(click(1, rowHelp))
	m := h.Model()
	if got := m.FocusedName(); got != "help" {
		t.Fatalf("expected help focused, got %q", got)
	}
	if m.currentInfo() == "" {
		t.Fatalf("expected help text shown")
	}
	if !strings.Contains(h.View(), "notes keeps tab") {
		t.Fatalf("expected help text rendered:\n%s", h.View())
	}
}

func TestClickOnFocusedWidgetIsUnchanged(t *testing.T) {
	h := newHarness(t)
	h.Send(click(3, rowName))
	if got := h.Model().Outcome(); got != focus.Unchanged {
		t.Fatalf("expected Unchanged, got %v", got)
	}
}

func TestClickOutsideFormContinues(t *testing.T) {
	h := newHarness(t)
	h.Send(click(0, 0))
	m := h.Model()
	if m.Outcome() != focus.Continue || m.FocusedName() != "name" {
		t.Fatalf("expected a miss to change nothing, got %v focus=%q", m.Outcome(), m.FocusedName())
	}
}

func TestPopupCoversRowsBelow(t *testing.T) {
	h := newHarness(t)
	h.Send(click(0, rowKind))
	m := h.Model()
	if got := m.FocusedName(); got != "kind" {
		t.Fatalf("expected kind focused, got %q", got)
	}
	if !m.kind.Open() {
		t.Fatalf("expected the click to open the popup")
	}
	view := strings.Split(h.View(), "\n")
	if !strings.Contains(view[rowNotes], "feature") {
		t.Fatalf("expected popup drawn over the notes row, got %q", view[rowNotes])
	}

	popup, _ := m.kind.PopupArea()
	h.Send(click(popup.Min.X, rowNotes))
	m = h.Model()
	if got := m.FocusedName(); got != "kind" {
		t.Fatalf("expected popup to win over notes, got %q", got)
	}
	if m.Outcome() != focus.Unchanged {
		t.Fatalf("expected Unchanged, got %v", m.Outcome())
	}
	if got := m.kind.Value(); got != "feature" {
		t.Fatalf("expected feature picked, got %q", got)
	}
	if m.kind.Open() {
		t.Fatalf("expected popup closed after the pick")
	}

	h.Send(click(popup.Min.X, rowNotes))
	if got := h.Model().FocusedName(); got != "notes" {
		t.Fatalf("expected notes reachable once the popup closed, got %q", got)
	}
}

func TestPopupClosesWhenFocusLeaves(t *testing.T) {
	h := newHarness(t)
	h.Send(tabMsg)
	h.Send(tea.KeyPressMsg{Code: tea.KeyDown})
	if !h.Model().kind.Open() {
		t.Fatalf("expected down to open the popup")
	}
	h.Send(shiftTabMsg)
	m := h.Model()
	if m.kind.Open() {
		t.Fatalf("expected popup closed once kind lost the focus")
	}
	if !reflect.DeepEqual(m.Lost(), []string{"kind"}) {
		t.Fatalf("expected kind lost, got %v", m.Lost())
	}
}

func TestOkSubmitsValues(t *testing.T) {
	h := newHarness(t)
	h.Model().name.SetValue("ada")
	h.Send(click(1, rowActions))
	m := h.Model()
	if got := m.Submitted(); got != "ok" {
		t.Fatalf("expected ok submitted, got %q", got)
	}
	if got := m.SubmittedValues()["name"]; got != "ada" {
		t.Fatalf("expected submitted name, got %q", got)
	}
}

func TestCancelFromKeyboard(t *testing.T) {
	h := newHarness(t)
	h.Send(shiftTabMsg)
	h.Send(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := h.Model().Submitted(); got != "cancel" {
		t.Fatalf("expected cancel submitted, got %q", got)
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := focus.NewKeyMap([]string{"ctrl+n"}, []string{"ctrl+p"})
	h := NewHarness(NewModel(Options{Mouse: true, Keys: keys}))
	h.Send(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if got := h.Model().FocusedName(); got != "kind" {
		t.Fatalf("expected ctrl+n to move to kind, got %q", got)
	}
	h.Send(tabMsg)
	if got := h.Model().FocusedName(); got != "kind" {
		t.Fatalf("expected tab unbound, got %q", got)
	}
	h.Send(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if got := h.Model().FocusedName(); got != "name" {
		t.Fatalf("expected ctrl+p to move back, got %q", got)
	}
}

func TestMouseDisabled(t *testing.T) {
	h := NewHarness(NewModel(Options{Width: 60}))
	h.Send(click(0, rowKind))
	if got := h.Model().FocusedName(); got != "name" {
		t.Fatalf("expected clicks ignored without mouse support, got %q", got)
	}
	if h.Model().View().MouseMode != tea.MouseModeNone {
		t.Fatalf("expected no mouse mode")
	}
}

func TestWindowSizeRespectsFixedWidth(t *testing.T) {
	h := newHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := h.Model()
	if m.width != 60 || m.height != 30 {
		t.Fatalf("expected fixed width and resized height, got %dx%d", m.width, m.height)
	}
	if got := m.name.Area().Dx(); got != 60 {
		t.Fatalf("expected layout at width 60, got %d", got)
	}
}

func TestViewShowsStatus(t *testing.T) {
	h := newHarness(t)
	h.Send(tabMsg)
	view := h.View()
	for _, want := range []string{title, "changed", "gained kind", "lost name", "tab/shift+tab"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestInitStartsCursor(t *testing.T) {
	m := NewModel(Options{Width: 60})
	if m.Init() == nil {
		t.Fatalf("expected Init to return the name field's cursor command")
	}
}
