package focus_test

import (
	"testing"

	"github.com/atomicstack/focusring/internal/focus"
	"github.com/atomicstack/focusring/internal/testutil"
	uv "github.com/charmbracelet/ultraviolet"
)

func TestContainerAggregation(t *testing.T) {
	ws := testutil.Rows(10, "name", "ok", "cancel")
	actions := testutil.NewContainer("actions", uv.Rect(0, 1, 10, 2), ws[1], ws[2])
	form := testutil.NewContainer("form", uv.Rect(0, 0, 10, 3), ws[0], actions)
	f := form.Focus()

	if f.Len() != 3 {
		t.Fatalf("expected nested widgets flattened, got %d", f.Len())
	}

	f.Next()
	testutil.AssertState(t, form.Flag, true, true, false)
	testutil.AssertState(t, actions.Flag, false, false, false)

	f.Next()
	testutil.AssertState(t, form.Flag, true, false, false)
	testutil.AssertState(t, actions.Flag, true, true, false)

	f.Next()
	testutil.AssertState(t, actions.Flag, true, false, false)

	f.Next()
	if name := f.FocusedName(); name != "name" {
		t.Fatalf("expected wrap to name, got %q", name)
	}
	testutil.AssertState(t, actions.Flag, false, false, true)
	testutil.AssertState(t, form.Flag, true, false, false)

	if !focus.IsContainerFocused(form) || focus.ContainerGainedFocus(form) {
		t.Fatalf("expected derived container queries to read the container flag")
	}
	if !focus.ContainerLostFocus(actions) {
		t.Fatalf("expected actions to report lost focus")
	}
}

func TestContainerLosesFocusToSibling(t *testing.T) {
	ws := testutil.Rows(10, "a")
	form := testutil.NewContainer("form", uv.Rect(0, 0, 10, 1), ws[0])
	other := testutil.NewWidget("other", uv.Rect(0, 5, 10, 1))

	root := focus.New().AddContainer(form).Add(other)
	root.Next()
	testutil.AssertState(t, form.Flag, true, true, false)

	root.Next()
	testutil.AssertState(t, form.Flag, false, false, true)
	testutil.AssertState(t, other.Flag, true, true, false)
}

func TestContainerAccessors(t *testing.T) {
	area := uv.Rect(2, 2, 8, 4)
	form := testutil.NewContainer("form", area)
	flag, ok := focus.ContainerFlagOf(form)
	if !ok || flag != form.Flag {
		t.Fatalf("expected container flag from registry")
	}
	if got := focus.ContainerAreaOf(form); got != area {
		t.Fatalf("expected area %v, got %v", area, got)
	}
	if focus.IsContainerFocused(focus.Container(bare{})) {
		t.Fatalf("expected container without flag to be unfocused")
	}
}

type bare struct{}

func (bare) Focus() *focus.Focus { return focus.New() }

func TestWidgetDerivedQueries(t *testing.T) {
	w := testutil.NewWidget("w", uv.Rect(0, 0, 1, 1))
	if focus.NavigationOf(w) != focus.NavigationRegular {
		t.Fatalf("expected regular navigation")
	}
	f := focus.New(w)
	f.Next()
	if !focus.IsFocused(w) || !focus.GainedFocus(w) || focus.LostFocus(w) {
		t.Fatalf("expected derived widget queries to read the flag")
	}
}
