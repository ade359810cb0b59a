package focus_test

import (
	"testing"

	"github.com/atomicstack/focusring/internal/focus"
	"github.com/atomicstack/focusring/internal/testutil"
	uv "github.com/charmbracelet/ultraviolet"
)

func TestHitTestHigherZWinsRegardlessOfOrder(t *testing.T) {
	low := testutil.NewWidget("low", uv.Rect(0, 0, 10, 10)).
		WithZAreas(focus.NewZRect(uv.Rect(0, 0, 10, 10), 5))
	high := testutil.NewWidget("high", uv.Rect(2, 2, 4, 4)).
		WithZAreas(focus.NewZRect(uv.Rect(2, 2, 4, 4), 10))

	for name, f := range map[string]*focus.Focus{
		"high last":  focus.New(low, high),
		"high first": focus.New(high, low),
	} {
		t.Run(name, func(t *testing.T) {
			flag, ok := f.HitTest(uv.Pos(3, 3))
			if !ok || flag != high.Flag {
				t.Fatalf("expected high, got %v (ok=%t)", flag, ok)
			}
		})
	}
}

func TestHitTestTieGoesToLastDeclared(t *testing.T) {
	first := testutil.NewWidget("first", uv.Rect(0, 0, 5, 5))
	second := testutil.NewWidget("second", uv.Rect(0, 0, 5, 5))
	f := focus.New(first, second)

	flag, ok := f.HitTest(uv.Pos(1, 1))
	if !ok || flag != second.Flag {
		t.Fatalf("expected second, got %v", flag)
	}
}

func TestHitTestMissAndEdges(t *testing.T) {
	w := testutil.NewWidget("w", uv.Rect(2, 2, 3, 1))
	f := focus.New(w)

	if _, ok := f.HitTest(uv.Pos(5, 2)); ok {
		t.Fatalf("expected max edge to be exclusive")
	}
	if _, ok := f.HitTest(uv.Pos(2, 2)); !ok {
		t.Fatalf("expected min edge to be inclusive")
	}
	if got := f.FocusAt(uv.Pos(40, 40)); got != focus.Continue {
		t.Fatalf("expected continue on miss, got %s", got)
	}
	if w.Flag.Get() {
		t.Fatalf("expected focus unchanged on miss")
	}
}

func TestHitTestIgnoresNavigationNone(t *testing.T) {
	below := testutil.NewWidget("below", uv.Rect(0, 0, 5, 5))
	disabled := testutil.NewWidget("disabled", uv.Rect(0, 0, 5, 5)).WithNavigation(focus.NavigationNone)
	f := focus.New(below, disabled)

	flag, ok := f.HitTest(uv.Pos(1, 1))
	if !ok || flag != below.Flag {
		t.Fatalf("expected below, got %v", flag)
	}
}

func TestFocusAtPopupOverlapsOwnerNeighbour(t *testing.T) {
	combo := testutil.NewWidget("combo", uv.Rect(0, 0, 10, 1)).
		WithZAreas(
			focus.NewZRect(uv.Rect(0, 0, 10, 1), 0),
			focus.NewZRect(uv.Rect(0, 1, 10, 3), 10),
		)
	below := testutil.NewWidget("below", uv.Rect(0, 2, 10, 1))
	f := focus.New(combo, below)

	if got := f.FocusAt(uv.Pos(4, 2)); got != focus.Changed {
		t.Fatalf("expected changed, got %s", got)
	}
	testutil.AssertState(t, combo.Flag, true, true, false)
	testutil.AssertState(t, below.Flag, false, false, false)

	if got := f.FocusAt(uv.Pos(4, 0)); got != focus.Unchanged {
		t.Fatalf("expected unchanged when clicking the focused widget, got %s", got)
	}
	testutil.AssertState(t, combo.Flag, true, true, false)
}

func TestFocusAtMouseOnlyWidget(t *testing.T) {
	ws := testutil.Rows(10, "a", "link")
	ws[1].WithNavigation(focus.NavigationMouse)
	f := newRegistry(ws...)
	f.Next()

	if got := f.FocusAt(uv.Pos(0, 1)); got != focus.Changed {
		t.Fatalf("expected changed, got %s", got)
	}
	testutil.AssertState(t, ws[0].Flag, false, false, true)
	testutil.AssertState(t, ws[1].Flag, true, true, false)
}

func TestUnionArea(t *testing.T) {
	got := focus.UnionArea([]focus.ZRect{
		focus.NewZRect(uv.Rect(0, 0, 2, 1), 0),
		focus.NewZRect(uv.Rect(4, 3, 2, 2), 1),
	})
	if want := uv.Rect(0, 0, 6, 5); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
