package focus

import (
	"github.com/atomicstack/focusring/internal/logging/events"

	uv "github.com/charmbracelet/ultraviolet"
)

// HitTest returns the flag whose region contains p. The region with the
// highest z wins; among equal z the widget registered last wins, as it is
// painted last. Widgets with NavigationNone are ignored.
func (f *Focus) HitTest(p uv.Position) (FocusFlag, bool) {
	idx, _ := f.hit(p)
	if idx < 0 {
		return FocusFlag{}, false
	}
	return f.entries[idx].flag, true
}

func (f *Focus) hit(p uv.Position) (int, int) {
	best, bestZ := -1, 0
	if f == nil {
		return best, bestZ
	}
	for i, e := range f.entries {
		if !e.nav.MouseReachable() {
			continue
		}
		for _, z := range e.regions() {
			if !z.Contains(p) {
				continue
			}
			if best < 0 || z.Z >= bestZ {
				best, bestZ = i, z.Z
			}
		}
	}
	return best, bestZ
}

// FocusAt focuses the widget under p. A click on the focused widget is
// consumed without a change; a click on nothing is not consumed.
func (f *Focus) FocusAt(p uv.Position) Outcome {
	if f.Len() == 0 {
		return Continue
	}
	idx, z := f.hit(p)
	if idx < 0 {
		events.Focus.Miss(f.id, p.X, p.Y)
		return Continue
	}
	flag := f.entries[idx].flag
	events.Focus.Hit(f.id, p.X, p.Y, flag.Name(), z)
	if flag.Get() {
		return Unchanged
	}
	f.transition(f.focusedIndex(), idx, "mouse")
	return Changed
}
