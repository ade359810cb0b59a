package focus

import "github.com/atomicstack/focusring/internal/logging/events"

// Next moves the focus forward.
func (f *Focus) Next() Outcome {
	return f.Navigate(Forward)
}

// Prev moves the focus backward.
func (f *Focus) Prev() Outcome {
	return f.Navigate(Backward)
}

// Navigate moves the focus to the next reachable widget in direction d,
// wrapping at both ends. It returns Continue when the focused widget may not
// be left in that direction or when no other target exists.
func (f *Focus) Navigate(d Direction) Outcome {
	if f.Len() == 0 || (d != Forward && d != Backward) {
		return Continue
	}
	cur := f.focusedIndex()
	if cur >= 0 && !f.entries[cur].nav.CanLeave(d) {
		e := f.entries[cur]
		events.Focus.Blocked(f.id, e.flag.Name(), e.nav.String(), d.String())
		return Continue
	}
	next := f.candidate(cur, d)
	if next < 0 {
		return Continue
	}
	f.transition(cur, next, d.String())
	return Changed
}

// candidate scans from cur in direction d, passing over further entries of
// the focused flag. Without a current focus the scan covers every entry
// starting at the matching end.
func (f *Focus) candidate(cur int, d Direction) int {
	n := len(f.entries)
	start := cur
	if cur < 0 {
		start = -1
		if d == Backward {
			start = n
		}
	}
	for step := 1; step <= n; step++ {
		i := ((start+int(d)*step)%n + n) % n
		if i == cur {
			return -1
		}
		if cur >= 0 && f.entries[i].flag == f.entries[cur].flag {
			continue
		}
		if f.entries[i].nav.Reachable() {
			return i
		}
	}
	return -1
}

// transition moves the focus to entry to. Transients of every flag in the
// registry are reset first, so afterwards only the old and the new focus
// carry lost and gained.
func (f *Focus) transition(from, to int, cause string) {
	spans := f.containerSpans()
	before := make([]bool, len(spans))
	for i, s := range spans {
		before[i] = s.flag.Get()
	}

	target := f.entries[to].flag
	for i, e := range f.entries {
		switch {
		case i == to:
			e.flag.store(FlagState{Focused: true, Gained: true})
		case e.flag == target:
			// the same flag registered twice
		case e.flag.Get():
			e.flag.store(FlagState{Lost: true})
		default:
			e.flag.clearTransients()
		}
	}

	for i, s := range spans {
		now := f.anyFocused(s.start, s.end)
		s.flag.store(FlagState{
			Focused: now,
			Gained:  !before[i] && now,
			Lost:    before[i] && !now,
		})
	}

	fromName := ""
	if from >= 0 {
		fromName = f.entries[from].flag.Name()
	}
	events.Focus.Transition(f.id, cause, fromName, target.Name())
}

func (f *Focus) containerSpans() []span {
	spans := f.spans
	if !f.container.IsZero() {
		spans = append(append([]span(nil), f.spans...), span{flag: f.container, area: f.area, start: 0, end: len(f.entries)})
	}
	return spans
}

func (f *Focus) anyFocused(start, end int) bool {
	for _, e := range f.entries[start:end] {
		if e.flag.Get() {
			return true
		}
	}
	return false
}
