package focus

import (
	"github.com/google/uuid"

	uv "github.com/charmbracelet/ultraviolet"
)

type entry struct {
	flag   FocusFlag
	area   uv.Rectangle
	zareas []ZRect
	nav    Navigation
}

// regions returns the declared regions or the implicit one at z 0.
func (e entry) regions() []ZRect {
	if len(e.zareas) > 0 {
		return e.zareas
	}
	return []ZRect{{Area: e.area}}
}

// span ties a nested container flag to the entries [start, end) it summarises.
type span struct {
	flag       ContainerFlag
	area       uv.Rectangle
	start, end int
}

// Focus is the registry for one input pass: the focusable widgets of a
// widget tree in document order, plus the container flags summarising them.
// Build a fresh one before handling each message.
type Focus struct {
	id        string
	container ContainerFlag
	area      uv.Rectangle
	entries   []entry
	spans     []span
}

// New creates a registry without a container flag.
func New(widgets ...Widget) *Focus {
	f := &Focus{id: uuid.NewString()}
	for _, w := range widgets {
		f.Add(w)
	}
	return f
}

// NewContainer creates a registry summarised by flag, covering area.
func NewContainer(flag ContainerFlag, area uv.Rectangle, widgets ...Widget) *Focus {
	f := New(widgets...)
	f.container = flag
	f.area = area
	return f
}

// Add appends a widget. Nil widgets are skipped.
func (f *Focus) Add(w Widget) *Focus {
	if w == nil {
		return f
	}
	return f.AddEntry(w.FocusFlag(), w.Area(), ZAreasOf(w), NavigationOf(w))
}

// AddFlag appends a bare flag with a regular navigation.
func (f *Focus) AddFlag(flag FocusFlag, area uv.Rectangle) *Focus {
	return f.AddEntry(flag, area, nil, NavigationRegular)
}

// AddEntry appends a flag with explicit regions and navigation. Zero flags
// are skipped.
func (f *Focus) AddEntry(flag FocusFlag, area uv.Rectangle, zareas []ZRect, nav Navigation) *Focus {
	if flag.IsZero() {
		return f
	}
	f.entries = append(f.entries, entry{
		flag:   flag,
		area:   area,
		zareas: append([]ZRect(nil), zareas...),
		nav:    nav,
	})
	return f
}

// AddContainer appends the registry built by c.
func (f *Focus) AddContainer(c Container) *Focus {
	if c == nil {
		return f
	}
	return f.Append(c.Focus())
}

// Append splices sub's entries in at the end. sub's container flag, and any
// containers nested inside sub, keep summarising their own entries.
func (f *Focus) Append(sub *Focus) *Focus {
	if sub == nil {
		return f
	}
	offset := len(f.entries)
	f.entries = append(f.entries, sub.entries...)
	for _, s := range sub.spans {
		f.spans = append(f.spans, span{flag: s.flag, area: s.area, start: s.start + offset, end: s.end + offset})
	}
	if !sub.container.IsZero() {
		f.spans = append(f.spans, span{flag: sub.container, area: sub.area, start: offset, end: len(f.entries)})
	}
	return f
}

// ID identifies the registry in trace logs.
func (f *Focus) ID() string {
	if f == nil {
		return ""
	}
	return f.id
}

// Len returns the number of registered flags.
func (f *Focus) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}

// Flags returns the registered flags in traversal order.
func (f *Focus) Flags() []FocusFlag {
	if f == nil {
		return nil
	}
	flags := make([]FocusFlag, len(f.entries))
	for i, e := range f.entries {
		flags[i] = e.flag
	}
	return flags
}

// ContainerFlag returns the registry's own container flag.
func (f *Focus) ContainerFlag() (ContainerFlag, bool) {
	if f == nil || f.container.IsZero() {
		return ContainerFlag{}, false
	}
	return f.container, true
}

// ContainerArea returns the area given at construction.
func (f *Focus) ContainerArea() uv.Rectangle {
	if f == nil {
		return uv.Rectangle{}
	}
	return f.area
}

// Area returns the container area, or the union of all entry areas when no
// container area was given.
func (f *Focus) Area() uv.Rectangle {
	if f == nil {
		return uv.Rectangle{}
	}
	if !f.area.Empty() {
		return f.area
	}
	var area uv.Rectangle
	for _, e := range f.entries {
		area = area.Union(e.area)
	}
	return area
}

// Focused returns the focused flag.
func (f *Focus) Focused() (FocusFlag, bool) {
	if i := f.focusedIndex(); i >= 0 {
		return f.entries[i].flag, true
	}
	return FocusFlag{}, false
}

// FocusedName returns the name of the focused flag or "".
func (f *Focus) FocusedName() string {
	flag, _ := f.Focused()
	return flag.Name()
}

func (f *Focus) focusedIndex() int {
	if f == nil {
		return -1
	}
	for i, e := range f.entries {
		if e.flag.Get() {
			return i
		}
	}
	return -1
}

func (f *Focus) indexOf(flag FocusFlag) int {
	if f == nil || flag.IsZero() {
		return -1
	}
	for i, e := range f.entries {
		if e.flag == flag {
			return i
		}
	}
	return -1
}

// FocusFlag moves the focus to a registered flag.
func (f *Focus) FocusFlag(flag FocusFlag) Outcome {
	idx := f.indexOf(flag)
	if idx < 0 {
		return Continue
	}
	if flag.Get() {
		return Unchanged
	}
	f.transition(f.focusedIndex(), idx, "focus")
	return Changed
}

// First focuses the first keyboard reachable widget.
func (f *Focus) First() Outcome {
	if f.Len() == 0 {
		return Continue
	}
	for i, e := range f.entries {
		if !e.nav.Reachable() {
			continue
		}
		if e.flag.Get() {
			return Unchanged
		}
		f.transition(f.focusedIndex(), i, "first")
		return Changed
	}
	return Continue
}

// Clear removes the focus from every flag and container in the registry.
func (f *Focus) Clear() {
	if f == nil {
		return
	}
	for _, e := range f.entries {
		e.flag.Clear()
	}
	for _, s := range f.spans {
		s.flag.Clear()
	}
	f.container.Clear()
}
