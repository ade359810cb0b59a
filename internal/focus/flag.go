package focus

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

var lastFlagID = atomic.NewUint64(0)

// FlagState is a consistent snapshot of a flag.
type FlagState struct {
	Focused bool
	Gained  bool
	Lost    bool
}

// flagCore is shared by every handle copied from the same constructor call.
// The three booleans are guarded jointly so readers never see a torn state.
type flagCore struct {
	id   uint64
	name string

	mu      sync.RWMutex
	focused bool
	gained  bool
	lost    bool
}

func newFlagCore(name string) *flagCore {
	return &flagCore{id: lastFlagID.Inc(), name: name}
}

// Get reports whether the flag has the focus.
func (c *flagCore) Get() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.focused
}

// Set sets the focus. Transients are left alone.
func (c *flagCore) Set(focused bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.focused = focused
	c.mu.Unlock()
}

// Gained reports whether the flag just gained the focus.
func (c *flagCore) Gained() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gained
}

func (c *flagCore) SetGained(gained bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.gained = gained
	c.mu.Unlock()
}

// Lost reports whether the flag just lost the focus.
func (c *flagCore) Lost() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lost
}

func (c *flagCore) SetLost(lost bool) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.lost = lost
	c.mu.Unlock()
}

// Clear resets focused, gained and lost in one step.
func (c *flagCore) Clear() {
	c.store(FlagState{})
}

// State returns all three booleans read under one lock.
func (c *flagCore) State() FlagState {
	if c == nil {
		return FlagState{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FlagState{Focused: c.focused, Gained: c.gained, Lost: c.lost}
}

// Name returns the debug label given at construction.
func (c *flagCore) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// ID is unique per core and increases with construction order.
// The zero handle has ID 0.
func (c *flagCore) ID() uint64 {
	if c == nil {
		return 0
	}
	return c.id
}

func (c *flagCore) store(s FlagState) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.focused, c.gained, c.lost = s.Focused, s.Gained, s.Lost
	c.mu.Unlock()
}

func (c *flagCore) clearTransients() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.gained, c.lost = false, false
	c.mu.Unlock()
}

// FocusFlag is the focus handle embedded in a widget's state. Copies share the
// same underlying flag; == compares identity, never the flag values.
type FocusFlag struct {
	*flagCore
}

// NewFocusFlag creates an unnamed flag.
func NewFocusFlag() FocusFlag {
	return FocusFlag{newFlagCore("")}
}

// NamedFocusFlag creates a flag labelled name for logs and debugging.
func NamedFocusFlag(name string) FocusFlag {
	return FocusFlag{newFlagCore(name)}
}

// IsZero reports whether the handle references no flag.
func (f FocusFlag) IsZero() bool {
	return f.flagCore == nil
}

func (f FocusFlag) String() string {
	return fmt.Sprintf("|%s|", f.Name())
}

// GoString mirrors the debug representation used in test failures.
func (f FocusFlag) GoString() string {
	s := f.State()
	return fmt.Sprintf("FocusFlag{name:%q focus:%t gained:%t lost:%t}", f.Name(), s.Focused, s.Gained, s.Lost)
}

// ContainerFlag marks the focus of a container. It is focused while any
// widget of the container is focused and identifies the container.
type ContainerFlag struct {
	*flagCore
}

// NewContainerFlag creates an unnamed container flag.
func NewContainerFlag() ContainerFlag {
	return ContainerFlag{newFlagCore("")}
}

// NamedContainerFlag creates a container flag labelled name.
func NamedContainerFlag(name string) ContainerFlag {
	return ContainerFlag{newFlagCore(name)}
}

// IsZero reports whether the handle references no flag.
func (f ContainerFlag) IsZero() bool {
	return f.flagCore == nil
}

func (f ContainerFlag) String() string {
	return fmt.Sprintf("|%s|", f.Name())
}

func (f ContainerFlag) GoString() string {
	s := f.State()
	return fmt.Sprintf("ContainerFlag{name:%q focus:%t gained:%t lost:%t}", f.Name(), s.Focused, s.Gained, s.Lost)
}
