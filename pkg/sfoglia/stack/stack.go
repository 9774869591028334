// Package stack owns the ordered sequence of active pages and the
// back-navigation guard that can veto removing the top one.
package stack

import (
	"errors"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

// Sentinel errors for stack mutations. Every failed operation leaves the
// stack exactly as it was before the call.
var (
	// ErrEmptyStack indicates an attempt to pop the root entry. The stack
	// never drops below one entry.
	ErrEmptyStack = errors.New("cannot pop the root entry")

	// ErrGuardBusy indicates a pop was attempted while a previous pop's
	// guard decision is still pending. Overlapping pops are rejected, not
	// queued.
	ErrGuardBusy = errors.New("a pop decision is already pending")
)

// Entry is one element of the navigation stack. Key is minted at creation
// and never reused; it is the unit of identity a render host keys entry
// lifecycle and animation on.
type Entry struct {
	Key        string
	Descriptor route.Descriptor
}

func newEntry(d route.Descriptor) Entry {
	return Entry{
		Key:        uuid.NewString(),
		Descriptor: d,
	}
}

// ChangedFunc receives a point-in-time snapshot after every applied
// mutation. It is never called for a mutation that was vetoed or failed.
type ChangedFunc func(entries []Entry)

// Config wires a Stack's collaborators at construction.
type Config struct {
	// OnChanged is invoked strictly after each applied mutation with a
	// fresh snapshot. Optional.
	OnChanged ChangedFunc

	// GuardFor returns the pop guard for an entry, nil if unguarded.
	// Looked up at pop time, so a guard registered after the entry was
	// pushed still applies. Optional.
	GuardFor func(Entry) Guard
}

// Stack is the ordered sequence of active entries. The first entry is the
// home page and can never be popped; the last entry is the active one. All
// mutation goes through the Stack's own operations — callers observe state
// only through snapshots.
type Stack struct {
	entries  []Entry
	onChange ChangedFunc
	guardFor func(Entry) Guard
	pending  *pendingPop
}

// New creates a stack whose root entry wraps home. The root is permanent:
// the stack's length never drops below one.
func New(home route.Descriptor, cfg Config) *Stack {
	s := &Stack{
		entries:  make([]Entry, 0, 4),
		onChange: cfg.OnChanged,
		guardFor: cfg.GuardFor,
	}
	s.entries = append(s.entries, newEntry(home))
	return s
}

// Push appends a new entry wrapping d and returns it.
func (s *Stack) Push(d route.Descriptor) Entry {
	e := newEntry(d)
	s.entries = append(s.entries, e)
	s.notify()
	return e
}

// ReplaceTop swaps the top entry for a new one wrapping d. The length is
// unchanged and the replacement is a single logical operation: a later pop
// lands on the entry below, never on the replaced one.
func (s *Stack) ReplaceTop(d route.Descriptor) Entry {
	e := newEntry(d)
	s.entries[len(s.entries)-1] = e
	s.notify()
	return e
}

// Pop attempts to remove the top entry, consulting its guard if one is
// registered. The result value is handed to the guard (a page returning data
// to the one below it). Pop reports whether the removal was applied: false
// with a nil error means the guard denied it or left the decision pending.
//
// Popping the root fails with ErrEmptyStack. Popping while another pop's
// decision is pending fails with ErrGuardBusy.
func (s *Stack) Pop(result any) (bool, error) {
	if s.pending != nil {
		return false, ErrGuardBusy
	}
	if len(s.entries) == 1 {
		return false, ErrEmptyStack
	}
	top := s.Top()

	var g Guard
	if s.guardFor != nil {
		g = s.guardFor(top)
	}
	if g == nil {
		s.removeTop()
		return true, nil
	}

	p := &pendingPop{stack: s, key: top.Key}
	s.pending = p
	switch g(top, result, p.decide) {
	case Allow:
		if !p.done.CompareAndSwap(false, true) {
			// decide already ran inside the guard; it settled the pop
			return p.applied, nil
		}
		s.pending = nil
		s.removeTop()
		return true, nil
	case Deny:
		if !p.done.CompareAndSwap(false, true) {
			return p.applied, nil
		}
		s.pending = nil
		return false, nil
	default: // Pending: decide() completes the pop later
		return p.applied, nil
	}
}

// PopUntil pops entries until pred holds for the top one, never popping the
// root. Each removal runs through the top entry's guard; a denied or pending
// decision stops the walk without error.
func (s *Stack) PopUntil(pred func(Entry) bool) error {
	for len(s.entries) > 1 && !pred(s.Top()) {
		applied, err := s.Pop(nil)
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
	}
	return nil
}

// Top returns the active entry.
func (s *Stack) Top() Entry {
	return s.entries[len(s.entries)-1]
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Snapshot returns a copy of the entries in depth order, bottom first. The
// copy is consistent at a single point in time and detached from later
// mutations.
func (s *Stack) Snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stack) removeTop() {
	s.entries = s.entries[:len(s.entries)-1]
	s.notify()
}

func (s *Stack) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
