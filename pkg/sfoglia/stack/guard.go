package stack

import "go.uber.org/atomic"

// Decision is a guard's answer to "may the top entry be popped?".
type Decision int

const (
	// Allow lets the pop proceed immediately.
	Allow Decision = iota

	// Deny blocks the pop immediately; the stack is unchanged.
	Deny

	// Pending defers the answer to an out-of-band confirmation (typically
	// a dialog shown by the render host). The stack stays unmutated and
	// further pops fail with ErrGuardBusy until decide is called.
	Pending
)

// Guard intercepts a pop of the entry it is registered for. It receives the
// entry, the result value passed to Pop, and a decide callback. Return Allow
// or Deny to settle synchronously, or Pending and call decide(true/false)
// once the confirmation arrives.
//
// decide must be called from the goroutine that drives the stack; calling it
// more than once is a no-op.
type Guard func(top Entry, result any, decide func(allow bool)) Decision

// pendingPop is one pop attempt's state machine: Idle -> Intercepted ->
// {Allowed, Denied}. While intercepted, the stack holds a reference to it
// and rejects further pops.
type pendingPop struct {
	stack   *Stack
	key     string // top entry at interception time
	done    atomic.Bool
	applied bool
}

func (p *pendingPop) decide(allow bool) {
	if !p.done.CompareAndSwap(false, true) {
		return
	}
	s := p.stack
	if s.pending == p {
		s.pending = nil
	}
	if !allow {
		return
	}
	// The decision may arrive after the stack moved on (the guard fired
	// synchronously, or the top was replaced while pending). Apply only if
	// the intercepted entry is still the poppable top.
	if len(s.entries) > 1 && s.Top().Key == p.key {
		p.applied = true
		s.removeTop()
	}
}
