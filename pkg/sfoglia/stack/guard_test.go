package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// guardedStack builds a two-entry stack whose top is guarded by g.
func guardedStack(t *testing.T, g stack.Guard, onChanged stack.ChangedFunc) *stack.Stack {
	t.Helper()
	s := stack.New(descriptor("/"), stack.Config{
		OnChanged: onChanged,
		GuardFor: func(e stack.Entry) stack.Guard {
			if e.Descriptor.Name == "/guarded" {
				return g
			}
			return nil
		},
	})
	s.Push(descriptor("/guarded"))
	return s
}

func TestGuardAllowPopsImmediately(t *testing.T) {
	s := guardedStack(t, func(top stack.Entry, result any, decide func(bool)) stack.Decision {
		assert.Equal(t, "bye", result)
		return stack.Allow
	}, nil)

	applied, err := s.Pop("bye")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, s.Len())
}

func TestGuardDenyLeavesStackIdentical(t *testing.T) {
	notified := 0
	s := guardedStack(t, func(stack.Entry, any, func(bool)) stack.Decision {
		return stack.Deny
	}, func([]stack.Entry) {
		notified++
	})
	notified = 0 // ignore the setup push
	before := s.Snapshot()

	applied, err := s.Pop(nil)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, before, s.Snapshot())
	assert.Zero(t, notified, "a vetoed pop must not notify")
}

func TestGuardPendingDefersTheDecision(t *testing.T) {
	var decide func(bool)
	s := guardedStack(t, func(top stack.Entry, result any, d func(bool)) stack.Decision {
		decide = d
		return stack.Pending
	}, nil)

	applied, err := s.Pop(nil)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 2, s.Len(), "stack must not mutate while pending")

	decide(true)
	assert.Equal(t, 1, s.Len())
}

func TestGuardPendingDeniedByDecision(t *testing.T) {
	var decide func(bool)
	s := guardedStack(t, func(top stack.Entry, result any, d func(bool)) stack.Decision {
		decide = d
		return stack.Pending
	}, nil)

	_, err := s.Pop(nil)
	require.NoError(t, err)

	decide(false)
	assert.Equal(t, 2, s.Len())

	// The guard slot is free again after the denial.
	applied, err := s.Pop(nil)
	require.NoError(t, err)
	assert.False(t, applied) // still pending on the new attempt
}

func TestSecondPopWhilePendingIsRejected(t *testing.T) {
	s := guardedStack(t, func(stack.Entry, any, func(bool)) stack.Decision {
		return stack.Pending
	}, nil)

	_, err := s.Pop(nil)
	require.NoError(t, err)

	applied, err := s.Pop(nil)
	assert.False(t, applied)
	assert.ErrorIs(t, err, stack.ErrGuardBusy)
	assert.Equal(t, 2, s.Len())
}

func TestDecideIsIdempotent(t *testing.T) {
	var decide func(bool)
	s := guardedStack(t, func(top stack.Entry, result any, d func(bool)) stack.Decision {
		decide = d
		return stack.Pending
	}, nil)

	_, err := s.Pop(nil)
	require.NoError(t, err)

	decide(true)
	decide(true)
	decide(false)
	assert.Equal(t, 1, s.Len())
}

func TestSynchronousDecideBeforeGuardReturns(t *testing.T) {
	// A confirmation provider may answer on the spot: decide fires inside
	// the guard, before it returns Pending.
	s := guardedStack(t, func(top stack.Entry, result any, decide func(bool)) stack.Decision {
		decide(true)
		return stack.Pending
	}, nil)

	applied, err := s.Pop(nil)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, s.Len())
}

func TestLateDecisionAfterTopReplaced(t *testing.T) {
	var decide func(bool)
	s := guardedStack(t, func(top stack.Entry, result any, d func(bool)) stack.Decision {
		decide = d
		return stack.Pending
	}, nil)

	_, err := s.Pop(nil)
	require.NoError(t, err)

	// The stack moved on while the confirmation dialog was up.
	s.ReplaceTop(descriptor("/other"))

	decide(true)
	assert.Equal(t, 2, s.Len(), "a stale decision must not pop the new top")
	assert.Equal(t, route.Name("/other"), s.Top().Descriptor.Name)
}

func TestPopInsideGuardIsBusy(t *testing.T) {
	var innerErr error
	var s *stack.Stack
	s = guardedStack(t, func(stack.Entry, any, func(bool)) stack.Decision {
		_, innerErr = s.Pop(nil)
		return stack.Deny
	}, nil)

	applied, err := s.Pop(nil)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.ErrorIs(t, innerErr, stack.ErrGuardBusy)
}
