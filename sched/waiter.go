package sched

import (
	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"go.uber.org/atomic"
)

// Signal is what Trigger delivers to a parked Waiter: either a clean
// wakeup (Err == nil, the counterpart already did the copy) or one of the
// per-clause errors a close or deadline produces.
type Signal struct {
	Err error
}

// Waiter is a single-use parking slot: a caller-owned record, linked
// into a channel's waiter list, that the channel later pops and fires
// exactly once. It pins a goroutine blocked in Wait rather than a
// suspended call stack, since nothing below this package has a stackful
// coroutine to suspend. The registering code owns the Waiter until
// Trigger fires it, at which point ownership of any copied payload
// passes to whichever side is about to observe the result.
type Waiter struct {
	id    uuid.UUID
	ch    chan Signal
	fired atomic.Bool
}

// NewWaiter allocates a fresh, unfired parking slot.
func NewWaiter() *Waiter {
	return &Waiter{id: uuid.New(), ch: make(chan Signal, 1)}
}

// ID identifies the waiter in logs; it has no effect on behavior.
func (w *Waiter) ID() uuid.UUID { return w.id }

// Trigger fires w with sig. Only the first caller wins: the second and
// later calls are no-ops and return false, which is what lets a clause
// parked on several waiter lists by Choose be safely triggered from two
// lists racing each other. The losing side's Trigger simply has no
// effect, so there is no separate unregister step to get right.
func (w *Waiter) Trigger(sig Signal) bool {
	if !w.fired.CompareAndSwap(false, true) {
		return false
	}
	w.ch <- sig
	return true
}

// Wait blocks until w is triggered or deadline elapses, whichever is
// first, and returns the resulting error (nil on a clean wakeup). Arming
// the deadline and waiting are one call rather than two steps, since a
// parked goroutine has nothing else useful to do between them.
func (w *Waiter) Wait(clock clockz.Clock, deadline Deadline) error {
	timer := deadline.fire(clock)
	select {
	case sig := <-w.ch:
		return sig.Err
	case <-timer:
		if w.Trigger(Signal{Err: ErrTimedOut}) {
			return ErrTimedOut
		}
		// Lost the race: something else triggered us between the timer
		// firing and our CompareAndSwap. Take that result instead of a
		// manufactured timeout.
		return (<-w.ch).Err
	}
}
