package sched

import "github.com/zeebo/errs"

// CanceledClass and TimedOutClass are the two error kinds that belong to
// the scheduler rather than to a specific channel: CANCELED comes from
// the process-wide shutdown flag consulted by CanBlock, TIMEDOUT comes
// from a Waiter's deadline elapsing before any clause fired. chanrt
// re-exports both so callers never need to import sched directly just to
// compare errors.
var (
	CanceledClass = errs.Class("canceled")
	TimedOutClass = errs.Class("timed out")
)

// ErrCanceled is returned by any blocking operation started after the
// scheduler's shutdown flag was set.
var ErrCanceled = CanceledClass.New("process shutdown in progress")

// ErrTimedOut is returned when a deadline elapses before a parked clause
// fires, or immediately when the caller asked for an immediate poll and
// no fast path applied.
var ErrTimedOut = TimedOutClass.New("deadline exceeded")
