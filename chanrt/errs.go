package chanrt

import (
	"github.com/zeebo/errs"

	"github.com/keldir/chanrt/sched"
)

// Error classes for the four failure kinds that belong to a channel
// itself rather than to the scheduler collaborator: a bad handle, an
// invalid argument, a send/receive against a done channel, and an
// allocation failure. CANCELED and TIMEDOUT are scheduler-owned and
// re-exported below so callers never need to import sched just to compare
// errors with errors.Is.
var (
	BadHandleClass = errs.Class("bad handle")
	InvalidClass   = errs.Class("invalid argument")
	PipeClass      = errs.Class("done channel")
	OutOfMemClass  = errs.Class("out of memory")
)

var (
	// ErrBadHandle is returned when a handle.Handle does not resolve to a
	// live channel: it was never issued, already closed, or issued for a
	// different element type.
	ErrBadHandle = BadHandleClass.New("handle does not refer to a live channel")

	// ErrInvalid is returned for malformed arguments: negative capacity,
	// an empty Choose clause list, and similar caller errors.
	ErrInvalid = InvalidClass.New("invalid argument")

	// ErrPipe is returned by Send on a done channel, and by Recv once a
	// done channel's buffer has drained.
	ErrPipe = PipeClass.New("channel is done")

	// ErrOutOfMemory is the out-of-memory error kind. Create does not
	// return it: a failed buffer allocation panics in the Go runtime
	// instead of returning an error.
	ErrOutOfMemory = OutOfMemClass.New("cannot allocate channel buffer")

	// ErrCanceled is sched.ErrCanceled, re-exported so chanrt callers
	// never import sched directly.
	ErrCanceled = sched.ErrCanceled

	// ErrTimedOut is sched.ErrTimedOut, re-exported for the same reason.
	ErrTimedOut = sched.ErrTimedOut
)
