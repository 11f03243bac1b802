package sched

import "github.com/zoobzio/clockz"

// Scheduler is the contract a cooperative scheduler exposes to the
// channel core: a way to check whether blocking is still allowed, a
// clock to evaluate deadlines against, and bookkeeping hooks so the
// scheduler can track how many calls are currently parked. chanrt only
// ever touches a Channel's collaborator through this interface, never
// through Executor's concrete type, so a caller can supply its own
// Scheduler (one that forbids blocking entirely inside a request
// handler, say) without chanrt knowing the difference.
type Scheduler interface {
	// CanBlock returns nil if the caller may park, or the reason it may
	// not (currently always ErrCanceled, returned once shutdown has been
	// requested on the underlying Executor).
	CanBlock() error

	// Clock returns the time source deadlines are measured against.
	Clock() clockz.Clock

	// Spawn records the start of a call that is about to park, and
	// returns a Task that must be passed to Finish exactly once the call
	// is done blocking, however it ends.
	Spawn() Task

	// Finish records that the call started by Spawn is no longer parked.
	Finish(Task)
}
