package sched

import (
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"go.uber.org/atomic"
)

// Executor is the reference Scheduler: a process-wide shutdown flag plus
// an outstanding-task count. Task bookkeeping uses a stdlib
// sync.WaitGroup (Add on Spawn, Done on Finish, Wait on Shutdown) rather
// than a hand-rolled counter: WaitGroup already is the "wait for N
// outstanding things to finish" primitive this needs.
type Executor struct {
	clock    clockz.Clock
	shutdown atomic.Bool
	tasks    sync.WaitGroup
}

// NewExecutor returns an Executor driven by clock. Pass clockz.RealClock
// in production; tests pass a fake clock so deadline-based scenarios
// don't need a real time.Sleep.
func NewExecutor(clock clockz.Clock) *Executor {
	return &Executor{clock: clock}
}

// Clock implements Scheduler.
func (e *Executor) Clock() clockz.Clock { return e.clock }

// CanBlock implements Scheduler.
func (e *Executor) CanBlock() error {
	if e.shutdown.Load() {
		return ErrCanceled
	}
	return nil
}

// Task identifies one outstanding blocking call, for logging only.
type Task struct {
	ID uuid.UUID
}

// Spawn records the start of a blocking call and returns a Task the
// caller must pass to Finish exactly once, however the call ends
// (success, error, or panic via defer). This is the Add half of the
// WaitGroup pattern: Shutdown's Wait only returns once every spawned task
// has called Finish.
func (e *Executor) Spawn() Task {
	e.tasks.Add(1)
	return Task{ID: uuid.New()}
}

// Finish records that the blocking call task started is over.
func (e *Executor) Finish(Task) {
	e.tasks.Done()
}

// Shutdown sets the cancellation flag so every future CanBlock call
// fails, then waits for every call already parked (every Send, Recv, or
// Choose that reached Spawn before the flag was set) to unwind. It does
// not itself wake parked waiters; closing the channels they are parked
// on is what does that. Shutdown only stops new blocking calls from
// starting and gives the caller a way to know when the last old one has
// drained.
func (e *Executor) Shutdown() {
	e.shutdown.Store(true)
	e.tasks.Wait()
}
