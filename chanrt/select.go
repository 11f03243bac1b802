package chanrt

import "github.com/keldir/chanrt/sched"

// Choose evaluates a multi-way send/receive across possibly-heterogeneous
// channels, built from SendOp/RecvOp clauses. It returns the index of the
// clause that completed and that clause's outcome (nil on a normal
// transfer, ErrPipe if the winning clause's channel was or became done).
//
// Structure runs in three passes: lock every involved channel in address
// order (lockorder.go), poll each clause in the caller-given order for
// one that can complete without parking (this order is deterministic
// rather than randomized), and only if none can, park on every clause at
// once behind one shared sched.Waiter so the first counterpart to act on
// any of them wins, then unregister the losers.
//
// The shutdown check runs first, before any lock is taken or any clause
// polled: a process-wide shutdown fails Choose with ErrCanceled even if
// one of the clauses could complete immediately. All clauses must share
// a scheduler (same Executor); Choose consults clauses[0]'s for
// CanBlock/Clock/Spawn/Finish.
func Choose(deadline sched.Deadline, clauses ...Clause) (int, error) {
	if len(clauses) == 0 {
		return -1, ErrInvalid
	}

	sc := clauses[0].scheduler()
	if err := sc.CanBlock(); err != nil {
		return -1, err
	}

	order := lockOrder(clauses)
	lockAll := func() {
		for _, i := range order {
			clauses[i].lock()
		}
	}
	unlockAll := func() {
		for i := len(order) - 1; i >= 0; i-- {
			clauses[order[i]].unlock()
		}
	}

	lockAll()

	for i, c := range clauses {
		if ok, err := c.tryNow(); ok {
			unlockAll()
			logger.Debug().Int("clause", i).Msg("chanrt: choose completed without parking")
			return i, err
		}
	}

	if deadline.IsImmediate() {
		unlockAll()
		return -1, ErrTimedOut
	}

	w := sched.NewWaiter()
	tokens := make([]any, len(clauses))
	for i, c := range clauses {
		tokens[i] = c.park(w)
	}
	task := sc.Spawn()
	unlockAll()

	waitErr := w.Wait(sc.Clock(), deadline)
	sc.Finish(task)

	lockAll()
	fired := -1
	for i, c := range clauses {
		if !c.unpark(tokens[i]) {
			fired = i
		}
	}
	unlockAll()

	if fired == -1 {
		return -1, waitErr
	}
	logger.Debug().Int("clause", fired).Msg("chanrt: choose woke from park")
	return fired, waitErr
}
