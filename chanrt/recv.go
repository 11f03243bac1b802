package chanrt

import "github.com/keldir/chanrt/sched"

// Recv removes and returns the next value from ch, blocking according to
// deadline until a value is available, ch is done with an empty buffer
// (ErrPipe), or the deadline elapses.
//
// The shutdown check runs first, before anything else: a process-wide
// shutdown fails every new call with ErrCanceled even if a buffered
// value or a parked sender would otherwise let it complete without
// blocking at all. Only once that passes does priority order kick in. A
// parked sender is only ever non-empty when the buffer is full
// (invariant I3), so checking the buffer first and only then the sender
// list gives identical FIFO ordering to dequeuing the sender first and
// pulling its value into the vacated buffer slot: here the vacated slot
// is filled by the same Push below, just expressed as two steps instead
// of one.
func Recv[T any](ch *Channel[T], deadline sched.Deadline) (T, error) {
	var zero T

	if err := ch.scheduler.CanBlock(); err != nil {
		return zero, err
	}

	ch.mu.Lock()

	if !ch.buf.Empty() {
		v := ch.buf.Pop()
		if n, ok := ch.sendWaiters.PopFront(); ok {
			ch.buf.Push(*n.elem)
			ch.mu.Unlock()
			n.done.Trigger(sched.Signal{})
			return v, nil
		}
		ch.mu.Unlock()
		return v, nil
	}

	if n, ok := ch.sendWaiters.PopFront(); ok {
		v := *n.elem
		ch.mu.Unlock()
		n.done.Trigger(sched.Signal{})
		logger.Debug().Msg("chanrt: recv handed off from parked sender")
		return v, nil
	}

	if ch.closed {
		ch.mu.Unlock()
		return zero, ErrPipe
	}

	if deadline.IsImmediate() {
		ch.mu.Unlock()
		return zero, ErrTimedOut
	}

	var val T
	n := &node[T]{elem: &val, done: sched.NewWaiter()}
	elem := ch.recvWaiters.PushBack(n)
	task := ch.scheduler.Spawn()
	ch.mu.Unlock()

	err := n.done.Wait(ch.scheduler.Clock(), deadline)
	ch.scheduler.Finish(task)
	if err != nil {
		ch.mu.Lock()
		ch.recvWaiters.Remove(elem)
		ch.mu.Unlock()
		return zero, err
	}
	return val, nil
}
