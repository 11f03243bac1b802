package chanrt

import "github.com/keldir/chanrt/sched"

// Send delivers v on ch, blocking according to deadline if no counterpart
// or buffer slot is immediately available.
//
// The shutdown check runs first, before anything else: a process-wide
// shutdown fails every new call with ErrCanceled even if a parked
// receiver or free buffer slot would otherwise let it complete without
// blocking at all. Only once that passes does priority order kick in: a
// parked receiver is handed the value directly before the buffer is
// ever touched, because a direct hand-off is strictly cheaper than a
// buffer round trip and preserves FIFO order identically (a receiver
// only parks when the buffer is already empty, invariant I4).
func Send[T any](ch *Channel[T], v T, deadline sched.Deadline) error {
	if err := ch.scheduler.CanBlock(); err != nil {
		return err
	}

	ch.mu.Lock()

	if ch.closed {
		ch.mu.Unlock()
		return ErrPipe
	}

	if n, ok := ch.recvWaiters.PopFront(); ok {
		*n.elem = v
		ch.mu.Unlock()
		n.done.Trigger(sched.Signal{})
		logger.Debug().Msg("chanrt: send handed off to parked receiver")
		return nil
	}

	if !ch.buf.Full() {
		ch.buf.Push(v)
		ch.mu.Unlock()
		return nil
	}

	if deadline.IsImmediate() {
		ch.mu.Unlock()
		return ErrTimedOut
	}

	val := v
	n := &node[T]{elem: &val, done: sched.NewWaiter()}
	elem := ch.sendWaiters.PushBack(n)
	task := ch.scheduler.Spawn()
	ch.mu.Unlock()

	err := n.done.Wait(ch.scheduler.Clock(), deadline)
	ch.scheduler.Finish(task)
	if err != nil {
		ch.mu.Lock()
		ch.sendWaiters.Remove(elem)
		ch.mu.Unlock()
	}
	return err
}
