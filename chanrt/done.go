package chanrt

import "github.com/keldir/chanrt/sched"

// Done marks ch as done: no further Send may succeed (every future and
// currently-parked Send fails with ErrPipe), while Recv keeps draining
// whatever remains buffered until it is empty, only then also failing
// with ErrPipe. Calling Done on an already-done channel is itself
// ErrPipe rather than a no-op.
//
// Marking done and releasing the channel's handle are kept as two
// separate steps rather than folded into one close operation: "no more
// sends will happen" is a fact about the channel's state, while freeing
// its handle is a fact about the caller's bookkeeping. Done on an
// already-done channel returns ErrPipe rather than being a no-op, unlike
// Go's own channel close which panics on a second close.
func (ch *Channel[T]) Done() error {
	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return ErrPipe
	}
	ch.closed = true

	var woken int
	for {
		n, ok := ch.sendWaiters.PopFront()
		if !ok {
			break
		}
		n.done.Trigger(sched.Signal{Err: ErrPipe})
		woken++
	}
	for {
		n, ok := ch.recvWaiters.PopFront()
		if !ok {
			break
		}
		n.done.Trigger(sched.Signal{Err: ErrPipe})
		woken++
	}
	ch.mu.Unlock()

	logger.Debug().Int("woken", woken).Msg("chanrt: channel done")
	return nil
}
