// Package chanrt is the channel synchronization core: rendezvous
// hand-off, a bounded buffer that degrades gracefully to pure rendezvous
// at capacity zero, a two-phase done/close protocol, and a multi-way
// Choose built on the same waiter lists Send and Recv use.
//
// A channel keeps the "no more sends" signal conceptually separate from
// releasing its resources: closing is one bit that unblocks every parked
// and future call, while the handle that names the channel is a
// separate, later lifecycle event.
package chanrt

import (
	"sync"
	"unsafe"

	"github.com/keldir/chanrt/ring"
	"github.com/keldir/chanrt/sched"
	"github.com/keldir/chanrt/waitlist"
)

// node is one parked clause on a channel's waiter list. elem points at
// the value slot owned by whichever side parked (the sender's outgoing
// value, or the receiver's destination); done is the single-use wakeup
// shared with the parking call. A plain Send or Recv owns a node with a
// freshly allocated sched.Waiter; a Choose clause shares one
// sched.Waiter across every channel it parks on, so only the first
// sibling to fire wins (sched.Waiter.Trigger's compare-and-swap), and the
// rest are unregistered by their *waitlist.Element once Choose wakes.
type node[T any] struct {
	elem *T
	done *sched.Waiter
}

// Channel is a generic, capacity-bounded CSP channel. The zero value is
// not usable; construct one with Create.
//
// Invariants (I1-I5), preserved under mu:
//
//	I1: 0 <= buf.Len() <= buf.Cap()
//	I2: buf.Cap() == 0  =>  buf.Len() == 0 (pure rendezvous channel)
//	I3: sendWaiters non-empty  =>  buf.Full() (a sender only parks when
//	    there is nowhere to put its value and no receiver to hand it to)
//	I4: recvWaiters non-empty  =>  buf.Empty() (a receiver only parks
//	    when there is nothing buffered and no sender to take from)
//	I5: once closed is true it never becomes false again
type Channel[T any] struct {
	mu          sync.Mutex
	buf         *ring.Buffer[T]
	sendWaiters waitlist.List[*node[T]]
	recvWaiters waitlist.List[*node[T]]
	closed      bool
	scheduler   sched.Scheduler
}

// Create allocates a channel with the given buffer capacity. capacity ==
// 0 yields a pure rendezvous channel; capacity < 0 is ErrInvalid. Create
// also fails with ErrCanceled if a process-wide shutdown has already been
// signaled on the configured scheduler, the same as any other blocking
// entry point.
func Create[T any](capacity int, opts ...Option) (*Channel[T], error) {
	if capacity < 0 {
		return nil, ErrInvalid
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.scheduler.CanBlock(); err != nil {
		return nil, err
	}
	ch := &Channel[T]{
		buf:       ring.New[T](capacity),
		scheduler: cfg.scheduler,
	}
	logger.Debug().Int("capacity", capacity).Msg("chanrt: channel created")
	return ch, nil
}

// addr returns a value that uniquely (for the process lifetime) orders
// ch against any other channel, used by Choose to lock a clause set in a
// fixed global order regardless of the order the caller listed them in
// (see lockorder.go).
func (ch *Channel[T]) addr() uintptr {
	return uintptr(unsafe.Pointer(ch))
}
