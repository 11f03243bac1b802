package chanrt

import (
	"github.com/keldir/chanrt/sched"
	"github.com/keldir/chanrt/waitlist"
)

// Clause is one arm of a Choose call: a send or a receive on a specific
// channel. The interface is unexported-method-sealed; SendOp and RecvOp
// are the only way to produce one, so a caller can never assemble a
// half-built clause by hand.
type Clause interface {
	addr() uintptr
	lock()
	unlock()
	// tryNow attempts the operation assuming this clause's channel lock
	// (and no other clause's lock) is required; it must be called with
	// the lock held. ok is true if the clause completed, in which case
	// err is the clause's outcome (nil on success, ErrPipe on a done
	// channel).
	tryNow() (ok bool, err error)
	// park registers w on this clause's channel under lock and returns a
	// token unpark can later use to remove it.
	park(w *sched.Waiter) any
	// unpark removes token from this clause's waiter list under lock and
	// reports whether it was still linked there (false means some
	// counterpart already popped it, so this clause is the one that fired).
	unpark(token any) bool
	scheduler() sched.Scheduler
}

type sendClause[T any] struct {
	ch  *Channel[T]
	val T
}

// SendOp builds a Clause that, when chosen, sends v on ch.
func SendOp[T any](ch *Channel[T], v T) Clause {
	return &sendClause[T]{ch: ch, val: v}
}

func (c *sendClause[T]) addr() uintptr        { return c.ch.addr() }
func (c *sendClause[T]) lock()                { c.ch.mu.Lock() }
func (c *sendClause[T]) unlock()              { c.ch.mu.Unlock() }
func (c *sendClause[T]) scheduler() sched.Scheduler { return c.ch.scheduler }

func (c *sendClause[T]) tryNow() (bool, error) {
	if c.ch.closed {
		return true, ErrPipe
	}
	if n, ok := c.ch.recvWaiters.PopFront(); ok {
		*n.elem = c.val
		n.done.Trigger(sched.Signal{})
		return true, nil
	}
	if !c.ch.buf.Full() {
		c.ch.buf.Push(c.val)
		return true, nil
	}
	return false, nil
}

func (c *sendClause[T]) park(w *sched.Waiter) any {
	val := c.val
	n := &node[T]{elem: &val, done: w}
	return c.ch.sendWaiters.PushBack(n)
}

func (c *sendClause[T]) unpark(token any) bool {
	e := token.(*waitlist.Element[*node[T]])
	wasLinked := e.Linked()
	c.ch.sendWaiters.Remove(e)
	return wasLinked
}

type recvClause[T any] struct {
	ch  *Channel[T]
	out *T
}

// RecvOp builds a Clause that, when chosen, receives from ch into *out.
func RecvOp[T any](ch *Channel[T], out *T) Clause {
	return &recvClause[T]{ch: ch, out: out}
}

func (c *recvClause[T]) addr() uintptr        { return c.ch.addr() }
func (c *recvClause[T]) lock()                { c.ch.mu.Lock() }
func (c *recvClause[T]) unlock()              { c.ch.mu.Unlock() }
func (c *recvClause[T]) scheduler() sched.Scheduler { return c.ch.scheduler }

func (c *recvClause[T]) tryNow() (bool, error) {
	if !c.ch.buf.Empty() {
		v := c.ch.buf.Pop()
		if n, ok := c.ch.sendWaiters.PopFront(); ok {
			c.ch.buf.Push(*n.elem)
			n.done.Trigger(sched.Signal{})
		}
		*c.out = v
		return true, nil
	}
	if n, ok := c.ch.sendWaiters.PopFront(); ok {
		*c.out = *n.elem
		n.done.Trigger(sched.Signal{})
		return true, nil
	}
	if c.ch.closed {
		return true, ErrPipe
	}
	return false, nil
}

func (c *recvClause[T]) park(w *sched.Waiter) any {
	n := &node[T]{elem: c.out, done: w}
	return c.ch.recvWaiters.PushBack(n)
}

func (c *recvClause[T]) unpark(token any) bool {
	e := token.(*waitlist.Element[*node[T]])
	wasLinked := e.Linked()
	c.ch.recvWaiters.Remove(e)
	return wasLinked
}
