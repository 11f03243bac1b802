package chanrt

import (
	"github.com/keldir/chanrt/handle"
	"github.com/keldir/chanrt/sched"
)

// Handle is an opaque reference to a registered channel, returned by
// CreateHandle and consumed by SendH, RecvH, DoneH, and CloseHandle. It
// lets a caller pass a channel around as a comparable value (across an
// RPC boundary, through a map key, logged in a trace) without handing
// out the concrete *Channel[T].
type Handle = handle.Handle

var registry = handle.NewTable[any]()

// CreateHandle allocates a channel the same way Create does and registers
// it in the package-wide handle table, returning a Handle in place of the
// *Channel[T] itself.
func CreateHandle[T any](capacity int, opts ...Option) (Handle, error) {
	ch, err := Create[T](capacity, opts...)
	if err != nil {
		return 0, err
	}
	return registry.Create(ch), nil
}

// resolve looks up h and asserts it was registered for element type T. A
// handle that was never issued, was already closed, or names a channel of
// a different element type all fail the same way: ErrBadHandle. Returning
// one error for all three keeps a caller from branching on which kind of
// staleness it hit, since none of them are recoverable at the call site.
func resolve[T any](h Handle) (*Channel[T], error) {
	v, ok := registry.Query(h)
	if !ok {
		return nil, ErrBadHandle
	}
	ch, ok := v.(*Channel[T])
	if !ok {
		return nil, ErrBadHandle
	}
	return ch, nil
}

// SendH resolves h and delivers v on the channel it names.
func SendH[T any](h Handle, v T, deadline sched.Deadline) error {
	ch, err := resolve[T](h)
	if err != nil {
		return err
	}
	return Send(ch, v, deadline)
}

// RecvH resolves h and receives the next value from the channel it names.
func RecvH[T any](h Handle, deadline sched.Deadline) (T, error) {
	var zero T
	ch, err := resolve[T](h)
	if err != nil {
		return zero, err
	}
	return Recv(ch, deadline)
}

// DoneH resolves h and marks the channel it names as done, without
// removing h from the registry: a caller may still Recv whatever remains
// buffered through the same handle until it drains to ErrPipe.
func DoneH[T any](h Handle) error {
	ch, err := resolve[T](h)
	if err != nil {
		return err
	}
	return ch.Done()
}

// CloseHandle removes h from the registry so it can never be resolved
// again; any later SendH/RecvH/DoneH against it fails with ErrBadHandle.
// It does not itself mark the channel done; call DoneH first if the
// channel should stop accepting sends before its handle is retired.
func CloseHandle[T any](h Handle) error {
	if _, ok := registry.Close(h); !ok {
		return ErrBadHandle
	}
	return nil
}
