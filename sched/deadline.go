package sched

import (
	"time"

	"github.com/zoobzio/clockz"
)

type deadlineKind int8

const (
	kindInfinite deadlineKind = iota // deadline == -1: never give up
	kindImmediate                    // deadline == 0: fail instead of parking
	kindAbsolute                     // deadline > 0: an absolute instant
)

// Deadline is a small value type describing when a blocking call should
// give up: never, immediately, or at a specific instant. Using a value
// type here instead of a bare int or duration avoids any ambiguity about
// sign conventions or units at the call site.
type Deadline struct {
	kind deadlineKind
	at   time.Time
}

// Infinite never elapses; the caller parks until a counterpart or a close
// triggers it.
func Infinite() Deadline { return Deadline{kind: kindInfinite} }

// Immediate never parks: it fails with ErrTimedOut the instant no fast
// path applies.
func Immediate() Deadline { return Deadline{kind: kindImmediate} }

// At elapses at the given absolute instant.
func At(t time.Time) Deadline { return Deadline{kind: kindAbsolute, at: t} }

// After elapses once d has passed on clock, starting now.
func After(clock clockz.Clock, d time.Duration) Deadline {
	return At(clock.Now().Add(d))
}

// IsImmediate reports whether the deadline is the "poll, don't park" form.
func (d Deadline) IsImmediate() bool { return d.kind == kindImmediate }

// IsInfinite reports whether the deadline never elapses.
func (d Deadline) IsInfinite() bool { return d.kind == kindInfinite }

// fire returns a channel that receives once the deadline has elapsed on
// clock, or nil for an infinite deadline (select on a nil channel blocks
// forever, which is exactly what we want: no case ever becomes ready).
func (d Deadline) fire(clock clockz.Clock) <-chan time.Time {
	switch d.kind {
	case kindInfinite:
		return nil
	case kindImmediate:
		c := make(chan time.Time, 1)
		c <- clock.Now()
		return c
	default:
		remaining := d.at.Sub(clock.Now())
		if remaining <= 0 {
			c := make(chan time.Time, 1)
			c <- clock.Now()
			return c
		}
		return clock.After(remaining)
	}
}
