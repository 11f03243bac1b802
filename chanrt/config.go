package chanrt

import (
	"github.com/zoobzio/clockz"

	"github.com/keldir/chanrt/sched"
)

// Option configures a Channel at Create time. The functional-options shape
// fits constructors with few, rarely-changed knobs better than a Config
// struct of public fields would: a synchronization primitive has exactly
// one knob worth overriding per channel (which scheduler collaborator it
// consults), which needs no read-back after Create, so there is nothing a
// struct field would buy over a closure.
type Option func(*config)

type config struct {
	scheduler sched.Scheduler
}

func defaultConfig() *config {
	return &config{
		scheduler: defaultExecutor,
	}
}

// defaultExecutor backs every Channel created without an explicit
// WithScheduler option. It is shared process-wide rather than allocated
// per channel, since its only state is the shutdown flag, the
// outstanding-task count, and the real clock.
var defaultExecutor = sched.NewExecutor(clockz.RealClock)

// WithScheduler overrides the scheduler collaborator a Channel consults
// for CanBlock, Clock, Spawn, and Finish. Tests pass an Executor built
// over clockz.NewFakeClock() so deadline scenarios don't sleep in real
// time.
func WithScheduler(s sched.Scheduler) Option {
	return func(c *config) { c.scheduler = s }
}
