package sched_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zoobzio/clockz"

	"github.com/keldir/chanrt/sched"
)

func TestDeadlineKinds(t *testing.T) {
	assert.True(t, sched.Infinite().IsInfinite())
	assert.False(t, sched.Infinite().IsImmediate())

	assert.True(t, sched.Immediate().IsImmediate())
	assert.False(t, sched.Immediate().IsInfinite())

	d := sched.After(clockz.RealClock, time.Second)
	assert.False(t, d.IsInfinite())
	assert.False(t, d.IsImmediate())
}
