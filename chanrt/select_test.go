package chanrt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/keldir/chanrt/chanrt"
	"github.com/keldir/chanrt/sched"
)

func TestChoosePicksReadyClauseWithoutParking(t *testing.T) {
	a, err := chanrt.Create[int](1)
	require.NoError(t, err)
	b, err := chanrt.Create[string](1)
	require.NoError(t, err)

	require.NoError(t, chanrt.Send(b, "ready", sched.Immediate()))

	var recvA int
	var recvB string
	idx, err := chanrt.Choose(sched.Immediate(),
		chanrt.RecvOp(a, &recvA),
		chanrt.RecvOp(b, &recvB),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "ready", recvB)
}

func TestChooseInvalidWithNoClauses(t *testing.T) {
	_, err := chanrt.Choose(sched.Infinite())
	assert.ErrorIs(t, err, chanrt.ErrInvalid)
}

func TestChooseImmediateTimesOutWhenNothingReady(t *testing.T) {
	a, err := chanrt.Create[int](0)
	require.NoError(t, err)

	var out int
	_, err = chanrt.Choose(sched.Immediate(), chanrt.RecvOp(a, &out))
	assert.ErrorIs(t, err, chanrt.ErrTimedOut)
}

func TestChooseParksThenWakesOnCounterpart(t *testing.T) {
	a, err := chanrt.Create[int](0)
	require.NoError(t, err)
	b, err := chanrt.Create[int](0)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		require.NoError(t, chanrt.Send(b, 99, sched.Infinite()))
	}()

	var recvA, recvB int
	idx, err := chanrt.Choose(sched.Infinite(),
		chanrt.RecvOp(a, &recvA),
		chanrt.RecvOp(b, &recvB),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 99, recvB)
}

func TestChooseSendClauseCompletesAgainstParkedReceiver(t *testing.T) {
	ch, err := chanrt.Create[int](0)
	require.NoError(t, err)

	recvDone := make(chan int, 1)
	go func() {
		v, err := chanrt.Recv(ch, sched.Infinite())
		require.NoError(t, err)
		recvDone <- v
	}()

	time.Sleep(20 * time.Millisecond)
	idx, err := chanrt.Choose(sched.Infinite(), chanrt.SendOp(ch, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5, <-recvDone)
}

func TestChooseOnlyOneOfTwoWaitingClausesFires(t *testing.T) {
	a, err := chanrt.Create[int](1)
	require.NoError(t, err)
	b, err := chanrt.Create[int](0)
	require.NoError(t, err)

	require.NoError(t, chanrt.Send(a, 1, sched.Immediate()))

	var recvA, recvB int
	idx, err := chanrt.Choose(sched.Immediate(),
		chanrt.RecvOp(a, &recvA),
		chanrt.RecvOp(b, &recvB),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, recvA)
	assert.Equal(t, 0, recvB)
}

func TestChooseParksThenTimesOut(t *testing.T) {
	clock := clockz.NewFakeClock()
	ex := sched.NewExecutor(clock)

	a, err := chanrt.Create[int](0, chanrt.WithScheduler(ex))
	require.NoError(t, err)
	b, err := chanrt.Create[int](0, chanrt.WithScheduler(ex))
	require.NoError(t, err)

	deadline := sched.After(clock, 10*time.Millisecond)

	result := make(chan error, 1)
	var recvA, recvB int
	go func() {
		_, err := chanrt.Choose(deadline,
			chanrt.RecvOp(a, &recvA),
			chanrt.RecvOp(b, &recvB),
		)
		result <- err
	}()

	// Give the goroutine a chance to park on both clauses before the fake
	// clock advances past the deadline.
	time.Sleep(5 * time.Millisecond)
	clock.Advance(10 * time.Millisecond)

	err = <-result
	assert.ErrorIs(t, err, chanrt.ErrTimedOut)
}

func TestChooseClauseOnDoneChannelFiresWithPipe(t *testing.T) {
	a, err := chanrt.Create[int](0)
	require.NoError(t, err)
	require.NoError(t, a.Done())

	var out int
	idx, err := chanrt.Choose(sched.Immediate(), chanrt.RecvOp(a, &out))
	assert.Equal(t, 0, idx)
	assert.ErrorIs(t, err, chanrt.ErrPipe)
}
