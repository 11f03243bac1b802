package chanrt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keldir/chanrt/chanrt"
	"github.com/keldir/chanrt/sched"
)

func TestHandleSendRecvRoundTrip(t *testing.T) {
	h, err := chanrt.CreateHandle[int](1)
	require.NoError(t, err)

	require.NoError(t, chanrt.SendH(h, 42, sched.Immediate()))
	v, err := chanrt.RecvH[int](h, sched.Immediate())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestHandleUnknownIsBadHandle(t *testing.T) {
	_, err := chanrt.RecvH[int](chanrt.Handle(999999), sched.Immediate())
	assert.ErrorIs(t, err, chanrt.ErrBadHandle)
}

func TestHandleWrongElementTypeIsBadHandle(t *testing.T) {
	h, err := chanrt.CreateHandle[int](1)
	require.NoError(t, err)

	_, err = chanrt.RecvH[string](h, sched.Immediate())
	assert.ErrorIs(t, err, chanrt.ErrBadHandle)
}

func TestHandleClosedIsBadHandle(t *testing.T) {
	h, err := chanrt.CreateHandle[int](1)
	require.NoError(t, err)

	require.NoError(t, chanrt.CloseHandle[int](h))

	_, err = chanrt.RecvH[int](h, sched.Immediate())
	assert.ErrorIs(t, err, chanrt.ErrBadHandle)

	assert.ErrorIs(t, chanrt.CloseHandle[int](h), chanrt.ErrBadHandle)
}

func TestHandleDoneThenDrainThenPipe(t *testing.T) {
	h, err := chanrt.CreateHandle[int](1)
	require.NoError(t, err)

	require.NoError(t, chanrt.SendH(h, 1, sched.Immediate()))
	require.NoError(t, chanrt.DoneH[int](h))

	v, err := chanrt.RecvH[int](h, sched.Immediate())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = chanrt.RecvH[int](h, sched.Immediate())
	assert.ErrorIs(t, err, chanrt.ErrPipe)
}
