package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReversingUnsupported(t *testing.T) {
	for _, g := range []Generator{NewStranger(1), NewXoshiro256(1)} {
		t.Run(g.Tag(), func(t *testing.T) {
			_, err := NewReversing(g)
			require.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestReversingMirror(t *testing.T) {
	for _, g := range []Generator{NewFourWheel(321), NewLaser(321)} {
		t.Run(g.Tag(), func(t *testing.T) {
			outs := make([]uint64, 10)
			for i := range outs {
				outs[i] = g.NextWord()
			}
			rev, err := NewReversing(g)
			require.NoError(t, err)
			for i := len(outs) - 2; i >= 0; i-- {
				require.Equal(t, outs[i], rev.NextWord())
			}
			// and the adapter's own previous walks forward again
			for i := 1; i < len(outs); i++ {
				require.Equal(t, outs[i], rev.PreviousWord())
			}
		})
	}
}

func TestReversingBorrowsState(t *testing.T) {
	g := NewLaser(11)
	rev, err := NewReversing(g)
	require.NoError(t, err)

	g.NextWord()
	require.Equal(t, stateOf(g), stateOf(rev), "adapter must see wrapped mutations")
	rev.Seed(77)
	require.Equal(t, stateOf(NewLaser(77)), stateOf(g), "wrapped must see adapter mutations")
	rev.SetStateWord(0, 123)
	require.Equal(t, uint64(123), g.StateWord(0))
}

func TestReversingCapabilitiesForwarded(t *testing.T) {
	lr, err := NewReversing(NewLaser(0))
	require.NoError(t, err)
	require.Equal(t, NewLaser(0).Capabilities(), lr.Capabilities())

	fw, err := NewReversing(NewFourWheel(0))
	require.NoError(t, err)
	require.Equal(t, NewFourWheel(0).Capabilities(), fw.Capabilities())
}

func TestReversingSkip(t *testing.T) {
	g := NewLaser(5)
	outs := make([]uint64, 100)
	for i := range outs {
		outs[i] = g.NextWord()
	}
	rev, err := NewReversing(g)
	require.NoError(t, err)
	require.Equal(t, outs[89], rev.Skip(10), "reversed Skip must rewind the wrapped stream")
}

func TestReversingSkipMatchesNext(t *testing.T) {
	g := NewLaser(5)
	for i := 0; i < 50; i++ {
		g.NextWord()
	}
	jump, err := NewReversing(g)
	require.NoError(t, err)
	step, err := NewReversing(g.Copy())
	require.NoError(t, err)

	var want uint64
	for i := 0; i < 10; i++ {
		want = step.NextWord()
	}
	require.Equal(t, want, jump.Skip(10))
	require.Equal(t, stateOf(step), stateOf(jump))
}

func TestReversingSkipUnsupportedPanics(t *testing.T) {
	rev, err := NewReversing(NewFourWheel(1))
	require.NoError(t, err)
	require.PanicsWithValue(t, ErrUnsupported, func() { rev.Skip(1) })
	_, err = Skip(rev, 1)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestReversingCopyIndependent(t *testing.T) {
	g := NewLaser(1)
	rev, err := NewReversing(g)
	require.NoError(t, err)
	cp := rev.Copy()
	require.True(t, Equal(rev, cp))
	rev.NextWord()
	require.False(t, Equal(rev, cp), "copy must not alias the original state")
	require.IsType(t, &Reversing{}, cp)
}

func TestReversingSerializeTag(t *testing.T) {
	rev, err := NewReversing(NewFourWheel(0))
	require.NoError(t, err)
	require.Equal(t, "roWR", rev.Tag())
	require.Equal(t, NewFourWheel(0).StateLen(), rev.StateLen())
}
