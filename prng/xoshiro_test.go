package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXoshiro256ReferenceVectors(t *testing.T) {
	g := NewXoshiro256State(1, 1, 1, 1)
	// rotl(1*5, 7) * 9 and the two following outputs
	require.Equal(t, uint64(5760), g.NextWord())
	require.Equal(t, uint64(5760), g.NextWord())
	require.Equal(t, uint64(0x2D000000), g.NextWord())
}

func TestXoshiro256ZeroStateCorrection(t *testing.T) {
	g := NewXoshiro256State(0, 0, 0, 0)
	require.Zero(t, g.StateWord(0))
	require.Zero(t, g.StateWord(1))
	require.Zero(t, g.StateWord(2))
	require.Equal(t, ^uint64(0), g.StateWord(3), "D must be forced to all ones")

	// same through the setter path on a live instance
	g = NewXoshiro256(42)
	for i := 0; i < 4; i++ {
		g.SetStateWord(i, 0)
	}
	require.Equal(t, ^uint64(0), g.StateWord(3))

	// a nonzero word elsewhere leaves D alone
	g.SetStateWord(0, 1)
	g.SetStateWord(3, 0)
	require.Zero(t, g.StateWord(3))
}

func TestXoshiro256StateEvolution(t *testing.T) {
	g := NewXoshiro256State(2, 3, 5, 7)
	g.NextWord()
	a, b, c, d := uint64(2), uint64(3), uint64(5), uint64(7)
	tmp := b << 17
	c ^= a
	d ^= b
	b ^= c
	a ^= d
	c ^= tmp
	d = d<<45 | d>>19
	require.Equal(t, []uint64{a, b, c, d}, stateOf(g))
}
