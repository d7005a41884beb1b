package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIVWords(t *testing.T) {
	assert.Equal(t, uint64(0x6a09e667f3bcc908), IV64(0))
	assert.Equal(t, uint64(0x5be0cd19137e2179), IV64(7))
	assert.Equal(t, uint32(0x6a09e667), IV32(0))
	assert.Equal(t, uint32(0x5be0cd19), IV32(7))
}

func TestSigmaRowsArePermutations(t *testing.T) {
	for r := 0; r < SigmaRows; r++ {
		var seen [16]bool
		for _, idx := range SigmaRow(r) {
			require.Less(t, int(idx), 16)
			require.False(t, seen[idx], "round %d repeats index %d", r, idx)
			seen[idx] = true
		}
	}
}

func TestSigmaRowWraps(t *testing.T) {
	assert.Equal(t, SigmaRow(0), SigmaRow(10))
	assert.Equal(t, SigmaRow(1), SigmaRow(11))
}
