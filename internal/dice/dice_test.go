package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll_InRange(t *testing.T) {
	r := New(&Config{Seed: 42})

	for sides := 2; sides <= 50; sides++ {
		for i := 0; i < 200; i++ {
			v := r.Roll(sides)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, sides)
		}
	}
}

func TestRoll_DefaultsToSixSides(t *testing.T) {
	r := New(&Config{Seed: 7})

	for i := 0; i < 100; i++ {
		v := r.Roll(0)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRoll_SameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})

	assert.Equal(t, RollN(a, 20, 12), RollN(b, 20, 12))
}

func TestRoll_UniformDistribution(t *testing.T) {
	const (
		sides = 6
		rolls = 60000
	)
	r := New(&Config{Seed: 1234})

	counts := make(map[int]int, sides)
	for _, v := range RollN(r, sides, rolls) {
		counts[v]++
	}

	require.Len(t, counts, sides)

	// chi-squared with 5 degrees of freedom, p=0.001 critical value is 20.52
	expected := float64(rolls) / sides
	chi := 0.0
	for face := 1; face <= sides; face++ {
		d := float64(counts[face]) - expected
		chi += d * d / expected
	}
	assert.Less(t, chi, 20.52)
}

func TestRollN(t *testing.T) {
	r := New(&Config{Seed: 5})

	assert.Len(t, RollN(r, 6, 12), 12)
	assert.Empty(t, RollN(r, 6, 0))
	assert.Empty(t, RollN(r, 6, -3))
}
