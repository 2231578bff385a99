package nxcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrambleReproducible(t *testing.T) {
	a := Scramble(3, 25, 42)
	b := Scramble(3, 25, 42)
	c := Scramble(3, 25, 43)

	assert.Len(t, a, 25)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestScrambleNeverRepeatsAxis(t *testing.T) {
	for _, degree := range []int{2, 3, 4, 5} {
		moves := Scramble(degree, 200, uint64(degree))
		for i := 1; i < len(moves); i++ {
			assert.NotEqual(t, moves[i-1].Side.Axis(), moves[i].Side.Axis(), "degree %d move %d", degree, i)
		}
	}
}

func TestScrambleLayers(t *testing.T) {
	for _, m := range Scramble(3, 200, 1) {
		assert.Equal(t, Depth{}, m.Layer, "degree 3 scrambles use outer turns only")
	}

	wide := 0
	for _, m := range Scramble(4, 200, 1) {
		if m.Layer.Thick {
			assert.Equal(t, 2, m.Layer.Layers)
			wide++
		}
	}
	assert.Positive(t, wide)
}

func TestScrambleEmpty(t *testing.T) {
	assert.Empty(t, Scramble(3, 0, 1))
}
