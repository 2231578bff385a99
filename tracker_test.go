package nxcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerCallbacks(t *testing.T) {
	tr := NewTracker(3)
	require.True(t, tr.IsSolved())

	var seen []Move
	solvedCount := 0
	tr.OnMove(func(m Move) { seen = append(seen, m) })
	tr.OnSolved(func() { solvedCount++ })

	tr.ApplyMoves([]Move{R, U, UPrime, RPrime})
	assert.Equal(t, []Move{R, U, UPrime, RPrime}, seen)
	assert.Equal(t, []Move{R, U, UPrime, RPrime}, tr.Moves())
	assert.Equal(t, 1, solvedCount, "fires only when a move leaves the cube solved")
	assert.True(t, tr.IsSolved())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(4)
	tr.ApplyMove(R)
	require.False(t, tr.IsSolved())

	tr.Reset()
	assert.True(t, tr.IsSolved())
	assert.Empty(t, tr.Moves())
	assert.Equal(t, 4, tr.Arrangement().Degree())
}

func TestTrackerLoadAndCopy(t *testing.T) {
	a := NewArrangement(2)
	a.Apply(R, F)

	tr := NewTracker(3)
	tr.Load(a)
	a.Apply(U)
	assert.Equal(t, 2, tr.Arrangement().Degree())
	assert.False(t, tr.Arrangement().Equal(a), "Load copies its input")

	// Arrangement returns a copy.
	got := tr.Arrangement()
	got.Apply(U)
	assert.False(t, tr.Arrangement().Equal(got))

	tr.ApplyMoves([]Move{FPrime, RPrime})
	assert.True(t, tr.IsSolved())
	assert.Equal(t, tr.Arrangement().String(), tr.String())
}

func TestTrackerSolverRoundTrip(t *testing.T) {
	tr := NewTracker(3)
	tr.ApplyMoves(Scramble(3, 25, 77))

	moves, err := Solve(tr.Arrangement())
	require.NoError(t, err)

	solved := false
	tr.OnSolved(func() { solved = true })
	tr.ApplyMoves(moves)
	assert.True(t, solved)
}
