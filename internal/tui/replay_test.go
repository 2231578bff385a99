package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func solvedReplay(t *testing.T, scramble string) (*nxcube.Arrangement, []nxcube.Step) {
	t.Helper()
	a := nxcube.NewArrangement(3)
	require.NoError(t, a.ApplyNotation(scramble))

	s, err := nxcube.NewSolver(a)
	require.NoError(t, err)

	var steps []nxcube.Step
	for st, err := range s.Steps() {
		require.NoError(t, err)
		steps = append(steps, st)
	}
	return a, steps
}

func TestReplayForwardBack(t *testing.T) {
	start, steps := solvedReplay(t, "R U F' L2 D B")
	m := New(start, steps, false)

	m.Update(keyRunes("n"))
	m.Update(keyRunes("n"))
	assert.Equal(t, 2, m.Moves())

	m.Update(keyRunes("b"))
	m.Update(keyRunes("b"))
	assert.Equal(t, 0, m.Moves())
	assert.True(t, m.Arrangement().Equal(start))

	m.Update(keyRunes("e"))
	assert.True(t, m.Done())
	assert.True(t, m.Arrangement().IsSolved())

	m.Update(keyRunes("r"))
	assert.Equal(t, 0, m.Moves())
	assert.True(t, m.Arrangement().Equal(start))
}

func TestReplayDoesNotTouchStart(t *testing.T) {
	start, steps := solvedReplay(t, "R U")
	before := start.Clone()
	m := New(start, steps, false)
	m.Update(keyRunes("e"))
	assert.True(t, start.Equal(before))
}

func TestReplayContext(t *testing.T) {
	steps := []nxcube.Step{
		nxcube.Annotation{Text: "Up Edges", Level: 1},
		nxcube.Annotation{Text: "Placing red edge", Level: 2},
		nxcube.R,
		nxcube.Annotation{Text: "Up Corners", Level: 1},
		nxcube.U,
	}
	m := New(nxcube.NewArrangement(3), steps, false)

	m.forward()
	phase, step := m.Context()
	assert.Equal(t, "Up Edges", phase)
	assert.Equal(t, "Placing red edge", step)

	m.forward()
	phase, step = m.Context()
	assert.Equal(t, "Up Corners", phase)
	assert.Empty(t, step)

	m.back()
	phase, _ = m.Context()
	assert.Equal(t, "Up Edges", phase)
}

func TestReplayPlayTicks(t *testing.T) {
	start, steps := solvedReplay(t, "R U")
	m := New(start, steps, false)

	_, cmd := m.Update(keyRunes(" "))
	require.NotNil(t, cmd)
	gen := m.gen

	m.Update(tickMsg{gen: gen})
	assert.Equal(t, 1, m.Moves())

	// a stale tick after pausing is ignored
	m.Update(keyRunes("p"))
	m.Update(tickMsg{gen: gen})
	assert.Equal(t, 1, m.Moves())
}

func TestReplayQuitAndView(t *testing.T) {
	start, steps := solvedReplay(t, "F")
	m := New(start, steps, false)
	assert.Contains(t, m.View(), "Move 0/")

	m.Update(keyRunes("e"))
	assert.Contains(t, m.View(), "SOLVED!")

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Replay ended.\n", m.View())
}
