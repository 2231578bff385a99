package nxcube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {
	thick := Depth{Layers: 2, Thick: true}
	tests := []struct {
		move   Move
		degree int
		want   string
	}{
		{Move{Side: Up, Turn: CCW}, 3, "U'"},
		{Move{Side: Front, Turn: Double}, 3, "F2"},
		{R, 2, "R"},
		{Move{Side: Right, Turn: CW, Layer: thick}, 4, "Rw"},
		{Move{Side: Left, Turn: CCW, Layer: thick}, 4, "Lw'"},
		{Move{Side: Back, Turn: Double, Layer: thick}, 4, "Bw2"},
		{Move{Side: Right, Turn: CW, Layer: Depth{Layers: 2}}, 4, "2R"},
		{Move{Side: Down, Turn: CCW, Layer: Depth{Layers: 2}}, 3, "2D'"},
		{Move{Side: Front, Turn: Double, Layer: Depth{Layers: 2}}, 4, "2F2"},
		// Layer 1 is the outer layer.
		{Move{Side: Up, Turn: CW, Layer: Depth{Layers: 1, Thick: true}}, 3, "U"},
		// Out of range.
		{R, 5, ""},
		{R, 1, ""},
		{Move{Side: Right, Turn: CW, Layer: Depth{Layers: 3, Thick: true}}, 4, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.Notation(tt.degree), "%+v at degree %d", tt.move, tt.degree)
	}
}

func TestStringDeepLayers(t *testing.T) {
	assert.Equal(t, "3Rw", Move{Side: Right, Turn: CW, Layer: Depth{Layers: 3, Thick: true}}.String())
	assert.Equal(t, "3U'", Move{Side: Up, Turn: CCW, Layer: Depth{Layers: 3}}.String())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", Move{Side: Right, Turn: CW}},
		{"R'", Move{Side: Right, Turn: CCW}},
		{"R`", Move{Side: Right, Turn: CCW}},
		{"U2", Move{Side: Up, Turn: Double}},
		{"U2'", Move{Side: Up, Turn: Double}},
		{"Rw", Move{Side: Right, Turn: CW, Layer: Depth{Layers: 2, Thick: true}}},
		{"r'", Move{Side: Right, Turn: CCW, Layer: Depth{Layers: 2, Thick: true}}},
		{"2F", Move{Side: Front, Turn: CW, Layer: Depth{Layers: 2}}},
		{"3Lw2", Move{Side: Left, Turn: Double, Layer: Depth{Layers: 3, Thick: true}}},
		{"3d", Move{Side: Down, Turn: CW, Layer: Depth{Layers: 3, Thick: true}}},
		{" B ", Move{Side: Back, Turn: CW}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			tt.want.Orientation = StandardOrientation
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "R''", "2", "0R", "Rw'2", "M", "x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMove(in)
			assert.ErrorIs(t, err, ErrInvalidNotation)
		})
	}
}

func TestParseMovesReportsPosition(t *testing.T) {
	_, err := ParseMoves("R U Q F")
	require.ErrorIs(t, err, ErrInvalidNotation)
	assert.Contains(t, err.Error(), "move 3")

	moves, err := ParseMoves("  ")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestFormatParseRoundTrip(t *testing.T) {
	const seq = "R U' F2 Rw Lw' 2B2 3Uw D'"
	moves, err := ParseMoves(seq)
	require.NoError(t, err)
	assert.Equal(t, seq, FormatMoves(moves))
}

func TestInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())

	a := NewArrangement(4)
	moves, err := ParseMoves("Rw U 2F' D2 Lw'")
	require.NoError(t, err)
	a.Apply(moves...)
	for i := len(moves) - 1; i >= 0; i-- {
		a.Apply(moves[i].Inverse())
	}
	assert.True(t, a.IsSolved())
}

func TestSexyMoveOrderSix(t *testing.T) {
	a := NewArrangement(3)
	for i := 1; i <= 6; i++ {
		a.Apply(SexyMove...)
		assert.Equal(t, i == 6, a.IsSolved(), "after %d", i)
	}
}

func TestParseMovesForDepth(t *testing.T) {
	tests := []struct {
		degree int
		in     string
		ok     bool
	}{
		{3, "R 2R 3R 3Rw", true},
		{3, "4R", false},
		{3, "5Rw", false},
		{2, "Rw", true},
		{2, "3r", false},
		{4, "R 4Uw 2F'", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := ParseMovesFor(tt.degree, tt.in)
			if tt.ok {
				require.NoError(t, err)
				assert.Len(t, moves, len(strings.Fields(tt.in)))
				return
			}
			require.ErrorIs(t, err, ErrInvalidNotation)
			assert.Nil(t, moves)
		})
	}

	_, err := ParseMovesFor(3, "R U 5R")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move 3")
}
