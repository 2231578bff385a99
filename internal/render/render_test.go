package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestNetPlainMatchesArrangement(t *testing.T) {
	a := nxcube.NewArrangement(3)
	a.Apply(nxcube.R)
	assert.Equal(t, a.String(), Net(a, false))
}

func TestNetColoredShape(t *testing.T) {
	for n := 2; n <= 4; n++ {
		out := Net(nxcube.NewArrangement(n), true)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Len(t, lines, 3*n, "degree %d", n)
	}
}

func TestWrapMoves(t *testing.T) {
	moves, err := nxcube.ParseMoves("R U R' U' R U R' U'")
	require.NoError(t, err)

	assert.Equal(t, []string{"R U R' U' R U R' U'"}, WrapMoves(moves, 60))
	assert.Equal(t, []string{"R U R'", "U' R U", "R' U'"}, WrapMoves(moves, 6))
	assert.Empty(t, WrapMoves(nil, 60))
}

func TestSections(t *testing.T) {
	steps := []nxcube.Step{
		nxcube.R,
		nxcube.Annotation{Text: "Up Edges", Level: 1},
		nxcube.Annotation{Text: "Placing white/red edge", Level: 2},
		nxcube.U, nxcube.F,
		nxcube.Annotation{Text: "Placing white/green edge", Level: 2},
	}
	secs := Sections(steps)
	require.Len(t, secs, 4)
	assert.Empty(t, secs[0].Text)
	assert.Equal(t, []nxcube.Move{nxcube.R}, secs[0].Moves)
	assert.Equal(t, 1, secs[1].Level)
	assert.Len(t, secs[2].Moves, 2)
	assert.Empty(t, secs[3].Moves)
}

func TestOutlinePlain(t *testing.T) {
	steps := []nxcube.Step{
		nxcube.Annotation{Text: "Up Edges", Level: 1},
		nxcube.Annotation{Text: "Placing red edge", Level: 2},
		nxcube.U, nxcube.FPrime,
		nxcube.Annotation{Text: "Placing green edge", Level: 2},
	}
	want := "Up Edges\n" +
		"  Placing red edge (2)\n" +
		"    U F'\n"
	assert.Equal(t, want, Outline(steps, false))
}
