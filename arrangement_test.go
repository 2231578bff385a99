package nxcube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArrangementIsSolved(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a := NewArrangement(n)
		assert.Equal(t, n, a.Degree())
		assert.True(t, a.IsSolved())
		assert.NoError(t, a.Validate())
		for _, s := range Sides {
			assert.Len(t, a.Face(s), n*n)
		}
	}
	assert.Panics(t, func() { NewArrangement(0) })
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range []Move{R, LPrime, U2, D, FPrime, B} {
		a := NewArrangement(3)
		a.Apply(m)
		assert.False(t, a.IsSolved(), m.String())
		a.Apply(m.Inverse())
		assert.True(t, a.IsSolved(), m.String())
	}
}

func TestValidateColorCounts(t *testing.T) {
	a := NewArrangement(4)
	a.SetFacelet(Right, 5, Orange)

	err := a.Validate()
	require.ErrorIs(t, err, ErrInvalidArrangement)
	assert.Contains(t, err.Error(), "red=15")
	assert.Contains(t, err.Error(), "orange=17")

	a.SetFacelet(Right, 5, Color(9))
	assert.ErrorIs(t, a.Validate(), ErrInvalidArrangement)
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewArrangement(3)
	a.Apply(R, U)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Apply(F)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(NewArrangement(4)))
}

func TestFaceletsRoundTrip(t *testing.T) {
	for n := 2; n <= 5; n++ {
		a := NewArrangement(n)
		a.Apply(Scramble(n, 40, 99)...)

		s := a.Facelets()
		assert.Len(t, strings.Fields(s), 6)

		b, err := ParseFacelets(n, s)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "degree %d", n)

		// Whitespace anywhere is ignored.
		b, err = ParseFacelets(n, strings.Join(strings.Split(strings.ReplaceAll(s, " ", ""), ""), "\n"))
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	}
}

func TestSolvedFacelets(t *testing.T) {
	assert.Equal(t, "RRRR OOOO WWWW YYYY GGGG BBBB", NewArrangement(2).Facelets())
}

func TestParseFaceletsErrors(t *testing.T) {
	_, err := ParseFacelets(2, "RRRR OOOO WWWW YYYY GGGG BBB")
	assert.ErrorIs(t, err, ErrInvalidArrangement)

	_, err = ParseFacelets(2, "RRRR OOOO WWWW YYYY GGGG BBBX")
	assert.ErrorIs(t, err, ErrInvalidArrangement)

	_, err = ParseFacelets(0, "")
	assert.ErrorIs(t, err, ErrInvalidDegree)

	// Bad counts parse fine; Validate catches them.
	a, err := ParseFacelets(2, "RRRR RRRR WWWW YYYY GGGG BBBB")
	require.NoError(t, err)
	assert.ErrorIs(t, a.Validate(), ErrInvalidArrangement)
}

func TestApplyNotation(t *testing.T) {
	a := NewArrangement(3)
	require.NoError(t, a.ApplyNotation("R U R' U'"))
	b := NewArrangement(3)
	b.Apply(SexyMove...)
	assert.True(t, a.Equal(b))

	assert.ErrorIs(t, a.ApplyNotation("R Q"), ErrInvalidNotation)

	c := NewArrangement(3)
	assert.ErrorIs(t, c.ApplyNotation("R 5R"), ErrInvalidNotation)
	assert.ErrorIs(t, c.ApplyNotation("5Rw"), ErrInvalidNotation)
	assert.True(t, c.IsSolved(), "rejected sequences are not applied")
}

func TestStringNet(t *testing.T) {
	out := NewArrangement(3).String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "      W W W ", lines[0])
	assert.Equal(t, "O O O G G G R R R B B B ", lines[3])
	assert.Equal(t, "      Y Y Y ", lines[8])
}
