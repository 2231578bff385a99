package nxcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideAlgebra(t *testing.T) {
	for _, s := range Sides {
		assert.Equal(t, s, s.Opposite().Opposite(), "%s", s)
		assert.NotEqual(t, s, s.Opposite())
		assert.Equal(t, s.Axis(), s.Opposite().Axis())
		assert.NotEqual(t, s.IsPositive(), s.Opposite().IsPositive())
		assert.Equal(t, s, SideOf(s.Axis(), s.IsPositive()))
	}
}

func TestOrientationsAreAllFrames(t *testing.T) {
	os := Orientations()
	require.Len(t, os, 24)

	seen := map[Orientation]bool{}
	for _, o := range os {
		assert.True(t, o.Valid(), "%v", o)
		assert.False(t, seen[o], "duplicate %v", o)
		seen[o] = true
	}
}

func TestInspectLocateInverse(t *testing.T) {
	for _, o := range Orientations() {
		seen := map[Side]bool{}
		for _, s := range Sides {
			abs := o.Inspect(s)
			seen[abs] = true
			assert.Equal(t, s, o.Locate(abs), "frame %v side %s", o, s)
			assert.Equal(t, s, o.Inspect(o.Locate(s)), "frame %v side %s", o, s)
		}
		assert.Len(t, seen, 6, "Inspect is not a bijection for %v", o)
	}
}

func TestInspectKeepsOpposites(t *testing.T) {
	for _, o := range Orientations() {
		for _, s := range Sides {
			assert.Equal(t, o.Inspect(s).Opposite(), o.Inspect(s.Opposite()))
		}
	}
}

func TestStandardOrientationIsIdentity(t *testing.T) {
	for _, s := range Sides {
		assert.Equal(t, s, StandardOrientation.Inspect(s))
		assert.Equal(t, s, Orientation{}.Inspect(s), "zero frame stands for standard")
	}
	assert.True(t, StandardOrientation.IsLRProper())
}

func TestStandardSideOrientation(t *testing.T) {
	for _, s := range Sides {
		o := StandardSideOrientation(s)
		assert.True(t, o.Valid())
		assert.Equal(t, s, o.Front)
	}
	assert.Equal(t, Orientation{Top: Back, Front: Up}, StandardSideOrientation(Up))
	assert.Equal(t, Orientation{Top: Front, Front: Down}, StandardSideOrientation(Down))

	// Facing Right with Up on top, Back is on the viewer's right.
	o := StandardSideOrientation(Right)
	assert.Equal(t, Back, o.Inspect(Right))
	assert.Equal(t, Front, o.Inspect(Left))
}

func TestMoveTransform(t *testing.T) {
	o := StandardSideOrientation(Right)
	tests := []struct {
		m    Move
		want string
	}{
		{Move{Side: Front, Turn: CW, Orientation: o}, "R"},
		{Move{Side: Right, Turn: CCW, Orientation: o}, "B'"},
		{Move{Side: Up, Turn: Double, Orientation: o}, "U2"},
		{Move{Side: Front, Turn: CW, Layer: Depth{Layers: 2, Thick: true}, Orientation: o}, "Rw"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}

	// Transforming to any frame and back turns the same layers.
	m := Move{Side: Left, Turn: CW, Layer: Depth{Layers: 2}}
	for _, f := range Orientations() {
		tm := m.Transform(f)
		assert.Equal(t, f, tm.Orientation)
		assert.Equal(t, m.Rotation(4), tm.Rotation(4), "frame %v", f)
	}
}
