package nxcube

import "slices"

// Rotation is the orientation-free form of a move: which parallel layers of
// an axis turn, and how. Layer 0 is the layer touching the negative face of
// the axis (Left, Down, Back). Clockwise is judged looking at that face.
type Rotation struct {
	Axis      Axis
	Layers    []int
	Double    bool
	Clockwise bool
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	inv := r
	inv.Layers = slices.Clone(r.Layers)
	inv.Clockwise = !r.Clockwise
	return inv
}

// strip is one face's N-long row or column taking part in a layer turn.
type strip struct {
	side   Side
	start  int
	stride int
}

// RotateArrangement applies r to a in place. It is the only primitive that
// changes facelet state; the solver and any replaying caller both go
// through it, so the same rotations always produce identical arrangements.
func RotateArrangement(r Rotation, a *Arrangement) {
	a.Rotate(r)
}

// Rotate applies r in place. Layers outside the cube are ignored.
func (a *Arrangement) Rotate(r Rotation) {
	n := a.degree
	turns := 1
	if r.Double {
		turns = 2
	}

	for _, layer := range r.Layers {
		if layer < 0 || layer >= n {
			continue
		}

		strips, clockFace, clockBack := a.layerStrips(r.Axis, layer)
		if !r.Clockwise {
			slices.Reverse(strips[:])
		}

		for t := 0; t < turns; t++ {
			if layer == 0 {
				a.turnFace(clockFace, r.Clockwise)
			}
			if layer == n-1 {
				a.turnFace(clockBack, !r.Clockwise)
			}
			a.cycleStrips(strips)
		}
	}
}

// layerStrips returns the four strips a layer carries, in clockwise order,
// along with the faces at layer 0 and layer N-1 of the axis.
func (a *Arrangement) layerStrips(axis Axis, layer int) (strips [4]strip, clockFace, clockBack Side) {
	n := a.degree
	switch axis {
	case AxisX:
		strips = [4]strip{
			{Up, layer, n},
			{Front, layer, n},
			{Down, layer, n},
			{Back, n*n - 1 - layer, -n},
		}
		return strips, Left, Right
	case AxisY:
		start := (n - layer - 1) * n
		strips = [4]strip{
			{Front, start, 1},
			{Right, start, 1},
			{Back, start, 1},
			{Left, start, 1},
		}
		return strips, Down, Up
	default:
		strips = [4]strip{
			{Up, layer * n, 1},
			{Left, n*(n-1) + layer, -n},
			{Down, n*(n-layer) - 1, -1},
			{Right, n - layer - 1, n},
		}
		return strips, Back, Front
	}
}

// cycleStrips moves each strip's colors into the next strip.
func (a *Arrangement) cycleStrips(strips [4]strip) {
	n := a.degree
	carry := make([]Color, n)
	last := strips[3]
	for j, k := 0, last.start; j < n; j, k = j+1, k+last.stride {
		carry[j] = a.faces[last.side][k]
	}

	for i := 0; i < 4; i++ {
		s := strips[i]
		face := a.faces[s.side]
		for j, k := 0, s.start; j < n; j, k = j+1, k+s.stride {
			carry[j], face[k] = face[k], carry[j]
		}
	}
}

// turnFace rotates a face's own grid a quarter turn, one concentric ring at
// a time, cycling groups of four symmetric cells.
func (a *Arrangement) turnFace(side Side, clockwise bool) {
	n := a.degree
	face := a.faces[side]
	for c := 0; c < n/2; c++ {
		for k := 0; k < n-2*c-1; k++ {
			group := [4]int{
				n*c + c + k,
				n*(c+1) - 1 - c + n*k,
				n*(n-c) - 1 - c - k,
				n*(n-1-c) + c - n*k,
			}
			if !clockwise {
				slices.Reverse(group[:])
			}
			face[group[0]], face[group[1]], face[group[2]], face[group[3]] =
				face[group[3]], face[group[0]], face[group[1]], face[group[2]]
		}
	}
}
