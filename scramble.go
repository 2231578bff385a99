package nxcube

import "math/rand/v2"

// Scramble returns length random moves for a cube of the given degree. The
// same seed always gives the same sequence. Consecutive moves never share an
// axis. Degree 4 and up also draws two-layer wide turns.
func Scramble(degree, length int, seed uint64) []Move {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	turns := [3]Turn{CW, CCW, Double}

	moves := make([]Move, 0, length)
	last := Axis(-1)
	for len(moves) < length {
		side := Sides[rng.IntN(len(Sides))]
		if side.Axis() == last {
			continue
		}
		last = side.Axis()

		m := Move{Side: side, Turn: turns[rng.IntN(len(turns))], Orientation: StandardOrientation}
		if degree >= 4 && rng.IntN(3) == 0 {
			m.Layer = Depth{Layers: 2, Thick: true}
		}
		moves = append(moves, m)
	}
	return moves
}
