package nxcube

// Predefined outer-layer moves in the standard orientation.
//
// Example:
//
//	a := nxcube.NewArrangement(3)
//	a.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
var (
	R      = Move{Side: Right, Turn: CW}
	RPrime = Move{Side: Right, Turn: CCW}
	R2     = Move{Side: Right, Turn: Double}

	L      = Move{Side: Left, Turn: CW}
	LPrime = Move{Side: Left, Turn: CCW}
	L2     = Move{Side: Left, Turn: Double}

	U      = Move{Side: Up, Turn: CW}
	UPrime = Move{Side: Up, Turn: CCW}
	U2     = Move{Side: Up, Turn: Double}

	D      = Move{Side: Down, Turn: CW}
	DPrime = Move{Side: Down, Turn: CCW}
	D2     = Move{Side: Down, Turn: Double}

	F      = Move{Side: Front, Turn: CW}
	FPrime = Move{Side: Front, Turn: CCW}
	F2     = Move{Side: Front, Turn: Double}

	B      = Move{Side: Back, Turn: CW}
	BPrime = Move{Side: Back, Turn: CCW}
	B2     = Move{Side: Back, Turn: Double}
)

// Sexy move: R U R' U'. Six repetitions return any cube to where it started.
var SexyMove = []Move{R, U, RPrime, UPrime}

// WholeCube returns the move turning every layer of a degree-N cube with side.
func WholeCube(side Side, turn Turn, degree int) Move {
	return Move{Side: side, Turn: turn, Layer: Depth{Layers: degree, Thick: true}}
}
