package nxcube

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Reverse returns the turn that undoes t. Double is its own reverse.
func (t Turn) Reverse() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return t
	}
}

// quarters returns the turn as a count of clockwise quarter turns (1..3).
func (t Turn) quarters() int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// turnOf converts a quarter turn count back to a Turn. Multiples of four
// have no Turn and report false.
func turnOf(quarters int) (Turn, bool) {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	default:
		return 0, false
	}
}

func (t Turn) suffix() string {
	switch t {
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Depth selects which layers a move turns, counted from its face inward.
// Layers 0 and 1 both mean the outer layer. Thick turns every layer up to
// Layers together; otherwise only layer number Layers turns.
type Depth struct {
	Layers int
	Thick  bool
}

func (d Depth) layers() int {
	if d.Layers < 1 {
		return 1
	}
	return d.Layers
}

// Move is a turn of Side as seen from Orientation.
// The zero Orientation stands for StandardOrientation.
type Move struct {
	Side        Side
	Turn        Turn
	Layer       Depth
	Orientation Orientation
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	m.Turn = m.Turn.Reverse()
	return m
}

// Transform re-expresses m under the frame o, turning the same physical layers.
func (m Move) Transform(o Orientation) Move {
	o = o.orDefault()
	return Move{
		Side:        o.Locate(m.Orientation.Inspect(m.Side)),
		Turn:        m.Turn,
		Layer:       m.Layer,
		Orientation: o,
	}
}

// Rotation resolves m into the orientation-free form the rotation engine
// consumes for a cube of the given degree.
func (m Move) Rotation(degree int) Rotation {
	sm := m.Transform(StandardOrientation)
	positive := sm.Side.IsPositive()
	depth := sm.Layer.layers()

	var layers []int
	if depth == 1 || !sm.Layer.Thick {
		if positive {
			layers = []int{degree - depth}
		} else {
			layers = []int{depth - 1}
		}
	} else {
		layers = make([]int, 0, depth)
		for k := 0; k < depth; k++ {
			if positive {
				layers = append(layers, degree-1-k)
			} else {
				layers = append(layers, k)
			}
		}
	}

	// Layer 0 turns with the negative face, so positive faces flip direction.
	var clockwise bool
	if sm.Orientation.IsLRProper() != positive || sm.Turn == Double {
		clockwise = sm.Turn == CW
	} else {
		clockwise = sm.Turn == CCW
	}

	return Rotation{
		Axis:      sm.Side.Axis(),
		Layers:    layers,
		Double:    sm.Turn == Double,
		Clockwise: clockwise,
	}
}

// Notation returns standard cube notation for m on a cube of the given degree,
// resolved in the standard orientation: R, R', R2, Rw, 2R.
// It is empty for degrees outside 2..4 and for depths beyond two layers.
func (m Move) Notation(degree int) string {
	if degree < 2 || degree > 4 || m.Layer.layers() > 2 {
		return ""
	}
	return m.String()
}

// String returns the notation of m in the standard orientation, using a
// layer-count prefix for turns deeper than two layers (3Rw, 3R).
func (m Move) String() string {
	sm := m.Transform(StandardOrientation)
	depth := sm.Layer.layers()

	var b strings.Builder
	switch {
	case depth == 1:
		b.WriteString(sm.Side.String())
	case sm.Layer.Thick:
		if depth > 2 {
			b.WriteString(strconv.Itoa(depth))
		}
		b.WriteString(sm.Side.String())
		b.WriteString("w")
	default:
		b.WriteString(strconv.Itoa(depth))
		b.WriteString(sm.Side.String())
	}
	b.WriteString(sm.Turn.suffix())
	return b.String()
}

// ParseMove parses a notation token into a Move in the standard orientation.
//
// Accepted forms: R, R', R2, Rw, r (same as Rw), 2R (second layer only),
// 3Rw or 3r (three layers). The backtick is accepted in place of the prime.
func ParseMove(s string) (Move, error) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	rest := tok
	prefix := 0
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		prefix = prefix*10 + int(rest[0]-'0')
		rest = rest[1:]
	}
	if len(rest) == 0 || (len(rest) < len(tok) && prefix < 1) {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}

	side, lower, ok := sideFromLetter(rest[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	rest = rest[1:]

	wide := lower
	if !lower && strings.HasPrefix(rest, "w") {
		wide = true
		rest = rest[1:]
	}

	turn := CW
	switch rest {
	case "":
	case "'", "`":
		turn = CCW
	case "2", "2'", "2`":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}

	m := Move{Side: side, Turn: turn, Orientation: StandardOrientation}
	switch {
	case wide:
		layers := 2
		if prefix > 0 {
			layers = prefix
		}
		m.Layer = Depth{Layers: layers, Thick: true}
	case prefix > 1:
		m.Layer = Depth{Layers: prefix}
	}
	return m, nil
}

func sideFromLetter(c byte) (side Side, lower bool, ok bool) {
	switch c {
	case 'R', 'r':
		side = Right
	case 'L', 'l':
		side = Left
	case 'U', 'u':
		side = Up
	case 'D', 'd':
		side = Down
	case 'F', 'f':
		side = Front
	case 'B', 'b':
		side = Back
	default:
		return 0, false, false
	}
	return side, c >= 'a', true
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseMovesFor parses a move sequence meant for a cube of the given
// degree. Moves reaching deeper than degree layers are rejected.
func ParseMovesFor(degree int, s string) ([]Move, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if m.Layer.layers() > degree {
			return nil, fmt.Errorf("move %d: %w: %s reaches layer %d of a degree %d cube",
				i+1, ErrInvalidNotation, m, m.Layer.layers(), degree)
		}
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}
