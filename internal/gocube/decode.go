package gocube

import (
	"fmt"

	"github.com/SeamusWaldron/nxcube"
)

// Rotation is a single face turn reported by the cube.
type Rotation struct {
	Code              byte // face and direction, 0x00-0x0B
	CenterOrientation byte
	Side              nxcube.Side
	Clockwise         bool
}

// faceByColor maps the cube's color index to the side that color sits on
// when held white up, green front: blue, green, white, yellow, red, orange.
var faceByColor = [6]nxcube.Side{nxcube.Back, nxcube.Front, nxcube.Up, nxcube.Down, nxcube.Right, nxcube.Left}

// DecodeRotation decodes a rotation payload of [code, center] pairs. Even
// codes are clockwise turns; code/2 is the color index of the turned face.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: rotation payload has odd length %d", ErrInvalidPayload, len(payload))
	}

	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		color := int(code / 2)
		if color >= len(faceByColor) {
			return nil, fmt.Errorf("%w: unknown face code 0x%02X", ErrInvalidPayload, code)
		}
		rotations = append(rotations, Rotation{
			Code:              code,
			CenterOrientation: payload[i+1],
			Side:              faceByColor[color],
			Clockwise:         code%2 == 0,
		})
	}
	return rotations, nil
}

// DecodeBattery decodes a battery payload into a percentage.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("%w: empty battery payload", ErrInvalidPayload)
	}
	return int(payload[0]), nil
}

// Move converts a rotation into an outer-layer move.
func (r Rotation) Move() nxcube.Move {
	t := nxcube.CCW
	if r.Clockwise {
		t = nxcube.CW
	}
	return nxcube.Move{Side: r.Side, Turn: t, Orientation: nxcube.StandardOrientation}
}

// RotationsToMoves converts rotations into moves, merging consecutive turns
// of the same face.
func RotationsToMoves(rotations []Rotation) []nxcube.Move {
	moves := make([]nxcube.Move, 0, len(rotations))
	for _, r := range rotations {
		moves = append(moves, r.Move())
	}
	return MergeMoves(moves)
}

// MergeMoves merges adjacent turns of the same layer: R R becomes R2, and
// R R' cancels out.
func MergeMoves(moves []nxcube.Move) []nxcube.Move {
	result := make([]nxcube.Move, 0, len(moves))
	for _, m := range moves {
		if len(result) == 0 {
			result = append(result, m)
			continue
		}

		last := &result[len(result)-1]
		if last.Side != m.Side || last.Layer != m.Layer || last.Orientation != m.Orientation {
			result = append(result, m)
			continue
		}

		if t, ok := addTurns(last.Turn, m.Turn); ok {
			last.Turn = t
		} else {
			result = result[:len(result)-1]
		}
	}
	return result
}

func addTurns(a, b nxcube.Turn) (nxcube.Turn, bool) {
	q := (quarters(a) + quarters(b)) % 4
	switch q {
	case 1:
		return nxcube.CW, true
	case 2:
		return nxcube.Double, true
	case 3:
		return nxcube.CCW, true
	default:
		return 0, false
	}
}

func quarters(t nxcube.Turn) int {
	switch t {
	case nxcube.CCW:
		return 3
	case nxcube.Double:
		return 2
	default:
		return 1
	}
}
