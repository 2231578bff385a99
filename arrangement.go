package nxcube

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Color represents a facelet color. Colors are index-aligned with sides:
// Color(s) is the color of side s on a solved cube.
type Color byte

const (
	Red    Color = 0 // Right face when solved
	Orange Color = 1 // Left face when solved
	White  Color = 2 // Up face when solved
	Yellow Color = 3 // Down face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Orange:
		return "O"
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Home returns the side this color belongs to on a solved cube.
func (c Color) Home() Side {
	return Side(c)
}

// SolvedColor returns the color of side s on a solved cube.
func SolvedColor(s Side) Color {
	return Color(s)
}

func colorFromLetter(r rune) (Color, bool) {
	switch unicode.ToUpper(r) {
	case 'R':
		return Red, true
	case 'O':
		return Orange, true
	case 'W':
		return White, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	default:
		return 0, false
	}
}

// Arrangement is the facelet state of a degree-N cube. Each face holds N*N
// colors in row-major order, top to bottom and left to right as seen
// looking squarely at that face in its StandardSideOrientation.
//
// For degree 4 the Up face is indexed as:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
type Arrangement struct {
	degree int
	faces  [6][]Color
}

// NewArrangement creates a solved arrangement of the given degree.
// It panics if degree is less than 1.
func NewArrangement(degree int) *Arrangement {
	if degree < 1 {
		panic(fmt.Sprintf("nxcube: invalid degree %d", degree))
	}
	a := &Arrangement{degree: degree}
	for _, s := range Sides {
		face := make([]Color, degree*degree)
		for i := range face {
			face[i] = SolvedColor(s)
		}
		a.faces[s] = face
	}
	return a
}

// Degree returns the side length of the cube.
func (a *Arrangement) Degree() int {
	return a.degree
}

// Facelet returns the color at index i of side s.
func (a *Arrangement) Facelet(s Side, i int) Color {
	return a.faces[s][i]
}

// SetFacelet sets the color at index i of side s.
func (a *Arrangement) SetFacelet(s Side, i int, c Color) {
	a.faces[s][i] = c
}

// Face returns a copy of the colors of side s.
func (a *Arrangement) Face(s Side) []Color {
	return slices.Clone(a.faces[s])
}

// Clone creates a deep copy of the arrangement.
func (a *Arrangement) Clone() *Arrangement {
	clone := &Arrangement{degree: a.degree}
	for s := range a.faces {
		clone.faces[s] = slices.Clone(a.faces[s])
	}
	return clone
}

// Equal reports whether b has the same degree and facelets as a.
func (a *Arrangement) Equal(b *Arrangement) bool {
	if a.degree != b.degree {
		return false
	}
	for s := range a.faces {
		if !slices.Equal(a.faces[s], b.faces[s]) {
			return false
		}
	}
	return true
}

// IsSolved returns true if every face shows only its own color.
func (a *Arrangement) IsSolved() bool {
	for _, s := range Sides {
		expected := SolvedColor(s)
		for _, c := range a.faces[s] {
			if c != expected {
				return false
			}
		}
	}
	return true
}

// Validate checks that every color appears exactly N*N times.
// The solver does not validate its input; callers should.
func (a *Arrangement) Validate() error {
	want := a.degree * a.degree
	var counts [6]int
	for _, s := range Sides {
		for i, c := range a.faces[s] {
			if c > Blue {
				return fmt.Errorf("%w: %s facelet %d has unknown color %d", ErrInvalidArrangement, s.Name(), i, c)
			}
			counts[c]++
		}
	}

	var bad []string
	for c, n := range counts {
		if n != want {
			bad = append(bad, fmt.Sprintf("%s=%d", Color(c).Name(), n))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: want %d of each color, got %s", ErrInvalidArrangement, want, strings.Join(bad, ", "))
	}
	return nil
}

// Apply applies moves in order.
func (a *Arrangement) Apply(moves ...Move) {
	for _, m := range moves {
		a.Rotate(m.Rotation(a.degree))
	}
}

// ApplyNotation parses and applies a move sequence such as "R U2 Rw' 2F".
// Nothing is applied when any move is invalid or deeper than the cube.
func (a *Arrangement) ApplyNotation(s string) error {
	moves, err := ParseMovesFor(a.degree, s)
	if err != nil {
		return err
	}
	a.Apply(moves...)
	return nil
}

// Facelets encodes the arrangement as six space-separated groups of color
// letters, one group per side in Side order (R L U D F B).
func (a *Arrangement) Facelets() string {
	var b strings.Builder
	for _, s := range Sides {
		if s != Right {
			b.WriteByte(' ')
		}
		for _, c := range a.faces[s] {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// ParseFacelets decodes the Facelets format. Whitespace is ignored, so the
// faces may be split over lines or rows. Color counts are not checked; use
// Validate for that.
func ParseFacelets(degree int, s string) (*Arrangement, error) {
	if degree < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	cells := make([]Color, 0, 6*degree*degree)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		c, ok := colorFromLetter(r)
		if !ok {
			return nil, fmt.Errorf("%w: unknown color letter %q", ErrInvalidArrangement, r)
		}
		cells = append(cells, c)
	}

	size := degree * degree
	if len(cells) != 6*size {
		return nil, fmt.Errorf("%w: got %d facelets, want %d for degree %d", ErrInvalidArrangement, len(cells), 6*size, degree)
	}

	a := &Arrangement{degree: degree}
	for _, s := range Sides {
		a.faces[s] = cells[int(s)*size : int(s+1)*size : int(s+1)*size]
	}
	return a, nil
}

// String returns the arrangement unfolded as a net:
//
//	  U
//	L F R B
//	  D
func (a *Arrangement) String() string {
	n := a.degree
	var b strings.Builder
	pad := strings.Repeat("  ", n)

	writeRow := func(s Side, row int) {
		for col := 0; col < n; col++ {
			b.WriteString(a.faces[s][row*n+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(Up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < n; row++ {
		for _, s := range []Side{Left, Front, Right, Back} {
			writeRow(s, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
