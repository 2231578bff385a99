package nxcube

// Side is one of the six faces of the cube.
// Opposite faces are adjacent values; even values are the positive end of their axis.
type Side int

const (
	Right Side = iota
	Left
	Up
	Down
	Front
	Back
)

// Sides lists every side in index order.
var Sides = [6]Side{Right, Left, Up, Down, Front, Back}

// String returns the notation letter of the side.
func (s Side) String() string {
	switch s {
	case Right:
		return "R"
	case Left:
		return "L"
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Name returns the full name of the side.
func (s Side) Name() string {
	switch s {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return "Unknown"
	}
}

// Opposite returns the side facing away from s.
func (s Side) Opposite() Side {
	if s%2 == 0 {
		return s + 1
	}
	return s - 1
}

// Axis returns the axis the side lies on.
func (s Side) Axis() Axis {
	return Axis(s / 2)
}

// IsPositive reports whether the side is the positive end of its axis.
func (s Side) IsPositive() bool {
	return s%2 == 0
}

// Valid reports whether s names one of the six sides.
func (s Side) Valid() bool {
	return s >= Right && s <= Back
}

// Axis is one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota // Right/Left
	AxisY             // Up/Down
	AxisZ             // Front/Back
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// SideOf returns the side at the positive or negative end of an axis.
func SideOf(axis Axis, positive bool) Side {
	s := Side(axis * 2)
	if !positive {
		s++
	}
	return s
}

// Orientation is a viewing frame: which absolute side the viewer sees on top
// and which one faces them. Top and Front must lie on different axes.
//
// The zero value is not a valid frame; wherever a move is resolved it stands
// for StandardOrientation.
type Orientation struct {
	Top   Side
	Front Side
}

// StandardOrientation is the reference frame arrangements are stored in.
var StandardOrientation = Orientation{Top: Up, Front: Front}

// Valid reports whether top and front are real sides on different axes.
func (o Orientation) Valid() bool {
	return o.Top.Valid() && o.Front.Valid() && o.Top.Axis() != o.Front.Axis()
}

// orDefault maps the zero Orientation to StandardOrientation.
func (o Orientation) orDefault() Orientation {
	if o == (Orientation{}) {
		return StandardOrientation
	}
	return o
}

// IsLRProper reports whether Right, as seen from this frame, lies on the
// positive end of the remaining axis.
func (o Orientation) IsLRProper() bool {
	o = o.orDefault()
	topAxis, frontAxis := o.Top.Axis(), o.Front.Axis()
	cyclic := frontAxis-topAxis == 1 || (topAxis == AxisZ && frontAxis == AxisX)
	return cyclic == (o.Top.IsPositive() == o.Front.IsPositive())
}

// Inspect returns the absolute side seen as relative from this frame.
func (o Orientation) Inspect(relative Side) Side {
	o = o.orDefault()
	switch relative {
	case Up:
		return o.Top
	case Front:
		return o.Front
	case Down:
		return o.Top.Opposite()
	case Back:
		return o.Front.Opposite()
	}
	// Right/Left lie on whichever axis top and front leave free.
	axis := 3 - o.Top.Axis() - o.Front.Axis()
	return SideOf(axis, (relative == Right) == o.IsLRProper())
}

// Locate returns how the absolute side appears from this frame.
// It is the inverse of Inspect.
func (o Orientation) Locate(absolute Side) Side {
	o = o.orDefault()
	switch absolute {
	case o.Top:
		return Up
	case o.Front:
		return Front
	case o.Top.Opposite():
		return Down
	case o.Front.Opposite():
		return Back
	}
	if o.IsLRProper() == absolute.IsPositive() {
		return Right
	}
	return Left
}

// StandardSideOrientation is the natural frame for looking squarely at side:
// side in front, Up on top (Back on top for Up, Front on top for Down).
func StandardSideOrientation(side Side) Orientation {
	top := Up
	switch side {
	case Up:
		top = Back
	case Down:
		top = Front
	}
	return Orientation{Top: top, Front: side}
}

// Orientations returns all 24 valid frames.
func Orientations() []Orientation {
	out := make([]Orientation, 0, 24)
	for _, top := range Sides {
		for _, front := range Sides {
			o := Orientation{Top: top, Front: front}
			if o.Valid() {
				out = append(out, o)
			}
		}
	}
	return out
}
