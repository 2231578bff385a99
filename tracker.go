package nxcube

// Tracker wraps an Arrangement fed one move at a time, as from a physical
// cube, and reports what happens to it.
type Tracker struct {
	degree   int
	a        *Arrangement
	moves    []Move
	onMove   func(Move)
	onSolved func()
}

// NewTracker creates a tracker holding a solved cube of the given degree.
func NewTracker(degree int) *Tracker {
	return &Tracker{
		degree: degree,
		a:      NewArrangement(degree),
	}
}

// OnMove sets a callback that fires after each applied move.
func (t *Tracker) OnMove(fn func(Move)) {
	t.onMove = fn
}

// OnSolved sets a callback that fires when a move leaves the cube solved.
func (t *Tracker) OnSolved(fn func()) {
	t.onSolved = fn
}

// Reset returns the tracker to a solved cube and clears the move history.
func (t *Tracker) Reset() {
	t.a = NewArrangement(t.degree)
	t.moves = nil
}

// Load replaces the tracked arrangement. The history is cleared.
func (t *Tracker) Load(a *Arrangement) {
	t.degree = a.Degree()
	t.a = a.Clone()
	t.moves = nil
}

// ApplyMove applies a move and fires the callbacks.
func (t *Tracker) ApplyMove(m Move) {
	t.a.Apply(m)
	t.moves = append(t.moves, m)

	if t.onMove != nil {
		t.onMove(m)
	}
	if t.onSolved != nil && t.a.IsSolved() {
		t.onSolved()
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Moves returns the moves applied since the last reset.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// IsSolved reports whether the tracked cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.a.IsSolved()
}

// Arrangement returns a copy of the tracked arrangement.
func (t *Tracker) Arrangement() *Arrangement {
	return t.a.Clone()
}

// String returns the unfolded net of the tracked cube.
func (t *Tracker) String() string {
	return t.a.String()
}
