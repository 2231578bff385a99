package nxcube

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
)

// errStopped unwinds a run when the consumer stops pulling.
var errStopped = errors.New("nxcube: consumer stopped")

// sideCircle is the ring of side faces, clockwise seen from Up.
var sideCircle = [4]Side{Front, Right, Back, Left}

// Solver produces the moves that solve an arrangement, one Step at a time.
//
// The arrangement is copied when the Solver is created; later changes to the
// caller's arrangement do not affect it. Every run works on a fresh copy of
// that snapshot, so Steps can be iterated more than once with identical
// results. A Solver is not safe for concurrent use.
type Solver struct {
	cfg      *config
	snapshot *Arrangement
	phases   []Phase
	stats    []PhaseStats

	next func() (Step, error, bool)
	stop func()
	done bool
}

// NewSolver creates a solver for a. It fails with ErrUnsupportedDegree when
// no phase plan exists for the arrangement's degree.
//
// The arrangement is not validated; call Validate first. An invalid
// arrangement may run into ErrGuardCeilingExceeded or stop unsolved.
func NewSolver(a *Arrangement, opts ...Option) (*Solver, error) {
	phases, err := PhasesFor(a.Degree())
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Solver{
		cfg:      cfg,
		snapshot: a.Clone(),
		phases:   phases,
	}, nil
}

// Solve runs a solver to completion and returns its moves.
func Solve(a *Arrangement, opts ...Option) ([]Move, error) {
	s, err := NewSolver(a, append(opts, WithAnnotations(false))...)
	if err != nil {
		return nil, err
	}

	var moves []Move
	for step, err := range s.Steps() {
		if err != nil {
			return nil, err
		}
		if m, ok := step.(Move); ok {
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// Degree returns the degree of the arrangement being solved.
func (s *Solver) Degree() int {
	return s.snapshot.Degree()
}

// Phases returns the phase plan of the solver.
func (s *Solver) Phases() []Phase {
	return slices.Clone(s.phases)
}

// Steps returns a sequence over a fresh run. Work happens only while the
// sequence is being pulled; breaking out of the loop abandons the run.
// A failed run yields a single final (nil, err) pair.
func (s *Solver) Steps() iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		c := newSolveContext(s.snapshot.Clone(), s.cfg, yield)
		err := c.run(s.phases)
		s.stats = c.stats
		if err != nil && !errors.Is(err, errStopped) {
			yield(nil, err)
		}
	}
}

// Next returns the next step of the current run, starting one if needed.
// It returns io.EOF once the run is complete. After an error or io.EOF,
// call Stop to start over.
func (s *Solver) Next() (Step, error) {
	if s.done {
		return nil, io.EOF
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull2(s.Steps())
	}

	step, err, ok := s.next()
	if !ok {
		s.done = true
		return nil, io.EOF
	}
	if err != nil {
		s.done = true
	}
	return step, err
}

// Stop abandons the run driven by Next, if any. The next call to Next
// starts a new run.
func (s *Solver) Stop() {
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop, s.done = nil, nil, false
}

// Stats returns per-phase statistics of the most recent run, including a
// run abandoned part way.
func (s *Solver) Stats() []PhaseStats {
	return slices.Clone(s.stats)
}

// solveContext owns the working arrangement of one run together with the
// facelet index tables every phase works from.
type solveContext struct {
	a     *Arrangement
	n     int
	cfg   *config
	yield func(Step, error) bool

	phase Phase
	stats []PhaseStats

	// Corner facelets: top-left, top-right, bottom-left, bottom-right.
	cornerSpaces      [4]int
	cornerSpaceCircle [4]int

	// Edge facelets on the top, left, right and bottom edges. On even
	// degrees these are the first wing of each edge.
	edgeSpaces      [4]int
	edgeSpaceCircle [4]int
	edgeSpacePairs  [4][2]int

	// The 2x2 block in the middle of an even face.
	centerSpaces      [4]int
	centerSpaceCircle [4]int
}

// edgeEdges names the neighbor of each entry of edgeSpaces, relative to
// the face's standard side orientation.
var edgeEdges = [4]Side{Up, Left, Right, Down}

// cornerSpaceEdges names the horizontal and vertical neighbors of each corner.
var cornerSpaceEdges = [4][2]Side{
	{Left, Up},
	{Right, Up},
	{Left, Down},
	{Right, Down},
}

func newSolveContext(a *Arrangement, cfg *config, yield func(Step, error) bool) *solveContext {
	n := a.Degree()
	h := n / 2
	c := &solveContext{a: a, n: n, cfg: cfg, yield: yield}

	c.cornerSpaces = [4]int{0, n - 1, n * (n - 1), n*n - 1}
	c.cornerSpaceCircle = [4]int{c.cornerSpaces[0], c.cornerSpaces[1], c.cornerSpaces[3], c.cornerSpaces[2]}

	c.edgeSpaces = [4]int{(n - 1) / 2, n * h, n*((n+1)/2) - 1, n*(n-1) + h}
	c.edgeSpaceCircle = [4]int{c.edgeSpaces[0], c.edgeSpaces[2], c.edgeSpaces[3], c.edgeSpaces[1]}
	c.edgeSpacePairs = [4][2]int{
		{c.edgeSpaces[0], c.edgeSpaces[0] + 1},
		{c.edgeSpaces[1], c.edgeSpaces[1] - n},
		{c.edgeSpaces[2], c.edgeSpaces[2] + n},
		{c.edgeSpaces[3], c.edgeSpaces[3] - 1},
	}

	c.centerSpaces = [4]int{n*(h-1) + h - 1, n*(h-1) + h, n*h + h - 1, n*h + h}
	c.centerSpaceCircle = [4]int{c.centerSpaces[0], c.centerSpaces[1], c.centerSpaces[3], c.centerSpaces[2]}

	return c
}

func (c *solveContext) run(phases []Phase) error {
	for _, p := range phases {
		c.phase = p
		c.stats = append(c.stats, PhaseStats{Phase: p})

		if err := c.annotate(1, p.DisplayName()); err != nil {
			return err
		}

		var err error
		switch p {
		case PhaseOrientation:
			err = c.solveOrientation()
		case PhaseCenters:
			err = c.solveCenters()
		case PhaseEdgePairing:
			err = c.solveEdgePairing()
		case PhaseUpEdges:
			err = c.solveUpEdges()
		case PhaseUpCorners:
			err = c.solveUpCorners()
		case PhaseSideEdges:
			err = c.solveSideEdges()
		case PhaseDownEdges:
			err = c.solveDownEdges()
		case PhaseDownCorners:
			err = c.solveDownCorners()
		default:
			err = fmt.Errorf("nxcube: phase %s not implemented", p)
		}
		if err != nil {
			return err
		}

		st := c.current()
		c.cfg.logger.Debug("phase complete", "phase", p, "moves", st.Moves, "iterations", st.Iterations)
	}
	return nil
}

func (c *solveContext) current() *PhaseStats {
	return &c.stats[len(c.stats)-1]
}

// at returns the color at space of side.
func (c *solveContext) at(side Side, space int) Color {
	return c.a.faces[side][space]
}

// apply turns the working arrangement and emits the move.
func (c *solveContext) apply(m Move) error {
	c.a.Apply(m)
	c.current().Moves++
	if !c.yield(m, nil) {
		return errStopped
	}
	return nil
}

// turn applies a move built from its parts.
func (c *solveContext) turn(o Orientation, side Side, t Turn) error {
	return c.apply(Move{Side: side, Turn: t, Orientation: o})
}

// applySeq applies a fixed sequence as seen from o.
func (c *solveContext) applySeq(o Orientation, seq []Move) error {
	for _, m := range seq {
		m.Orientation = o
		if err := c.apply(m); err != nil {
			return err
		}
	}
	return nil
}

// silent turns the working arrangement without emitting anything. Callers
// must undo such turns, or account for them, before the next emitted move.
func (c *solveContext) silent(m Move) {
	c.a.Apply(m)
}

func (c *solveContext) annotatef(level int, format string, args ...any) error {
	return c.annotate(level, fmt.Sprintf(format, args...))
}

func (c *solveContext) annotate(level int, text string) error {
	if !c.cfg.annotations {
		return nil
	}
	if !c.yield(Annotation{Text: text, Level: level}, nil) {
		return errStopped
	}
	return nil
}

// guard counts passes of a retry loop against the configured ceiling.
type guard struct {
	c      *solveContext
	name   string
	passes int
}

func (c *solveContext) guard(name string) *guard {
	return &guard{c: c, name: name}
}

func (g *guard) tick() error {
	g.passes++
	if g.passes > g.c.cfg.guardCeiling {
		return fmt.Errorf("%w: %s: %s did not settle within %d passes",
			ErrGuardCeilingExceeded, g.c.phase, g.name, g.c.cfg.guardCeiling)
	}
	if st := g.c.current(); g.passes > st.Iterations {
		st.Iterations = g.passes
	}
	return nil
}

// horizontalRotation returns the Up (top) or Down turn, seen from src, that
// carries the src column of that layer over to dest. It reports false when
// no turn is needed.
func horizontalRotation(top bool, src, dest Side) (Move, bool) {
	o := StandardSideOrientation(src)
	var t Turn
	switch o.Locate(dest) {
	case Left:
		t = CCW
		if top {
			t = CW
		}
	case Right:
		t = CW
		if top {
			t = CCW
		}
	case Back:
		t = Double
	default:
		return Move{}, false
	}

	side := Down
	if top {
		side = Up
	}
	return Move{Side: side, Turn: t, Orientation: o}, true
}

// quarterTurn converts a quarter-turn count into a Turn: 1 CW, 2 Double,
// 3 CCW. Callers never pass multiples of four.
func quarterTurn(quarters int) Turn {
	t, _ := turnOf(quarters)
	return t
}

func indexOf[T comparable](xs []T, v T) int {
	return slices.Index(xs, v)
}
