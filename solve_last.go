package nxcube

// crossLayout is the shape Down-colored edges make on the Down face.
type crossLayout int

const (
	layoutCross crossLayout = iota
	layoutHorizontal
	layoutVertical
	layoutNW
	layoutNE
	layoutSW
	layoutSE
)

// layoutsByEdge lists, per edge slot, the layouts that need that edge.
var layoutsByEdge = [4][]crossLayout{
	{layoutCross, layoutVertical, layoutNW, layoutNE},
	{layoutCross, layoutHorizontal, layoutNW, layoutSW},
	{layoutCross, layoutHorizontal, layoutNE, layoutSE},
	{layoutCross, layoutVertical, layoutSW, layoutSE},
}

// edgeParitySeq flips a single edge of an even cube. half is the depth of
// the inner slices.
func edgeParitySeq(half int) []Move {
	slice := Depth{Layers: half}
	return []Move{
		{Side: Right, Turn: Double, Layer: slice},
		{Side: Back, Turn: Double},
		{Side: Up, Turn: Double},
		{Side: Left, Turn: CW, Layer: slice},
		{Side: Up, Turn: Double},
		{Side: Right, Turn: CCW, Layer: slice},
		{Side: Up, Turn: Double},
		{Side: Right, Turn: CW, Layer: slice},
		{Side: Up, Turn: Double},
		{Side: Front, Turn: Double},
		{Side: Right, Turn: CW, Layer: slice},
		{Side: Front, Turn: Double},
		{Side: Left, Turn: CCW, Layer: slice},
		{Side: Back, Turn: Double},
		{Side: Right, Turn: Double, Layer: slice},
	}
}

var (
	crossOrientSeq = SexyMove
	crossAlignSeq  = []Move{R, U, RPrime, U, R, U, U, RPrime}
	cornerCycleSeq = []Move{U, R, UPrime, LPrime, U, RPrime, UPrime, L}
	cornerTwistSeq = []Move{RPrime, DPrime, R, D}
)

// cornerParitySeq swaps two adjacent last-layer corners. The two-layer form
// serves degree 2; larger even cubes need the long form that keeps the
// paired edges intact.
func cornerParitySeq(degree int) []Move {
	if degree == 2 {
		return []Move{DPrime, R, U, RPrime, D, R2, UPrime, R, U, R2, UPrime}
	}
	half := degree / 2
	thick := Depth{Layers: half, Thick: true}
	slice := Depth{Layers: half}
	return []Move{
		{Side: Up, Turn: Double, Layer: thick},
		{Side: Left, Turn: Double, Layer: thick},
		U2,
		{Side: Left, Turn: Double, Layer: slice},
		U2,
		{Side: Left, Turn: Double, Layer: thick},
		{Side: Up, Turn: Double, Layer: thick},
		FPrime, UPrime, F, U, F, RPrime, F2, U, F, U, FPrime, UPrime, F, R,
	}
}

// solveDownEdges orients the Down edges into a cross, then permutes them to
// match their side centers.
func (c *solveContext) solveDownEdges() error {
	perspective := Orientation{Top: Down, Front: Back}
	downColor := SolvedColor(Down)
	es := c.edgeSpaces

	if err := c.annotate(2, "Forming cross"); err != nil {
		return err
	}

	g := c.guard("cross")
	for {
		if err := g.tick(); err != nil {
			return err
		}

		possible := map[crossLayout]bool{}
		for l := layoutCross; l <= layoutSE; l++ {
			possible[l] = true
		}
		downEdge, otherEdge, count := -1, -1, 0
		for i := 0; i < 4; i++ {
			if c.at(Down, es[i]) != downColor {
				otherEdge = i
				for _, l := range layoutsByEdge[i] {
					delete(possible, l)
				}
			} else {
				downEdge = i
				count++
			}
		}

		if c.n >= 4 && count%2 == 1 {
			parityEdge := otherEdge
			if count == 1 {
				parityEdge = downEdge
			}
			if err := c.annotate(2, "Fixing edge parity"); err != nil {
				return err
			}
			c.cfg.logger.Debug("edge parity", "edge", parityEdge)
			pp := Orientation{Top: Down, Front: StandardSideOrientation(Down).Inspect(edgeEdges[parityEdge])}
			if err := c.applySeq(pp, edgeParitySeq(c.n/2)); err != nil {
				return err
			}
			continue
		}

		var iterations []int
		switch len(possible) {
		case 0:
			iterations = []int{1, 2}
		case 1:
			var layout crossLayout
			for l := range possible {
				layout = l
			}
			switch layout {
			case layoutCross:
			case layoutHorizontal, layoutVertical:
				if layout == layoutVertical {
					if err := c.turn(perspective, Up, CW); err != nil {
						return err
					}
				}
				iterations = []int{1}
			default:
				if layout != layoutNW {
					t := Double
					switch layout {
					case layoutNE:
						t = CCW
					case layoutSW:
						t = CW
					}
					if err := c.turn(perspective, Up, t); err != nil {
						return err
					}
				}
				iterations = []int{2}
			}
		}

		for i, k := range iterations {
			if i == 1 {
				if err := c.turn(perspective, Up, Double); err != nil {
					return err
				}
			}
			if err := c.turn(perspective, Front, CW); err != nil {
				return err
			}
			for j := 0; j < k; j++ {
				if err := c.applySeq(perspective, crossOrientSeq); err != nil {
					return err
				}
			}
			if err := c.turn(perspective, Front, CCW); err != nil {
				return err
			}
		}
		break
	}

	if err := c.annotate(2, "Aligning cross"); err != nil {
		return err
	}

	aligned := func() int {
		n := 0
		for _, s := range sideCircle {
			if c.at(s, es[3]) == SolvedColor(s) {
				n++
			}
		}
		return n
	}

	arrange := perspective
	ga := c.guard("cross alignment")
	for {
		if err := ga.tick(); err != nil {
			return err
		}

		// Try all four turns of the layer and keep the best; four quarter
		// turns leave the cube as it was.
		best, bestTurns := 0, 0
		probe := Move{Side: Up, Turn: CW, Orientation: arrange}
		for t := 0; t < 4; t++ {
			if n := aligned(); n > best {
				best, bestTurns = n, t
			}
			c.silent(probe)
		}
		if bestTurns > 0 {
			if err := c.turn(arrange, Up, quarterTurn(bestTurns)); err != nil {
				return err
			}
		}
		if best == 4 {
			return nil
		}

		for _, s := range sideCircle {
			if c.at(s, es[3]) != SolvedColor(s) {
				arrange = Orientation{Top: Down, Front: s}
				break
			}
		}
		if err := c.applySeq(arrange, crossAlignSeq); err != nil {
			return err
		}
	}
}

// solveDownCorners positions the Down corners, fixing corner parity on even
// cubes, twists them in place and turns the layer into alignment.
func (c *solveContext) solveDownCorners() error {
	perspective := Orientation{Top: Down, Front: Back}
	cs := c.cornerSpaces
	csc := c.cornerSpaceCircle
	sc := sideCircle[:]

	if err := c.annotate(2, "Positioning corners"); err != nil {
		return err
	}

	// holds reports whether the corner at slot of the Down face, seen from
	// pos, carries the colors of the two given sides.
	holds := func(pos Orientation, slot int, a Side, aSpace int, b Side, bSpace int) bool {
		colors := [3]Color{
			c.at(Down, csc[(indexOf(sc, pos.Front)+slot)%4]),
			c.at(a, aSpace),
			c.at(b, bSpace),
		}
		want := [2]Color{SolvedColor(a), SolvedColor(b)}
		for _, w := range want {
			found := false
			for _, col := range colors {
				if col == w {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	topRight := func(pos Orientation) bool {
		return holds(pos, 0, pos.Inspect(Right), cs[3], pos.Inspect(Front), cs[2])
	}
	topLeft := func(pos Orientation) bool {
		return holds(pos, 1, pos.Inspect(Left), cs[2], pos.Inspect(Front), cs[3])
	}
	backRight := func(pos Orientation) bool {
		return holds(pos, 3, pos.Inspect(Right), cs[2], pos.Inspect(Back), cs[3])
	}

	gp := c.guard("corner parity")
	for {
		if err := gp.tick(); err != nil {
			return err
		}

		pos := perspective
		gr := c.guard("corner positioning")
		for {
			if err := gr.tick(); err != nil {
				return err
			}
			for i := 0; i < 4 && !topRight(pos); i++ {
				pos = Orientation{Top: Down, Front: sc[(indexOf(sc, pos.Front)+1)%4]}
			}
			if topRight(pos) {
				break
			}

			var err error
			if c.n <= 2 {
				err = c.turn(pos, Up, CW)
			} else {
				err = c.applySeq(pos, cornerCycleSeq)
			}
			if err != nil {
				return err
			}
		}

		gl := c.guard("corner cycling")
		for !topLeft(pos) {
			if err := gl.tick(); err != nil {
				return err
			}
			if err := c.applySeq(pos, cornerCycleSeq); err != nil {
				return err
			}
		}

		if c.n%2 == 1 || backRight(pos) {
			break
		}

		if err := c.annotate(2, "Fixing corner parity"); err != nil {
			return err
		}
		pp := Orientation{Top: Down, Front: pos.Front.Opposite()}
		if err := c.applySeq(pp, cornerParitySeq(c.n)); err != nil {
			return err
		}
	}

	if err := c.annotate(2, "Twisting corners"); err != nil {
		return err
	}
	if err := c.twistCorners(perspective); err != nil {
		return err
	}

	if err := c.annotate(2, "Aligning last layer"); err != nil {
		return err
	}
	start := indexOf(sc, Back)
	for k := 0; k < 4; k++ {
		j := (start + k) % 4
		if c.at(sc[j], cs[3]) != SolvedColor(Back) {
			continue
		}
		if turns := (start - j + 4) % 4; turns != 0 {
			return c.turn(perspective, Up, quarterTurn(turns))
		}
		return nil
	}
	return nil
}

// twistCorners twists each Down corner in turn into place while the layer
// is brought round under the working slot. The layer turns between corners
// are held back and emitted as one combined turn before the next twist, or
// dropped when the remaining corners need none.
func (c *solveContext) twistCorners(perspective Orientation) error {
	down := SolvedColor(Down)
	layer := Move{Side: Up, Turn: CW, Orientation: perspective}
	pending := 0

	flush := func() error {
		q := pending % 4
		for k := 0; k < pending; k++ {
			c.silent(layer.Inverse())
		}
		pending = 0
		if q == 0 {
			return nil
		}
		return c.turn(perspective, Up, quarterTurn(q))
	}

	for i := 0; i < 4; i++ {
		g := c.guard("corner twist")
		for c.at(Down, c.cornerSpaces[3]) != down {
			if err := g.tick(); err != nil {
				return err
			}
			if err := flush(); err != nil {
				return err
			}
			if err := c.applySeq(perspective, cornerTwistSeq); err != nil {
				return err
			}
		}
		if i != 3 {
			c.silent(layer)
			pending++
		}
	}

	for k := 0; k < pending; k++ {
		c.silent(layer.Inverse())
	}
	return nil
}
