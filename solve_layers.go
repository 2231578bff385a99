package nxcube

// solveUpEdges drops each misplaced Up-colored edge to Down, turns it under
// its side color and lifts it with a half turn.
func (c *solveContext) solveUpEdges() error {
	upColor := SolvedColor(Up)
	es := c.edgeSpaces

	g := c.guard("up edges")
	for {
		if err := g.tick(); err != nil {
			return err
		}

		placed, err := c.placeUpEdge(upColor, es)
		if err != nil {
			return err
		}
		if !placed {
			return nil
		}
	}
}

func (c *solveContext) placeUpEdge(upColor Color, es [4]int) (bool, error) {
	for _, side := range Sides {
		for iEdge := 0; iEdge < 4; iEdge++ {
			space := es[iEdge]
			if c.at(side, space) != upColor {
				continue
			}

			sideOr := StandardSideOrientation(side)
			zeroThree := iEdge == 0 || iEdge == 3

			switch side {
			case Up:
				adjacent := sideOr.Inspect(edgeEdges[iEdge])
				if c.at(adjacent, es[0]) == SolvedColor(adjacent) {
					continue
				}
				if err := c.turn(StandardOrientation, adjacent, Double); err != nil {
					return false, err
				}
				switch iEdge {
				case 0:
					space = es[3]
				case 3:
					space = es[0]
				}
			case Down:
			default:
				if zeroThree {
					if err := c.turn(sideOr, Front, CW); err != nil {
						return false, err
					}
					if iEdge == 0 {
						space = es[2]
					} else {
						space = es[1]
					}
				}

				right := space == es[2]
				lr, down := Left, CCW
				if right {
					lr, down = Right, CW
				}
				seq := []Move{
					{Side: lr, Turn: CW},
					{Side: Down, Turn: down},
					{Side: lr, Turn: CCW},
				}
				if right {
					seq[0].Turn, seq[2].Turn = CCW, CW
				}
				if err := c.applySeq(sideOr, seq); err != nil {
					return false, err
				}

				if zeroThree {
					if err := c.turn(sideOr, Front, CCW); err != nil {
						return false, err
					}
				}
				space = c.edgeSpaceCircle[(indexOf(sideCircle[:], side)+2)%4]
			}

			// The edge now sits on Down at space.
			adjacent := StandardSideOrientation(Down).Inspect(edgeEdges[indexOf(es[:], space)])
			target := c.at(adjacent, es[3]).Home()
			if err := c.annotatef(2, "Placing %s edge", target.Name()); err != nil {
				return false, err
			}

			colorOr := StandardSideOrientation(target)
			if m, ok := horizontalRotation(false, adjacent, target); ok {
				if err := c.apply(m.Transform(colorOr)); err != nil {
					return false, err
				}
			}
			if err := c.turn(colorOr, Front, Double); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// solveUpCorners brings each misplaced Up-colored corner into the Down layer
// below its slot and inserts it.
func (c *solveContext) solveUpCorners() error {
	upColor := SolvedColor(Up)

	g := c.guard("up corners")
	for {
		if err := g.tick(); err != nil {
			return err
		}

		placed, err := c.placeUpCorner(upColor)
		if err != nil {
			return err
		}
		if !placed {
			return nil
		}
	}
}

func (c *solveContext) placeUpCorner(upColor Color) (bool, error) {
	cs := c.cornerSpaces

	for _, side := range Sides {
		for iSpace := 0; iSpace < 4; iSpace++ {
			space := cs[iSpace]
			if c.at(side, space) != upColor {
				continue
			}

			cur := side
			switch {
			case side == Up:
				sideOr := StandardSideOrientation(Up)
				zeroThree := space == cs[0] || space == cs[3]
				xEdge := cornerSpaceEdges[iSpace][0]
				xSide := sideOr.Inspect(xEdge)
				xSpace := cs[1]
				if zeroThree {
					xSpace = cs[0]
				}
				if c.at(xSide, xSpace) == SolvedColor(xSide) {
					continue
				}

				out, back := CW, CW
				if zeroThree {
					out, back = CCW, CCW
				}
				seq := []Move{
					{Side: xEdge, Turn: out},
					{Side: Back, Turn: back},
					{Side: xEdge, Turn: out.Reverse()},
				}
				if err := c.applySeq(sideOr, seq); err != nil {
					return false, err
				}

				cur = sideOr.Inspect(xEdge.Opposite())
				space = cs[2]
				if zeroThree {
					space = cs[3]
				}

			case side == Down:
				sideOr := StandardSideOrientation(Down)

				iFree := 0
				for i := 0; i < 4; i++ {
					if c.at(Up, cs[i]) != upColor {
						iFree = i
						break
					}
				}
				freeBottom := cs[(iFree+2)%4]
				turns := 0
				for i := indexOf(c.cornerSpaceCircle[:], space); c.cornerSpaceCircle[i] != freeBottom; i = (i + 1) % 4 {
					turns++
				}
				if turns != 0 {
					if err := c.turn(sideOr, Front, quarterTurn(turns)); err != nil {
						return false, err
					}
					space = freeBottom
				}

				xEdge := cornerSpaceEdges[indexOf(cs[:], space)][0]
				zeroThree := space == cs[0] || space == cs[3]
				up := CCW
				if zeroThree {
					up = CW
				}
				seq := []Move{
					{Side: xEdge, Turn: up},
					{Side: Front, Turn: up.Reverse()},
					{Side: xEdge, Turn: up.Reverse()},
				}
				if err := c.applySeq(sideOr, seq); err != nil {
					return false, err
				}

				cur = sideOr.Inspect(xEdge.Opposite())
				space = cs[2]
				if zeroThree {
					space = cs[3]
				}

			case space < cs[2]:
				// Top row of a side face.
				sideOr := StandardSideOrientation(side)
				xEdge := cornerSpaceEdges[iSpace][0]
				t := CW
				if space == cs[0] {
					t = CCW
				}
				seq := []Move{
					{Side: Front, Turn: t},
					{Side: Down, Turn: t},
					{Side: Front, Turn: t.Reverse()},
				}
				if err := c.applySeq(sideOr, seq); err != nil {
					return false, err
				}

				cur = sideOr.Inspect(xEdge)
				space = cs[indexOf(cs[:], space)+2]
			}

			// The corner now sits in the bottom row of cur with its Up
			// color facing out.
			sideOr := StandardSideOrientation(cur)
			xEdge := cornerSpaceEdges[indexOf(cs[:], space)][0]
			xSide := sideOr.Inspect(xEdge)
			xSpace := cs[3]
			if space == cs[3] {
				xSpace = cs[2]
			}
			xColorSide := c.at(xSide, xSpace).Home()

			if err := c.annotatef(2, "Placing corner from %s", cur.Name()); err != nil {
				return false, err
			}

			if m, ok := horizontalRotation(false, cur, xColorSide.Opposite()); ok {
				if err := c.apply(m.Transform(sideOr)); err != nil {
					return false, err
				}
			}

			open := CCW
			if space == cs[2] {
				open = CW
			}
			seq := []Move{
				{Side: Front, Turn: open},
				{Side: Down, Turn: open.Reverse()},
				{Side: Front, Turn: open.Reverse()},
			}
			if err := c.applySeq(StandardSideOrientation(xColorSide), seq); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// sideEdgeSeq inserts the Down edge in front of side into the slot between
// side and next, seen with Down on top.
func sideEdgeSeq(side, next Side, clockwise bool) []Move {
	seq := []Move{
		{Side: side, Turn: CW},
		{Side: Down, Turn: CCW},
		{Side: side, Turn: CCW},
		{Side: Down, Turn: CCW},
		{Side: next, Turn: CCW},
		{Side: Down, Turn: CW},
		{Side: next, Turn: CW},
	}
	if !clockwise {
		for i := range seq {
			seq[i].Turn = seq[i].Turn.Reverse()
		}
	}
	return seq
}

// solveSideEdges inserts every middle-layer edge that waits in the Down
// layer, then flips any that landed reversed.
func (c *solveContext) solveSideEdges() error {
	perspective := Orientation{Top: Down, Front: Back}
	downColor := SolvedColor(Down)
	es := c.edgeSpaces

	// applyStandard applies a sequence written in standard sides from the
	// frame that holds Down on top and front in front.
	applyStandard := func(front Side, seq []Move) error {
		o := Orientation{Top: Down, Front: front}
		for _, m := range seq {
			m.Orientation = StandardOrientation
			if err := c.apply(m.Transform(o)); err != nil {
				return err
			}
		}
		return nil
	}

	g := c.guard("side edges")
	for {
		if err := g.tick(); err != nil {
			return err
		}

		inserted := false
		for i := 0; i < 4; i++ {
			space := c.edgeSpaceCircle[i]
			adjacent := sideCircle[i]
			spaceColor := c.at(Down, space)
			adjColor := c.at(adjacent, es[3])
			if spaceColor == downColor || adjColor == downColor {
				continue
			}

			spaceSide := spaceColor.Home()
			adjSide := adjColor.Home()
			clockwise := indexOf(sideCircle[:], adjSide) == (1+indexOf(sideCircle[:], spaceSide))%4

			if err := c.annotatef(2, "Inserting %s/%s edge", spaceColor.Name(), adjColor.Name()); err != nil {
				return err
			}
			if m, ok := horizontalRotation(false, adjacent, spaceSide.Opposite()); ok {
				if err := c.apply(m.Transform(perspective)); err != nil {
					return err
				}
			}
			if err := applyStandard(adjSide, sideEdgeSeq(spaceSide, adjSide, clockwise)); err != nil {
				return err
			}
			inserted = true
			break
		}
		if inserted {
			continue
		}

		for i, side := range sideCircle {
			if c.at(side, es[2]) == SolvedColor(side) {
				continue
			}
			if err := c.annotatef(2, "Flipping %s edge", side.Name()); err != nil {
				return err
			}
			if err := applyStandard(side, sideEdgeSeq(side, sideCircle[(i+1)%4], true)); err != nil {
				return err
			}
			inserted = true
			break
		}
		if !inserted {
			return nil
		}
	}
}
