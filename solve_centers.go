package nxcube

// solveOrientation turns the whole cube so the fixed Up and Front centers of
// an odd cube sit on Up and Front.
func (c *solveContext) solveOrientation() error {
	mid := c.n * c.n / 2
	whole := func(side Side, t Turn) error {
		return c.apply(WholeCube(side, t, c.n))
	}
	centerAt := func(color Color) Side {
		for _, s := range Sides {
			if c.at(s, mid) == color {
				return s
			}
		}
		return Up
	}

	var err error
	switch centerAt(SolvedColor(Up)) {
	case Front:
		err = whole(Right, CW)
	case Back:
		err = whole(Right, CCW)
	case Right:
		err = whole(Front, CCW)
	case Left:
		err = whole(Front, CW)
	case Down:
		err = whole(Right, Double)
	}
	if err != nil {
		return err
	}

	switch centerAt(SolvedColor(Front)) {
	case Right:
		err = whole(Up, CW)
	case Left:
		err = whole(Up, CCW)
	case Back:
		err = whole(Up, Double)
	}
	return err
}

// centerRun is a group of same-colored center facelets found on a face.
type centerRun struct {
	count int
	first int
}

// solveCenters builds the 2x2 center block of Up, then of each side face
// with that face held on top and Down in front. Down is finished last by
// elimination.
func (c *solveContext) solveCenters() error {
	h := c.n / 2
	cs := c.centerSpaces

	adjacent := func(space int, cw bool) int {
		step := 3
		if cw {
			step = 1
		}
		return c.centerSpaceCircle[(indexOf(c.centerSpaceCircle[:], space)+step)%4]
	}

	for t := 0; t < 5; t++ {
		perspective := StandardOrientation
		if t > 0 {
			perspective = Orientation{Top: sideCircle[t-1], Front: Down}
		}
		expected := SolvedColor(perspective.Top)

		if err := c.annotatef(2, "%s centers", perspective.Top.Name()); err != nil {
			return err
		}

		// Center spaces of each side relative to the perspective, expressed
		// as facelet indexes of the arrangement.
		var abs [6][4]int
		if t == 0 {
			for i := range abs {
				abs[i] = cs
			}
		} else {
			abs[Right] = [4]int{cs[2], cs[0], cs[3], cs[1]}
			abs[Left] = [4]int{cs[1], cs[3], cs[0], cs[2]}
			abs[Up] = cs
			abs[Down] = [4]int{cs[3], cs[2], cs[1], cs[0]}
			abs[Front] = abs[[4]Side{Up, Left, Down, Right}[t-1]]
			abs[Back] = abs[[4]Side{Down, Left, Up, Right}[t-1]]
		}

		assess := func(rel Side) centerRun {
			side := perspective.Inspect(rel)
			for i := 0; i < 4; i++ {
				relSpace := cs[i]
				absSpace := abs[rel][i]
				if c.at(side, absSpace) != expected {
					continue
				}

				relCW := adjacent(relSpace, true)
				relD := adjacent(relCW, true)
				relCCW := adjacent(relSpace, false)
				absCW := adjacent(absSpace, true)
				absD := adjacent(absCW, true)
				absCCW := adjacent(absSpace, false)
				cwSet := c.at(side, absCW) == expected
				dSet := c.at(side, absD) == expected
				ccwSet := c.at(side, absCCW) == expected

				r := centerRun{count: 1}
				if cwSet {
					r.count++
				}
				if ccwSet {
					r.count++
				}
				if (cwSet || ccwSet) && dSet {
					r.count++
				}
				switch {
				case !ccwSet:
					r.first = relSpace
				case !dSet:
					r.first = relCCW
				default:
					r.first = relD
				}
				return r
			}
			return centerRun{}
		}

		top := assess(Up)
		spacesSet := top.count
		if spacesSet > 0 && spacesSet != 4 {
			ccwTurns := indexOf(c.centerSpaceCircle[:], top.first) % 4
			if top.count == 3 {
				ccwTurns = (ccwTurns + 1) % 4
			}
			if ccwTurns != 0 {
				if err := c.turn(perspective, Up, quarterTurn(-ccwTurns)); err != nil {
					return err
				}
			}
		}

		g := c.guard(perspective.Top.Name() + " centers")
		for spacesSet < 4 {
			if err := g.tick(); err != nil {
				return err
			}

			bestSide := Right
			var best centerRun
			for _, side := range Sides {
				if side == Up {
					continue
				}
				if r := assess(side); r.count > best.count {
					bestSide, best = side, r
					if best.count == 4 {
						break
					}
				}
			}

			rel := StandardSideOrientation(bestSide)
			sidePerspective := Orientation{
				Top:   perspective.Inspect(rel.Top),
				Front: perspective.Inspect(rel.Front),
			}
			slice := Depth{Layers: h}
			thick := Depth{Layers: h, Thick: true}

			if best.count == 4 && t == 0 {
				rt, lt := CW, CCW
				if bestSide == Down {
					rt, lt = Double, Double
				}
				if err := c.apply(Move{Side: Right, Turn: rt, Layer: slice, Orientation: sidePerspective}); err != nil {
					return err
				}
				if err := c.apply(Move{Side: Left, Turn: lt, Layer: slice, Orientation: sidePerspective}); err != nil {
					return err
				}
				spacesSet = 4
				continue
			}

			effective := bestSide
			if bestSide == Down {
				effective = Front
			}
			onZ := effective.Axis() == AxisZ
			zeroThree := spacesSet == 0 || spacesSet == 3

			turns := indexOf(sideCircle[:], effective) - indexOf(c.centerSpaceCircle[:], best.first) + 40
			if best.count > 1 && onZ == zeroThree {
				turns--
			}
			if !zeroThree {
				if onZ {
					turns++
				} else {
					turns--
				}
			}
			if turns %= 4; turns > 0 {
				if err := c.turn(sidePerspective, Front, quarterTurn(turns)); err != nil {
					return err
				}
			}

			moveRight := (bestSide == Right || bestSide == Back) == (spacesSet == 0)
			lift, drop := Left, Left
			upTurn, downTurn := CCW, CW
			if moveRight {
				lift, drop = Right, Right
				upTurn, downTurn = CW, CCW
			}
			if bestSide == Down {
				upTurn, downTurn = Double, Double
			}

			if spacesSet == 2 && onZ {
				if err := c.turn(perspective, Up, CCW); err != nil {
					return err
				}
			}
			if spacesSet == 3 || t > 0 {
				if spacesSet != 3 {
					if err := c.turn(sidePerspective, Front, Double); err != nil {
						return err
					}
				}
				if err := c.apply(Move{Side: drop, Turn: downTurn, Layer: thick, Orientation: sidePerspective}); err != nil {
					return err
				}
				inject := Double
				if spacesSet == 3 {
					inject = CCW
					if onZ {
						inject = CW
					}
				}
				if err := c.turn(sidePerspective, Front, inject); err != nil {
					return err
				}
			}

			if err := c.apply(Move{Side: lift, Turn: upTurn, Layer: thick, Orientation: sidePerspective}); err != nil {
				return err
			}

			prev := spacesSet
			if best.count > 1 {
				spacesSet += 2
			} else {
				spacesSet++
			}

			var finalize Turn
			switch {
			case prev == 0 && spacesSet == 2 && onZ:
				finalize = CW
			case prev == 1 && spacesSet == 2 && effective.Axis() == AxisX:
				finalize = CW
			case prev == 1 && spacesSet == 3:
				finalize = CCW
				if effective.Axis() == AxisX {
					finalize = CW
				}
			}
			if finalize != 0 {
				if err := c.turn(perspective, Up, finalize); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
