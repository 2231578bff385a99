package nxcube

import "fmt"

// uniqueEdge addresses one of the twelve edges by a face and one of its
// edge slots, together with the neighboring face and slot.
type uniqueEdge struct {
	side          Side
	iEdge         int
	adjacentSide  Side
	iAdjacentEdge int
}

func (c *solveContext) uniqueEdges() []uniqueEdge {
	upOr := StandardSideOrientation(Up)
	downOr := StandardSideOrientation(Down)
	frontOr := StandardSideOrientation(Front)
	backOr := StandardSideOrientation(Back)

	edges := make([]uniqueEdge, 0, 12)
	for i := 0; i < 4; i++ {
		edges = append(edges,
			uniqueEdge{side: Up, iEdge: i, adjacentSide: upOr.Inspect(edgeEdges[i]), iAdjacentEdge: 0},
			uniqueEdge{side: Down, iEdge: i, adjacentSide: downOr.Inspect(edgeEdges[i]), iAdjacentEdge: 3},
		)
	}
	for i := 1; i <= 2; i++ {
		adj := 3 - i
		edges = append(edges,
			uniqueEdge{side: Front, iEdge: i, adjacentSide: frontOr.Inspect(edgeEdges[i]), iAdjacentEdge: adj},
			uniqueEdge{side: Back, iEdge: i, adjacentSide: backOr.Inspect(edgeEdges[i]), iAdjacentEdge: adj},
		)
	}
	return edges
}

// edgeColors returns the colors of the first wing of e, on its own face and
// on the neighboring face.
func (c *solveContext) edgeColors(e uniqueEdge) (Color, Color) {
	return c.at(e.side, c.edgeSpacePairs[e.iEdge][0]),
		c.at(e.adjacentSide, c.edgeSpacePairs[e.iAdjacentEdge][1])
}

func (c *solveContext) edgePaired(e uniqueEdge) bool {
	color, adj := c.edgeColors(e)
	return color == c.at(e.side, c.edgeSpacePairs[e.iEdge][1]) &&
		adj == c.at(e.adjacentSide, c.edgeSpacePairs[e.iAdjacentEdge][0])
}

// edgePairingSeq joins the wing held at the front-left edge with the one
// held at the front-right edge.
func edgePairingSeq(half int) []Move {
	thick := Depth{Layers: half, Thick: true}
	return []Move{
		{Side: Down, Turn: CW, Layer: thick},
		{Side: Right, Turn: CW},
		{Side: Front, Turn: CCW},
		{Side: Up, Turn: CW},
		{Side: Right, Turn: CCW},
		{Side: Front, Turn: CW},
		{Side: Down, Turn: CCW, Layer: thick},
	}
}

// solveEdgePairing pairs the wings of every edge, one edge per pass, until
// no unpaired edge is left.
func (c *solveContext) solveEdgePairing() error {
	edges := c.uniqueEdges()
	es := c.edgeSpaces
	esc := c.edgeSpaceCircle[:]

	g := c.guard("edge pairing")
	for {
		if err := g.tick(); err != nil {
			return err
		}

		var (
			ue1   uniqueEdge
			found bool
		)
		for _, e := range edges {
			if !c.edgePaired(e) {
				ue1, found = e, true
				break
			}
		}
		if !found {
			return nil
		}

		color1, adj1 := c.edgeColors(ue1)
		if err := c.annotatef(2, "Pairing edge %s/%s", color1, adj1); err != nil {
			return err
		}
		c.cfg.logger.Debug("pairing edge", "side", ue1.side, "edge", ue1.iEdge, "colors", color1.String()+adj1.String())

		perspective := StandardSideOrientation(ue1.side)

		// Hold the edge at the front-left slot.
		turns := (indexOf(esc, es[1]) - indexOf(esc, c.edgeSpacePairs[ue1.iEdge][0]) + 4) % 4
		if turns != 0 {
			if err := c.turn(perspective, Front, quarterTurn(turns)); err != nil {
				return err
			}
		}

		paired, err := c.pairWith(edges, ue1, color1, adj1, perspective)
		if err != nil {
			return err
		}
		if !paired {
			return fmt.Errorf("%w: %s/%s edge", ErrNoPairFound, color1.Name(), adj1.Name())
		}
	}
}

// pairWith finds the partner wing of the edge held at the front-left slot
// of perspective, brings it to the front-right slot and joins the two.
func (c *solveContext) pairWith(edges []uniqueEdge, ue1 uniqueEdge, color1, adj1 Color, perspective Orientation) (bool, error) {
	es := c.edgeSpaces
	esc := c.edgeSpaceCircle[:]
	sc := sideCircle[:]

	for _, ue2 := range edges {
		if (ue2.side == ue1.side || ue2.adjacentSide == ue1.side) && ue2.iEdge == 1 {
			continue
		}

		for el := 0; el < 2; el++ {
			color2 := c.at(ue2.side, c.edgeSpacePairs[ue2.iEdge][el])
			adj2 := c.at(ue2.adjacentSide, c.edgeSpacePairs[ue2.iAdjacentEdge][1-el])
			if !(color1 == color2 && adj1 == adj2) && !(color1 == adj2 && adj1 == color2) {
				continue
			}

			flipped := color1 == adj2
			colorSide2, colorIEdge2 := ue2.side, ue2.iEdge
			if flipped {
				colorSide2, colorIEdge2 = ue2.adjacentSide, ue2.iAdjacentEdge
			}
			rel := perspective.Locate(colorSide2)

			// Edge slot of the partner as seen from perspective.
			var relIEdge int
			switch {
			case perspective.Front == Up || perspective.Front == Down:
				var offset int
				switch rel {
				case Front:
				case Back:
					offset = 2
				default:
					offset = indexOf(sc, colorSide2)
					if perspective.Front == Up {
						offset = -offset
					}
				}
				relSpace := esc[(indexOf(esc, es[colorIEdge2])+offset+4)%4]
				relIEdge = indexOf(es[:], relSpace)
			case rel == Up || rel == Down:
				offset := indexOf(sc, perspective.Front)
				if rel == Down {
					offset = -offset
				}
				relSpace := esc[(indexOf(esc, es[colorIEdge2])+offset+4)%4]
				relIEdge = indexOf(es[:], relSpace)
			default:
				relIEdge = ue2.iEdge
			}

			// Bring the partner onto Up, Down or Back.
			switch {
			case rel == Front && relIEdge != 2:
				layer := Down
				if relIEdge == 0 {
					layer = Up
				}
				if err := c.turn(perspective, layer, Double); err != nil {
					return false, err
				}
				rel = Back
			case rel == Right || rel == Left:
				rotated := false
				if relIEdge == 1 || relIEdge == 2 {
					rotated = true
					if err := c.turn(perspective, rel, CW); err != nil {
						return false, err
					}
					if relIEdge == 1 {
						relIEdge = 0
					} else {
						relIEdge = 3
					}
				}

				top := relIEdge == 0
				layer, t := Down, CW
				if top {
					layer = Up
				}
				if (rel == Right) == top {
					t = CCW
				}
				if err := c.turn(perspective, layer, t); err != nil {
					return false, err
				}

				// Turning Left back out of the way restores the held edge.
				if rotated && rel == Left {
					if err := c.turn(perspective, Left, CCW); err != nil {
						return false, err
					}
				}
				rel = Back
			}

			target := es[2]
			if rel == Back {
				target = es[1]
			}
			if turns := (indexOf(esc, target) - indexOf(esc, es[relIEdge]) + 4) % 4; turns > 0 {
				if err := c.turn(perspective, rel, quarterTurn(turns)); err != nil {
					return false, err
				}
			}

			if rel != Front {
				t := CW
				switch rel {
				case Up:
					t = CCW
				case Back:
					t = Double
				}
				if err := c.turn(perspective, Right, t); err != nil {
					return false, err
				}
			}

			return true, c.applySeq(perspective, edgePairingSeq(c.n/2))
		}
	}
	return false, nil
}
