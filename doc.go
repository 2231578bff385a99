// Package nxcube models NxN twisty cubes and solves 2x2, 3x3 and 4x4
// arrangements with a layer-by-layer reduction method.
//
// # Features
//
//   - Move algebra over sides, turns, layer depths and orientations
//   - Sticker-level arrangements of any degree, with facelet and net formats
//   - A rotation engine shared by every degree
//   - A phased solver whose output is annotated per phase and sub-step
//   - Seeded scrambles and a move tracker for live input
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	a := nxcube.NewArrangement(3)
//	a.Apply(nxcube.Scramble(3, 25, 1)...)
//
//	moves, err := nxcube.Solve(a)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(nxcube.FormatMoves(moves))
//
// # Annotated Steps
//
// A Solver yields every move along with annotations that name the phase
// and the sub-step it belongs to:
//
//	s, _ := nxcube.NewSolver(a)
//	for step, err := range s.Steps() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if ann, ok := step.(nxcube.Annotation); ok {
//	        fmt.Println(ann.Text)
//	    }
//	}
//
// Steps works on a snapshot taken by NewSolver, so ranging over it again
// replays the same solution. Next and Stop give a pull-style interface over
// the same sequence.
//
// # Orientation
//
// Moves carry the orientation they were chosen in. Notation, String and
// Rotation resolve a move in the standard orientation (white top, green
// front), so a solution can be replayed on any arrangement with Apply.
package nxcube
