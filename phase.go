package nxcube

import "fmt"

// Phase is one stage of the reduction method. Which phases run, and in what
// order, depends only on the degree of the cube; see PhasesFor.
type Phase int

const (
	// PhaseOrientation turns the whole cube so its fixed centers match the
	// standard orientation. Odd degrees only.
	PhaseOrientation Phase = iota

	// PhaseCenters builds the 2x2 center block of every face. Even degrees only.
	PhaseCenters

	// PhaseEdgePairing pairs the wing stickers of each edge. Even degrees only.
	PhaseEdgePairing

	// PhaseUpEdges places the Up edges with their side colors matching.
	PhaseUpEdges

	// PhaseUpCorners places and orients the Up corners, completing the first layer.
	PhaseUpCorners

	// PhaseSideEdges fills the middle layer.
	PhaseSideEdges

	// PhaseDownEdges forms the Down cross and aligns it, fixing edge parity
	// on even degrees.
	PhaseDownEdges

	// PhaseDownCorners positions and twists the Down corners, fixing corner
	// parity on even degrees, and aligns the last layer.
	PhaseDownCorners
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseOrientation:
		return "orientation"
	case PhaseCenters:
		return "centers"
	case PhaseEdgePairing:
		return "edge_pairing"
	case PhaseUpEdges:
		return "up_edges"
	case PhaseUpCorners:
		return "up_corners"
	case PhaseSideEdges:
		return "side_edges"
	case PhaseDownEdges:
		return "down_edges"
	case PhaseDownCorners:
		return "down_corners"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseOrientation:
		return "Orientation"
	case PhaseCenters:
		return "Centers"
	case PhaseEdgePairing:
		return "Edge Pairing"
	case PhaseUpEdges:
		return "Up Edges"
	case PhaseUpCorners:
		return "Up Corners"
	case PhaseSideEdges:
		return "Side Edges"
	case PhaseDownEdges:
		return "Down Edges"
	case PhaseDownCorners:
		return "Down Corners"
	default:
		return "Unknown"
	}
}

var phaseTable = map[int][]Phase{
	2: {PhaseUpCorners, PhaseDownCorners},
	3: {PhaseOrientation, PhaseUpEdges, PhaseUpCorners, PhaseSideEdges, PhaseDownEdges, PhaseDownCorners},
	4: {PhaseCenters, PhaseEdgePairing, PhaseUpEdges, PhaseUpCorners, PhaseSideEdges, PhaseDownEdges, PhaseDownCorners},
}

// PhasesFor returns the phases the solver runs for a cube of the given degree.
func PhasesFor(degree int) ([]Phase, error) {
	phases, ok := phaseTable[degree]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDegree, degree)
	}
	out := make([]Phase, len(phases))
	copy(out, phases)
	return out, nil
}

// PhaseStats summarizes one phase of a solver run.
type PhaseStats struct {
	Phase Phase
	Moves int
	// Iterations is the largest number of passes any retry loop of the
	// phase needed.
	Iterations int
}
