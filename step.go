package nxcube

// Step is one item produced by a Solver: either a Move, which the solver
// has already applied to its own copy and the consumer should apply to
// theirs, or an Annotation describing progress.
//
//	switch s := step.(type) {
//	case nxcube.Move:
//	    a.Apply(s)
//	case nxcube.Annotation:
//	    fmt.Println(strings.Repeat("  ", s.Level-1) + s.Text)
//	}
type Step interface {
	isStep()
}

// Annotation is a progress label. Levels nest: a level-1 annotation opens a
// phase, level-2 annotations name steps within it.
type Annotation struct {
	Text  string
	Level int
}

func (Move) isStep()       {}
func (Annotation) isStep() {}
