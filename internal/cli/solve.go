package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
	"github.com/SeamusWaldron/nxcube/internal/tui"
)

var (
	solveInput     cubeInput
	solveGuard     int
	solveMovesOnly bool
	solveTUI       bool
	solveStats     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a cube",
	Long: `Solve a scrambled cube and print the annotated solution.

The starting arrangement comes from one of:
  --scramble "R U R' U'"   notation applied to a solved cube
  --facelets "..."         a facelet string (see 'nxcube show --facelets')
  --random 25              a random scramble

The solution is replayed on a copy of the arrangement and checked before it
is printed. Use --tui to step through it move by move.`,
	Example: `  nxcube solve -n 3 -s "R U F' L2 D B"
  nxcube solve -n 4 --random 40 --tui
  nxcube solve -n 2 --random 15 --moves-only`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveInput.register(solveCmd)
	solveCmd.Flags().IntVar(&solveGuard, "guard", 0, "Retry loop iteration ceiling (default from config)")
	solveCmd.Flags().BoolVar(&solveMovesOnly, "moves-only", false, "Print only the move sequence")
	solveCmd.Flags().BoolVar(&solveTUI, "tui", false, "Step through the solution interactively")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "Print per-phase statistics")
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, scramble, err := solveInput.arrangement()
	if err != nil {
		return err
	}

	guard := solveGuard
	if guard == 0 {
		guard = cfg.GuardCeiling
	}

	solver, err := nxcube.NewSolver(a,
		nxcube.WithLogger(logger.Logger),
		nxcube.WithGuardCeiling(guard),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	steps, moves, err := collect(solver)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	check := a.Clone()
	check.Apply(moves...)
	if !check.IsSolved() {
		return errors.New("solver output does not solve the cube")
	}
	logger.Debug("solved", "moves", len(moves), "elapsed", elapsed)

	if solveTUI {
		if !render.Interactive() {
			return errors.New("--tui needs an interactive terminal")
		}
		return tui.Run(a, steps, useColor())
	}

	if solveMovesOnly {
		fmt.Println(nxcube.FormatMoves(moves))
		return nil
	}

	color := useColor()
	if len(scramble) > 0 {
		fmt.Printf("Scramble: %s\n", nxcube.FormatMoves(scramble))
	}
	fmt.Println()
	fmt.Print(render.Net(a, color))
	fmt.Println()

	if len(moves) == 0 {
		fmt.Println("Already solved.")
		return nil
	}

	fmt.Print(render.Outline(steps, color))
	fmt.Println()
	fmt.Printf("Solution (%d moves, %s):\n", len(moves), elapsed.Round(time.Microsecond))
	for _, line := range render.WrapMoves(moves, 60) {
		fmt.Printf("  %s\n", line)
	}

	if solveStats {
		fmt.Println()
		printPhaseStats(solver.Stats())
	}
	return nil
}

// collect drains a solver run. On error no partial output is returned.
func collect(s *nxcube.Solver) ([]nxcube.Step, []nxcube.Move, error) {
	var (
		steps []nxcube.Step
		moves []nxcube.Move
	)
	for st, err := range s.Steps() {
		if err != nil {
			return nil, nil, err
		}
		steps = append(steps, st)
		if m, ok := st.(nxcube.Move); ok {
			moves = append(moves, m)
		}
	}
	return steps, moves, nil
}

func printPhaseStats(stats []nxcube.PhaseStats) {
	fmt.Println("Phases")
	fmt.Println("------")
	for _, ps := range stats {
		fmt.Printf("%-14s %4d moves  %3d passes\n", ps.Phase.DisplayName(), ps.Moves, ps.Iterations)
	}
}
