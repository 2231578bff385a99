package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/bench"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

var (
	benchDegree  int
	benchCount   int
	benchLength  int
	benchSeed    uint64
	benchWorkers int
	benchGuard   int
	benchNoSave  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver on random scrambles",
	Long: `Solve a batch of seeded random scrambles in parallel and report move counts
per phase. Every solution is replayed and checked. The run is stored in the
history database unless --no-save is given.

Scramble i of a run uses seed+i, so a failing scramble can be reproduced with
'nxcube solve --random LENGTH --seed SEED'.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVarP(&benchDegree, "degree", "n", 0, "Cube degree (default from config)")
	benchCmd.Flags().IntVarP(&benchCount, "count", "c", 0, "Number of scrambles (default from config)")
	benchCmd.Flags().IntVarP(&benchLength, "length", "l", 0, "Scramble length (default from config)")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 0, "Seed of the first scramble (default: random)")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "Parallel solvers (default from config)")
	benchCmd.Flags().IntVar(&benchGuard, "guard", 0, "Retry loop iteration ceiling (default from config)")
	benchCmd.Flags().BoolVar(&benchNoSave, "no-save", false, "Do not record the run")
}

func runBench(cmd *cobra.Command, args []string) error {
	opts := bench.Options{
		Degree:         firstSet(benchDegree, cfg.DefaultDegree),
		Count:          firstSet(benchCount, cfg.Bench.Count),
		ScrambleLength: firstSet(benchLength, cfg.ScrambleLength),
		Seed:           benchSeed,
		Workers:        firstSet(benchWorkers, cfg.Bench.Workers),
		GuardCeiling:   firstSet(benchGuard, cfg.GuardCeiling),
		Logger:         logger.Logger,
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	if render.IsTerminal(os.Stderr) {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\r%d/%d", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Solving %d %dx%d scrambles of %d moves (seed %d, %d workers)...\n",
		opts.Count, opts.Degree, opts.Degree, opts.ScrambleLength, opts.Seed, opts.Workers)

	res, err := bench.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Println()
	printRun(res.Run)
	fmt.Println()
	printPhaseTable(res.Phases, res.Run.Solved)

	if len(res.Failures) > 0 {
		fmt.Println()
		fmt.Println(render.ErrorStyle.Render(fmt.Sprintf("%d failures:", len(res.Failures))))
		for _, f := range res.Failures {
			fmt.Printf("  seed %d: %v\n", f.Seed, f.Err)
		}
	}

	if benchNoSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := bench.Save(db, res)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	fmt.Println()
	fmt.Printf("Saved run %s\n", id)
	return nil
}

func firstSet(flag, fallback int) int {
	if flag != 0 {
		return flag
	}
	return fallback
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
