package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded benchmark runs",
	Long:  `Display recent benchmark runs from the history database, newest first.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show details of a benchmark run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete a benchmark run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to display")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := storage.NewRunRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Start one with: nxcube bench")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-3s  %5s  %6s  %8s  %5s\n", "RUN", "STARTED", "N", "COUNT", "FAILED", "AVG", "MAX")
	for _, r := range runs {
		fmt.Printf("%-36s  %-19s  %dx%d  %5d  %6d  %8.1f  %5d\n",
			r.RunID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Degree, r.Degree,
			r.Count,
			r.Failed,
			r.AvgMoves(),
			r.MaxMoves,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := storage.NewRunRepository(db).Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", args[0])
	}

	phases, err := storage.NewPhaseRepository(db).ForRun(run.RunID)
	if err != nil {
		return fmt.Errorf("failed to get phase stats: %w", err)
	}

	fmt.Printf("Run:     %s\n", run.RunID)
	fmt.Printf("Started: %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println()
	printRun(*run)
	fmt.Println()
	printPhaseTable(phases, run.Solved)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewRunRepository(db).Delete(args[0]); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	fmt.Printf("Deleted run %s\n", args[0])
	return nil
}

func printRun(r storage.Run) {
	fmt.Println("Statistics")
	fmt.Println("----------")
	fmt.Printf("Cube:      %dx%d\n", r.Degree, r.Degree)
	fmt.Printf("Scrambles: %d x %d moves (seed %d)\n", r.Count, r.ScrambleLength, r.Seed)
	fmt.Printf("Workers:   %d\n", r.Workers)
	fmt.Printf("Duration:  %s\n", formatDuration(time.Duration(r.DurationMs)*time.Millisecond))
	fmt.Printf("Solved:    %d\n", r.Solved)
	fmt.Printf("Failed:    %d\n", r.Failed)
	fmt.Printf("Moves:     avg %.1f, max %d\n", r.AvgMoves(), r.MaxMoves)
}

func printPhaseTable(phases []storage.PhaseStat, solved int) {
	if len(phases) == 0 {
		return
	}
	fmt.Println("Phases")
	fmt.Println("------")
	fmt.Printf("%-14s  %8s  %5s  %11s\n", "PHASE", "AVG", "MAX", "MAX PASSES")
	for _, p := range phases {
		avg := 0.0
		if solved > 0 {
			avg = float64(p.TotalMoves) / float64(solved)
		}
		fmt.Printf("%-14s  %8.1f  %5d  %11d\n", p.PhaseKey, avg, p.MaxMoves, p.MaxIterations)
	}
}
