package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/gocube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

var (
	liveScanSeconds int
	liveAttempts    int
	liveKeepState   bool
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Track a GoCube and solve its current state",
	Long: `Connect to a GoCube smart cube over Bluetooth and track its face turns.

The cube is assumed solved on connect; the cube itself is told the same
unless --keep-state is set. While connected:
  Enter  solve the tracked state and print the moves
  n      print the tracked net
  r      reset tracking to solved
  q      quit`,
	RunE: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveCmd.Flags().IntVar(&liveScanSeconds, "scan", 0, "Seconds per scan attempt (default from config)")
	liveCmd.Flags().IntVar(&liveAttempts, "attempts", 3, "Scan attempts before giving up")
	liveCmd.Flags().BoolVar(&liveKeepState, "keep-state", false, "Do not reset the cube's own solved state on connect")
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	scanTime := time.Duration(firstSet(liveScanSeconds, cfg.Live.ScanSeconds)) * time.Second
	client, devices, err := scanForGoCube(ctx, scanTime, liveAttempts)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return gocube.ErrDeviceNotFound
	}

	var (
		mu      sync.Mutex
		tracker = nxcube.NewTracker(3)
	)
	tracker.OnSolved(func() {
		fmt.Println(render.PhaseStyle.Render("SOLVED!"))
	})
	client.OnMoves(func(moves []nxcube.Move) {
		mu.Lock()
		defer mu.Unlock()
		tracker.ApplyMoves(moves)
		fmt.Println(render.MoveStyle.Render(nxcube.FormatMoves(moves)))
	})

	client.OnMessage(func(msg *gocube.Message) {
		logger.Debug("frame", "type", gocube.MessageTypeName(msg.Type), "payload", hex.EncodeToString(msg.Payload))
	})

	if err := client.Connect(devices[0]); err != nil {
		return err
	}
	defer client.Disconnect()

	if !liveKeepState {
		if err := client.ResetSolved(); err != nil {
			logger.Warn("could not reset cube state", "err", err)
		}
	}

	fmt.Printf("Connected to %s", client.Name())
	if b := client.Battery(); b >= 0 {
		fmt.Printf(" (battery %d%%)", b)
	}
	fmt.Println()
	fmt.Println(render.HelpStyle.Render("Enter=solve  n=net  r=reset  q=quit"))

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch strings.TrimSpace(strings.ToLower(line)) {
			case "q":
				return nil
			case "r":
				mu.Lock()
				tracker.Reset()
				mu.Unlock()
				if err := client.ResetSolved(); err != nil {
					logger.Warn("could not reset cube state", "err", err)
				}
				fmt.Println("Tracking reset to solved.")
			case "n":
				mu.Lock()
				a := tracker.Arrangement()
				mu.Unlock()
				fmt.Print(render.Net(a, useColor()))
			case "":
				mu.Lock()
				a := tracker.Arrangement()
				mu.Unlock()
				solveTracked(a)
			}
		}
	}
}

func solveTracked(a *nxcube.Arrangement) {
	if a.IsSolved() {
		fmt.Println("Already solved.")
		return
	}

	solver, err := nxcube.NewSolver(a,
		nxcube.WithLogger(logger.Logger),
		nxcube.WithGuardCeiling(cfg.GuardCeiling),
	)
	if err != nil {
		fmt.Println(render.ErrorStyle.Render(err.Error()))
		return
	}
	steps, moves, err := collect(solver)
	if err != nil {
		fmt.Println(render.ErrorStyle.Render("solve failed: " + err.Error()))
		return
	}

	fmt.Print(render.Outline(steps, useColor()))
	fmt.Printf("Solution (%d moves):\n", len(moves))
	for _, line := range render.WrapMoves(moves, 60) {
		fmt.Printf("  %s\n", line)
	}
}
