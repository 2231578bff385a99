// Package bench solves batches of seeded random scrambles in parallel and
// aggregates per-phase statistics.
package bench

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var ErrNotSolved = errors.New("bench: replayed solution does not solve the cube")

// Options configures a benchmark run.
type Options struct {
	Degree         int
	Count          int
	ScrambleLength int
	// Seed of the first scramble. Scramble i uses Seed+i.
	Seed         uint64
	Workers      int
	GuardCeiling int
	Logger       *log.Logger
	// Progress, if set, is called after every finished scramble.
	Progress func(done, total int)
}

// Failure is a scramble the solver could not solve.
type Failure struct {
	Index    int
	Seed     uint64
	Scramble string
	Err      error
}

// Result is the outcome of Run, shaped for storage.
type Result struct {
	Run      storage.Run
	Phases   []storage.PhaseStat
	Failures []Failure
}

type outcome struct {
	moves int
	stats []nxcube.PhaseStats
}

// Run solves opts.Count scrambles with opts.Workers goroutines. Solver
// failures are collected in the result. Only cancellation aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	phases, err := nxcube.PhasesFor(opts.Degree)
	if err != nil {
		return nil, err
	}
	if opts.Count < 1 {
		return nil, fmt.Errorf("bench: count must be positive, got %d", opts.Count)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	agg := newAggregate(phases)
	res := &Result{Run: storage.Run{
		StartedAt:      time.Now().UTC(),
		Degree:         opts.Degree,
		Count:          opts.Count,
		ScrambleLength: opts.ScrambleLength,
		Seed:           opts.Seed,
		Workers:        opts.Workers,
	}}

	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < opts.Count; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			seed := opts.Seed + uint64(i)
			scramble := nxcube.Scramble(opts.Degree, opts.ScrambleLength, seed)
			out, err := solveOne(opts, scramble)

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				logger.Warn("solve failed", "index", i, "seed", seed, "err", err)
				res.Failures = append(res.Failures, Failure{
					Index:    i,
					Seed:     seed,
					Scramble: nxcube.FormatMoves(scramble),
					Err:      err,
				})
			} else {
				agg.add(out)
			}
			if opts.Progress != nil {
				opts.Progress(done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Run.DurationMs = time.Since(res.Run.StartedAt).Milliseconds()
	res.Run.Solved = agg.solved
	res.Run.Failed = len(res.Failures)
	res.Run.TotalMoves = agg.totalMoves
	res.Run.MaxMoves = agg.maxMoves
	res.Phases = agg.phaseStats()

	logger.Debug("bench finished", "solved", res.Run.Solved, "failed", res.Run.Failed, "ms", res.Run.DurationMs)
	return res, nil
}

func solveOne(opts Options, scramble []nxcube.Move) (outcome, error) {
	a := nxcube.NewArrangement(opts.Degree)
	a.Apply(scramble...)

	s, err := nxcube.NewSolver(a,
		nxcube.WithGuardCeiling(opts.GuardCeiling),
		nxcube.WithAnnotations(false),
	)
	if err != nil {
		return outcome{}, err
	}

	var moves []nxcube.Move
	for st, err := range s.Steps() {
		if err != nil {
			return outcome{}, err
		}
		if m, ok := st.(nxcube.Move); ok {
			moves = append(moves, m)
		}
	}

	a.Apply(moves...)
	if !a.IsSolved() {
		return outcome{}, ErrNotSolved
	}
	return outcome{moves: len(moves), stats: s.Stats()}, nil
}

type aggregate struct {
	order      []nxcube.Phase
	phases     map[nxcube.Phase]*storage.PhaseStat
	solved     int
	totalMoves int
	maxMoves   int
}

func newAggregate(phases []nxcube.Phase) *aggregate {
	a := &aggregate{order: phases, phases: make(map[nxcube.Phase]*storage.PhaseStat, len(phases))}
	for i, p := range phases {
		a.phases[p] = &storage.PhaseStat{PhaseKey: p.String(), OrderIndex: i}
	}
	return a
}

func (a *aggregate) add(o outcome) {
	a.solved++
	a.totalMoves += o.moves
	a.maxMoves = max(a.maxMoves, o.moves)
	for _, ps := range o.stats {
		st, ok := a.phases[ps.Phase]
		if !ok {
			continue
		}
		st.TotalMoves += ps.Moves
		st.MaxMoves = max(st.MaxMoves, ps.Moves)
		st.MaxIterations = max(st.MaxIterations, ps.Iterations)
	}
}

func (a *aggregate) phaseStats() []storage.PhaseStat {
	out := make([]storage.PhaseStat, 0, len(a.order))
	for _, p := range a.order {
		out = append(out, *a.phases[p])
	}
	return out
}

// Save stores the run and its phase stats in one transaction and returns
// the run ID. Nothing is stored when either write fails.
func Save(db *storage.DB, r *Result) (string, error) {
	runs := storage.NewRunRepository(db)
	phases := storage.NewPhaseRepository(db)

	run := r.Run
	var id string
	err := db.Transaction(func(tx *sql.Tx) error {
		var err error
		if id, err = runs.CreateTx(tx, &run); err != nil {
			return err
		}
		return phases.SaveTx(tx, id, r.Phases)
	})
	if err != nil {
		return "", err
	}
	r.Run = run
	for i := range r.Phases {
		r.Phases[i].RunID = id
	}
	return id, nil
}
