package bench

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func TestRunSolvesEveryScramble(t *testing.T) {
	for _, degree := range []int{2, 3, 4} {
		t.Run(fmt.Sprintf("degree%d", degree), func(t *testing.T) {
			var calls int
			res, err := Run(context.Background(), Options{
				Degree:         degree,
				Count:          6,
				ScrambleLength: 30,
				Seed:           100,
				Workers:        3,
				GuardCeiling:   nxcube.DefaultGuardCeiling,
				Progress:       func(done, total int) { calls++ },
			})
			require.NoError(t, err)
			require.Empty(t, res.Failures)

			assert.Equal(t, 6, res.Run.Solved)
			assert.Equal(t, 6, calls)
			assert.Positive(t, res.Run.TotalMoves)
			assert.GreaterOrEqual(t, res.Run.TotalMoves, res.Run.MaxMoves)

			phases, err := nxcube.PhasesFor(degree)
			require.NoError(t, err)
			require.Len(t, res.Phases, len(phases))

			sum := 0
			for i, ps := range res.Phases {
				assert.Equal(t, phases[i].String(), ps.PhaseKey)
				assert.Equal(t, i, ps.OrderIndex)
				sum += ps.TotalMoves
			}
			assert.Equal(t, res.Run.TotalMoves, sum)
		})
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{Degree: 3, Count: 4, ScrambleLength: 20, Seed: 7, Workers: 2}
	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Run.TotalMoves, b.Run.TotalMoves)
	assert.Equal(t, a.Phases, b.Phases)
}

func TestRunCollectsFailures(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Degree:         4,
		Count:          3,
		ScrambleLength: 40,
		Seed:           1,
		Workers:        2,
		GuardCeiling:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Run.Failed)
	assert.Zero(t, res.Run.Solved)
	for _, f := range res.Failures {
		assert.ErrorIs(t, f.Err, nxcube.ErrGuardCeilingExceeded)
		assert.NotEmpty(t, f.Scramble)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Degree: 5, Count: 1})
	assert.ErrorIs(t, err, nxcube.ErrUnsupportedDegree)

	_, err = Run(context.Background(), Options{Degree: 3})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Degree: 3, Count: 10, ScrambleLength: 20})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSave(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	res, err := Run(context.Background(), Options{Degree: 2, Count: 2, ScrambleLength: 10, Workers: 1})
	require.NoError(t, err)

	id, err := Save(db, res)
	require.NoError(t, err)

	run, err := storage.NewRunRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 2, run.Solved)

	stats, err := storage.NewPhaseRepository(db).ForRun(id)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}

func TestSaveIsAtomic(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	res, err := Run(context.Background(), Options{Degree: 2, Count: 2, ScrambleLength: 10, Workers: 1})
	require.NoError(t, err)
	require.NotEmpty(t, res.Phases)

	// A repeated phase key violates the stats primary key.
	res.Phases = append(res.Phases, res.Phases[0])
	_, err = Save(db, res)
	require.Error(t, err)
	assert.Empty(t, res.Run.RunID)

	runs, err := storage.NewRunRepository(db).List(10)
	require.NoError(t, err)
	assert.Empty(t, runs, "a failed phase write leaves no run behind")
}
