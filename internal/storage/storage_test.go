package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenMigrates(t *testing.T) {
	db := openTemp(t)
	assert.Equal(t, "history.db", filepath.Base(db.Path()))

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)

	// Running the migrations again is a no-op.
	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
}

func TestRunRoundTrip(t *testing.T) {
	db := openTemp(t)
	runs := NewRunRepository(db)

	in := &Run{
		StartedAt:      time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Degree:         4,
		Count:          50,
		ScrambleLength: 40,
		Seed:           1 << 63,
		Workers:        8,
		DurationMs:     1234,
		Solved:         49,
		Failed:         1,
		TotalMoves:     49 * 300,
		MaxMoves:       412,
	}
	id, err := runs.Create(in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := runs.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *in, *got)
	assert.InDelta(t, 300.0, got.AvgMoves(), 1e-9)

	missing, err := runs.Get("no-such-run")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRunListOrder(t *testing.T) {
	db := openTemp(t)
	runs := NewRunRepository(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := runs.Create(&Run{StartedAt: base.Add(time.Duration(i) * time.Hour), Degree: 3, Count: i + 1})
		require.NoError(t, err)
	}

	list, err := runs.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Count)
	assert.Equal(t, 2, list[1].Count)
}

func TestPhaseStatsCascade(t *testing.T) {
	db := openTemp(t)
	runs := NewRunRepository(db)
	phases := NewPhaseRepository(db)

	id, err := runs.Create(&Run{Degree: 2, Count: 1})
	require.NoError(t, err)

	stats := []PhaseStat{
		{PhaseKey: "down_corners", OrderIndex: 1, TotalMoves: 20, MaxMoves: 20, MaxIterations: 3},
		{PhaseKey: "up_corners", OrderIndex: 0, TotalMoves: 10, MaxMoves: 10, MaxIterations: 2},
	}
	require.NoError(t, phases.Save(id, stats))

	got, err := phases.ForRun(id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "up_corners", got[0].PhaseKey)
	assert.Equal(t, id, got[0].RunID)
	assert.Equal(t, 3, got[1].MaxIterations)

	require.NoError(t, runs.Delete(id))
	got, err = phases.ForRun(id)
	require.NoError(t, err)
	assert.Empty(t, got)
}
