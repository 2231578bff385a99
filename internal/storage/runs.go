package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one benchmark run: a batch of random scrambles solved together.
type Run struct {
	RunID          string
	StartedAt      time.Time
	Degree         int
	Count          int
	ScrambleLength int
	Seed           uint64
	Workers        int
	DurationMs     int64
	Solved         int
	Failed         int
	TotalMoves     int
	MaxMoves       int
}

// AvgMoves returns the mean solution length of the solved scrambles.
func (r Run) AvgMoves() float64 {
	if r.Solved == 0 {
		return 0
	}
	return float64(r.TotalMoves) / float64(r.Solved)
}

// RunRepository provides CRUD operations for benchmark runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Create stores a new run and returns its ID. RunID and StartedAt are
// assigned when empty.
func (r *RunRepository) Create(run *Run) (string, error) {
	return createRun(r.db, run)
}

// CreateTx is Create inside tx.
func (r *RunRepository) CreateTx(tx *sql.Tx, run *Run) (string, error) {
	return createRun(tx, run)
}

func createRun(db execer, run *Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := db.Exec(`
		INSERT INTO bench_runs (run_id, started_at, degree, count, scramble_length, seed, workers,
			duration_ms, solved, failed, total_moves, max_moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.StartedAt.Format(time.RFC3339), run.Degree, run.Count, run.ScrambleLength,
		int64(run.Seed), run.Workers, run.DurationMs, run.Solved, run.Failed, run.TotalMoves, run.MaxMoves)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return run.RunID, nil
}

const runColumns = `run_id, started_at, degree, count, scramble_length, seed, workers,
	duration_ms, solved, failed, total_moves, max_moves`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var startedAt string
	var seed int64
	err := row.Scan(&run.RunID, &startedAt, &run.Degree, &run.Count, &run.ScrambleLength,
		&seed, &run.Workers, &run.DurationMs, &run.Solved, &run.Failed, &run.TotalMoves, &run.MaxMoves)
	if err != nil {
		return nil, err
	}
	run.Seed = uint64(seed)
	run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	return &run, nil
}

// Get retrieves a run by ID. It returns nil, nil when no such run exists.
func (r *RunRepository) Get(runID string) (*Run, error) {
	run, err := scanRun(r.db.QueryRow(`SELECT `+runColumns+` FROM bench_runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// List retrieves the most recent runs.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`SELECT `+runColumns+` FROM bench_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Delete deletes a run and its phase stats.
func (r *RunRepository) Delete(runID string) error {
	if _, err := r.db.Exec("DELETE FROM bench_runs WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
