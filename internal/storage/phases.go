package storage

import (
	"database/sql"
	"fmt"
)

// PhaseStat aggregates one solver phase over a benchmark run.
type PhaseStat struct {
	RunID         string
	PhaseKey      string
	OrderIndex    int
	TotalMoves    int
	MaxMoves      int
	MaxIterations int
}

// PhaseRepository stores per-phase aggregates of benchmark runs.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// Save replaces the phase stats of a run in a single transaction.
func (r *PhaseRepository) Save(runID string, stats []PhaseStat) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		return r.SaveTx(tx, runID, stats)
	})
}

// SaveTx replaces the phase stats of a run inside tx.
func (r *PhaseRepository) SaveTx(tx *sql.Tx, runID string, stats []PhaseStat) error {
	if _, err := tx.Exec("DELETE FROM bench_phase_stats WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("failed to clear phase stats: %w", err)
	}
	for _, s := range stats {
		_, err := tx.Exec(`
			INSERT INTO bench_phase_stats (run_id, phase_key, order_index, total_moves, max_moves, max_iterations)
			VALUES (?, ?, ?, ?, ?, ?)
		`, runID, s.PhaseKey, s.OrderIndex, s.TotalMoves, s.MaxMoves, s.MaxIterations)
		if err != nil {
			return fmt.Errorf("failed to save phase stat %s: %w", s.PhaseKey, err)
		}
	}
	return nil
}

// ForRun retrieves the phase stats of a run in phase order.
func (r *PhaseRepository) ForRun(runID string) ([]PhaseStat, error) {
	rows, err := r.db.Query(`
		SELECT run_id, phase_key, order_index, total_moves, max_moves, max_iterations
		FROM bench_phase_stats
		WHERE run_id = ?
		ORDER BY order_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase stats: %w", err)
	}
	defer rows.Close()

	var stats []PhaseStat
	for rows.Next() {
		var s PhaseStat
		if err := rows.Scan(&s.RunID, &s.PhaseKey, &s.OrderIndex, &s.TotalMoves, &s.MaxMoves, &s.MaxIterations); err != nil {
			return nil, fmt.Errorf("failed to scan phase stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
