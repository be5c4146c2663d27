package persist

import (
	"context"
	"fmt"
)

// ChronicleEntry is one logged message from a simulation run. Only emitted
// messages are ever persisted; queue contents stay in memory.
type ChronicleEntry struct {
	RunID      string
	Tick       uint64
	Kind       int16
	Importance int16
	Body       string
}

// ChronicleRepo stores the message chronicle.
type ChronicleRepo struct {
	db *DB
}

func NewChronicleRepo(db *DB) *ChronicleRepo {
	return &ChronicleRepo{db: db}
}

// WriteBatch atomically writes a batch of chronicle entries in a single
// transaction. If it fails nothing from the batch is stored; the caller
// decides whether to retry or drop.
func (r *ChronicleRepo) WriteBatch(ctx context.Context, entries []ChronicleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("chronicle begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO chronicle (run_id, tick, kind, importance, body)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.RunID, int64(e.Tick), e.Kind, e.Importance, e.Body,
		); err != nil {
			return fmt.Errorf("chronicle insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Count returns the number of stored entries for a run.
func (r *ChronicleRepo) Count(ctx context.Context, runID string) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chronicle WHERE run_id = $1`, runID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("chronicle count: %w", err)
	}
	return n, nil
}
