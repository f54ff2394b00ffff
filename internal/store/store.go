// Package store keeps the results of finished games in an in-memory SQLite database.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/hitzone/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database; nothing outlives the process.
const MemoryDSN = ":memory:"

// Fixed-width UTC timestamps keep text ordering equal to time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for finished games.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenMemory opens a fresh in-memory results log.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			hits INTEGER NOT NULL,
			target_hits INTEGER NOT NULL,
			final_range REAL NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_ended_at ON results(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a finished game and returns its id. An empty id is generated.
func (s *Store) InsertResult(ctx context.Context, r model.RoundResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id, outcome, difficulty, hits, target_hits, final_range, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		string(r.Outcome),
		string(r.Difficulty),
		r.Hits,
		r.TargetHits,
		r.FinalRange,
		r.StartedAt.UTC().Format(timeLayout),
		r.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

// ListResults returns finished games oldest first. A positive last keeps only the most recent.
func (s *Store) ListResults(ctx context.Context, last int) ([]model.RoundResult, error) {
	query := `SELECT id, outcome, difficulty, hits, target_hits, final_range, started_at, ended_at
		FROM results ORDER BY seq ASC`
	args := []any{}
	if last > 0 {
		query = `SELECT * FROM (
			SELECT seq, id, outcome, difficulty, hits, target_hits, final_range, started_at, ended_at
			FROM results ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`
		args = append(args, last)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.RoundResult
	for rows.Next() {
		var (
			r                  model.RoundResult
			seq                int64
			outcome, diff      string
			startedAt, endedAt string
		)
		dest := []any{&r.ID, &outcome, &diff, &r.Hits, &r.TargetHits, &r.FinalRange, &startedAt, &endedAt}
		if last > 0 {
			dest = append([]any{&seq}, dest...)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		r.Outcome = model.Outcome(outcome)
		r.Difficulty = model.Difficulty(diff)
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Totals aggregates counts over all finished games. BestStreak is left for the caller.
func (s *Store) Totals(ctx context.Context) (model.ResultSummary, error) {
	var (
		sum       model.ResultSummary
		lastEnded sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(hits), 0),
			COALESCE(MAX(hits), 0),
			MAX(ended_at)
		FROM results`,
		string(model.OutcomeWin), string(model.OutcomeLose),
	).Scan(&sum.Games, &sum.Wins, &sum.Losses, &sum.TotalHits, &sum.BestHits, &lastEnded)
	if err != nil {
		return model.ResultSummary{}, err
	}
	if lastEnded.Valid {
		parsed, err := time.Parse(time.RFC3339Nano, lastEnded.String)
		if err != nil {
			return model.ResultSummary{}, err
		}
		sum.LastEnded = parsed
	}
	return sum, nil
}
