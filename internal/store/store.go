// Package store provides a SQLite cache for evaluated TPEP metrics.
//
// Evaluation is cheap but scans revisit the same integers constantly;
// the cache makes repeated analysis of large intervals incremental.
// Only the exact integer values (n, φ, σ, factorization) are persisted.
// Derived ratios are recomputed on read, so a cached result is
// indistinguishable from a fresh one.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alexshd/tpep"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for metric results and scan runs.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout
//
// SQLite supports one writer at a time, so the pool is capped at a
// single connection. Idempotent; safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutResult inserts or refreshes a cached result.
func (s *Store) PutResult(ctx context.Context, r tpep.MetricResult) error {
	factors, err := json.Marshal(r.Factors)
	if err != nil {
		return fmt.Errorf("marshal factors: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (n, phi, sigma, factors, class, parity, stable, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(n) DO UPDATE SET
			phi = excluded.phi,
			sigma = excluded.sigma,
			factors = excluded.factors,
			class = excluded.class,
			parity = excluded.parity,
			stable = excluded.stable`,
		r.N, r.Phi, r.Sigma, string(factors),
		string(r.Class()), string(r.Parity()), r.Stable(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put result n=%d: %w", r.N, err)
	}
	return nil
}

// GetResult looks up a cached result. The second return value reports
// whether the integer was found.
func (s *Store) GetResult(ctx context.Context, n int64) (tpep.MetricResult, bool, error) {
	var (
		r       tpep.MetricResult
		factors string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT n, phi, sigma, factors FROM results WHERE n = ?`, n,
	).Scan(&r.N, &r.Phi, &r.Sigma, &factors)
	if err == sql.ErrNoRows {
		return tpep.MetricResult{}, false, nil
	}
	if err != nil {
		return tpep.MetricResult{}, false, fmt.Errorf("get result n=%d: %w", n, err)
	}

	if err := json.Unmarshal([]byte(factors), &r.Factors); err != nil {
		return tpep.MetricResult{}, false, fmt.Errorf("unmarshal factors for n=%d: %w", n, err)
	}
	return r, true, nil
}

// Run is a persisted scan-run record.
type Run struct {
	ID        string
	Lo, Hi    int64
	Evaluated int64
	Deficient int64
	Perfect   int64
	Abundant  int64
	Forbidden int64
	StartedAt time.Time
	Duration  time.Duration
}

// RecordRun persists a scan report and returns the assigned run ID.
func (s *Store) RecordRun(ctx context.Context, report *tpep.ScanReport) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_runs (id, lo, hi, evaluated, deficient, perfect, abundant, forbidden, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, report.Lo, report.Hi, report.Evaluated,
		report.Deficient, report.Perfect, report.Abundant,
		int64(len(report.ForbiddenZone)),
		time.Now().UTC().Format(time.RFC3339),
		report.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("record run [%d,%d]: %w", report.Lo, report.Hi, err)
	}
	return id, nil
}

// ListRuns returns all recorded scan runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lo, hi, evaluated, deficient, perfect, abundant, forbidden, started_at, duration_ms
		FROM scan_runs ORDER BY started_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &run.Lo, &run.Hi, &run.Evaluated,
			&run.Deficient, &run.Perfect, &run.Abundant, &run.Forbidden,
			&startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
