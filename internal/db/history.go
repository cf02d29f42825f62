package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one evaluation of one feature file.
type Run struct {
	ID          string
	FeaturePath string
	FeatureName string
	Host        string
	Passed      int
	Failed      int
	StartedAt   time.Time
	Results     []Result
}

type Result struct {
	Position   int
	Name       string
	Pass       bool
	FailedStep string
	FailedLine int
}

// RecordRun stores run and its results in one transaction and returns the
// generated run ID.
func RecordRun(ctx context.Context, db *sql.DB, run Run) (string, error) {
	id := uuid.NewString()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning run insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, feature_path, feature_name, host, passed, failed) VALUES (?, ?, ?, ?, ?, ?)`,
		id, run.FeaturePath, run.FeatureName, run.Host, run.Passed, run.Failed)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for _, r := range run.Results {
		var step sql.NullString
		var line sql.NullInt64
		if !r.Pass {
			step = sql.NullString{String: r.FailedStep, Valid: true}
			line = sql.NullInt64{Int64: int64(r.FailedLine), Valid: true}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, position, name, pass, failed_step, failed_line) VALUES (?, ?, ?, ?, ?, ?)`,
			id, r.Position, r.Name, r.Pass, step, line)
		if err != nil {
			return "", fmt.Errorf("inserting result %d: %w", r.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// ListRuns returns recorded runs, newest first, without their results. With
// failedOnly set it skips runs where every scenario passed.
func ListRuns(ctx context.Context, db *sql.DB, failedOnly bool) ([]Run, error) {
	query := `SELECT id, feature_path, feature_name, host, passed, failed, started_at FROM runs`
	if failedOnly {
		query += ` WHERE failed > 0`
	}
	query += ` ORDER BY started_at DESC, rowid DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.FeaturePath, &r.FeatureName, &r.Host, &r.Passed, &r.Failed, &started); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt = parseTime(started)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// RunResults returns the results recorded for a run in scenario order.
func RunResults(ctx context.Context, db *sql.DB, runID string) ([]Result, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT position, name, pass, COALESCE(failed_step, ''), COALESCE(failed_line, 0)
		FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Position, &r.Name, &r.Pass, &r.FailedStep, &r.FailedLine); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func parseTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05.999", "2006-01-02 15:04:05", time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FindRun resolves a run by ID or unique ID prefix.
func FindRun(ctx context.Context, db *sql.DB, prefix string) (Run, error) {
	if prefix == "" {
		return Run{}, fmt.Errorf("run ID is required")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT id, feature_path, feature_name, host, passed, failed, started_at FROM runs WHERE substr(id, 1, length(?)) = ? LIMIT 2`, prefix, prefix)
	if err != nil {
		return Run{}, fmt.Errorf("querying run: %w", err)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.FeaturePath, &r.FeatureName, &r.Host, &r.Passed, &r.Failed, &started); err != nil {
			return Run{}, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt = parseTime(started)
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("iterating runs: %w", err)
	}

	switch len(found) {
	case 0:
		return Run{}, fmt.Errorf("run %s not found", prefix)
	case 1:
		run := found[0]
		run.Results, err = RunResults(ctx, db, run.ID)
		return run, err
	}
	return Run{}, fmt.Errorf("run prefix %s is ambiguous", prefix)
}

// LatestRuns returns the most recent run of each feature file, ordered by
// path.
func LatestRuns(ctx context.Context, db *sql.DB) ([]Run, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, feature_path, feature_name, host, passed, failed, started_at
		FROM runs r
		WHERE r.rowid = (
			SELECT rowid FROM runs WHERE feature_path = r.feature_path
			ORDER BY started_at DESC, rowid DESC LIMIT 1
		)
		ORDER BY feature_path`)
	if err != nil {
		return nil, fmt.Errorf("querying latest runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.FeaturePath, &r.FeatureName, &r.Host, &r.Passed, &r.Failed, &started); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt = parseTime(started)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
