package data

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"availbuilder/internal/availability"
)

// =============================================================================
// RUN HISTORY
// =============================================================================

// One row per build. The snapshot column keeps the full styles map so a bad
// overrides edit can be diffed against the previous run.
const runsTableSchema = `
    CREATE TABLE IF NOT EXISTS availability_runs (
        run_id TEXT PRIMARY KEY,
        generated_at TEXT NOT NULL,
        style_count INTEGER DEFAULT 0,
        size_count INTEGER DEFAULT 0,
        output_path TEXT,
        snapshot_json TEXT DEFAULT '{}'
    );
    CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON availability_runs(generated_at);`

// Run is a recorded build of the availability file.
type Run struct {
	RunID       string
	GeneratedAt time.Time
	StyleCount  int
	SizeCount   int
	OutputPath  string
	Snapshot    availability.Map
}

// CreateTables applies the run-history schema.
func CreateTables() error {
	if _, err := ExecDB(runsTableSchema); err != nil {
		return fmt.Errorf("failed to create availability_runs table: %w", err)
	}
	return nil
}

// RecordRun inserts one history row for a finished build.
func RecordRun(doc *availability.Document, outputPath string) (string, error) {
	snapshot, err := json.Marshal(doc.Styles)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	sizeCount := 0
	for _, sizes := range doc.Styles {
		sizeCount += len(sizes)
	}

	runID := uuid.NewString()
	_, err = ExecDB(`
        INSERT INTO availability_runs (run_id, generated_at, style_count, size_count, output_path, snapshot_json)
        VALUES (?, ?, ?, ?, ?, ?)`,
		runID, doc.UpdatedAt, len(doc.Styles), sizeCount, outputPath, string(snapshot))
	if err != nil {
		return "", err
	}

	return runID, nil
}

// RecentRuns returns up to limit history rows, newest first.
func RecentRuns(limit int) ([]Run, error) {
	rows, err := QueryDB(`
        SELECT run_id, generated_at, style_count, size_count, output_path, snapshot_json
        FROM availability_runs
        ORDER BY generated_at DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r           Run
			generatedAt string
			snapshot    string
		)
		if err := rows.Scan(&r.RunID, &generatedAt, &r.StyleCount, &r.SizeCount, &r.OutputPath, &snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}

		// generated_at is the document's updatedAt stamp, which is valid RFC3339.
		t, err := time.Parse(TimeFormat, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}
		r.GeneratedAt = t

		if err := json.Unmarshal([]byte(snapshot), &r.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run rows: %w", err)
	}

	return runs, nil
}
