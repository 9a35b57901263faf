package journal

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/htmltrans/internal/processor"
)

// Entry is one recorded task outcome
type Entry struct {
	RunID      string
	Document   string
	Language   string
	State      processor.TaskState
	Error      string
	RecordedAt time.Time
}

// Journal records task results of a run into a SQLite database
type Journal struct {
	db    *sql.DB
	runID string
}

// Open opens or creates the journal database at path for the given run
func Open(path, runID string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := &Journal{db: db, runID: runID}
	if err := j.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			document TEXT NOT NULL,
			language TEXT NOT NULL,
			state TEXT NOT NULL,
			output_path TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_run ON tasks (run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_document ON tasks (document, language)`,
	}

	for _, query := range queries {
		if _, err := j.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create journal tables: %w", err)
		}
	}
	return nil
}

// Record stores one task result
func (j *Journal) Record(result processor.TaskResult) error {
	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}

	_, err := j.db.Exec(
		`INSERT INTO tasks (run_id, document, language, state, output_path, error, duration_ms, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID,
		result.Task.Document,
		result.Task.Language.Code,
		string(result.State),
		result.OutputPath,
		errText,
		result.Duration.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record task %s/%s: %w", result.Task.Language.Code, result.Task.Document, err)
	}
	return nil
}

// Failures returns the most recent failed outcome of every document/language
// pair whose latest recorded state is a failure
func (j *Journal) Failures() ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT t.run_id, t.document, t.language, t.state, t.error, t.recorded_at
		 FROM tasks t
		 JOIN (SELECT document, language, MAX(id) AS id FROM tasks GROUP BY document, language) latest
		   ON t.id = latest.id
		 WHERE t.state LIKE 'FAILED_%'
		 ORDER BY t.document, t.language`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var state, recordedAt string
		if err := rows.Scan(&e.RunID, &e.Document, &e.Language, &state, &e.Error, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to read journal row: %w", err)
		}
		e.State = processor.TaskState(state)
		e.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PrintFailures writes the outstanding failures to w
func (j *Journal) PrintFailures(w io.Writer) error {
	failures, err := j.Failures()
	if err != nil {
		return err
	}

	if len(failures) == 0 {
		fmt.Fprintln(w, "No outstanding failures")
		return nil
	}

	fmt.Fprintf(w, "Outstanding failures: %d\n", len(failures))
	for _, e := range failures {
		fmt.Fprintf(w, "  %s/%s %s (run %s, %s)\n",
			e.Language, e.Document, e.State, e.RunID, e.RecordedAt.Local().Format(time.DateTime))
		if e.Error != "" {
			fmt.Fprintf(w, "    %s\n", e.Error)
		}
	}
	return nil
}

// Close closes the database
func (j *Journal) Close() error {
	return j.db.Close()
}
