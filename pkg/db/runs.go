package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRunNotFound is returned when a run id has no row.
var ErrRunNotFound = errors.New("run not found")

// Command sources recorded per run.
const (
	SourceEnhanced = "enhanced"
	SourceFallback = "fallback"
)

// Run represents one generate invocation and its totals.
type Run struct {
	RunID        int64     `json:"run_id" yaml:"run_id"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	BaselinePath string    `json:"baseline_path" yaml:"baseline_path"`
	DocsDir      string    `json:"docs_dir" yaml:"docs_dir"`
	OutputPath   string    `json:"output_path" yaml:"output_path"`
	OutputHash   string    `json:"output_hash,omitempty" yaml:"output_hash,omitempty"`
	Total        int       `json:"total" yaml:"total"`
	Enhanced     int       `json:"enhanced" yaml:"enhanced"`
	Fallback     int       `json:"fallback" yaml:"fallback"`
	WithSyntax   int       `json:"with_syntax" yaml:"with_syntax"`
	WithExample  int       `json:"with_example" yaml:"with_example"`
	DocsScanned  int       `json:"docs_scanned" yaml:"docs_scanned"`
	DocsFailed   int       `json:"docs_failed" yaml:"docs_failed"`
	Orphans      int       `json:"orphans" yaml:"orphans"`
}

// RunCommand is the outcome of one command within a run.
type RunCommand struct {
	RunID      int64  `json:"run_id" yaml:"run_id"`
	Name       string `json:"name" yaml:"name"`
	Source     string `json:"source" yaml:"source"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	HasSyntax  bool   `json:"has_syntax" yaml:"has_syntax"`
	HasExample bool   `json:"has_example" yaml:"has_example"`
	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// CommandFilter narrows GetRunCommands. Zero values match everything.
type CommandFilter struct {
	Source         string
	MissingExample bool
	NamePattern    string
}

// InsertRun records a run and its commands in one transaction.
func (db *DB) InsertRun(run Run, commands []RunCommand) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	result, err := tx.Exec(`
		INSERT INTO runs (baseline_path, docs_dir, output_path, output_hash,
		                  total, enhanced, fallback, with_syntax, with_example,
		                  docs_scanned, docs_failed, orphans)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.BaselinePath, run.DocsDir, run.OutputPath, NewNullString(run.OutputHash),
		run.Total, run.Enhanced, run.Fallback, run.WithSyntax, run.WithExample,
		run.DocsScanned, run.DocsFailed, run.Orphans)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_commands (run_id, name, source, category, has_syntax, has_example, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare command insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range commands {
		if _, err := stmt.Exec(runID, c.Name, c.Source, NewNullString(c.Category),
			c.HasSyntax, c.HasExample, NewNullString(c.Summary)); err != nil {
			return 0, fmt.Errorf("failed to insert command %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

const runColumns = `run_id, created_at, baseline_path, docs_dir, output_path, output_hash,
	total, enhanced, fallback, with_syntax, with_example, docs_scanned, docs_failed, orphans`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var hash sql.NullString
	err := row.Scan(&r.RunID, &r.CreatedAt, &r.BaselinePath, &r.DocsDir, &r.OutputPath, &hash,
		&r.Total, &r.Enhanced, &r.Fallback, &r.WithSyntax, &r.WithExample,
		&r.DocsScanned, &r.DocsFailed, &r.Orphans)
	if hash.Valid {
		r.OutputHash = hash.String
	}
	return r, err
}

// GetRun retrieves a run by its ID
func (db *DB) GetRun(runID int64) (*Run, error) {
	row := db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY run_id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRunID returns the most recent run id.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: no runs recorded yet", ErrRunNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// GetRunCommands retrieves the commands of a run in baseline order.
func (db *DB) GetRunCommands(runID int64, filter CommandFilter) ([]RunCommand, error) {
	conditions := []string{"run_id = ?"}
	args := []any{runID}

	if filter.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, filter.Source)
	}
	if filter.MissingExample {
		conditions = append(conditions, "has_example = 0")
	}
	if filter.NamePattern != "" {
		conditions = append(conditions, `name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.NamePattern))
	}

	query := fmt.Sprintf(`
		SELECT run_id, name, source, category, has_syntax, has_example, summary
		FROM run_commands
		WHERE %s
		ORDER BY id
	`, strings.Join(conditions, " AND "))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get run commands: %w", err)
	}
	defer rows.Close()

	var commands []RunCommand
	for rows.Next() {
		var c RunCommand
		var category, summary sql.NullString
		if err := rows.Scan(&c.RunID, &c.Name, &c.Source, &category, &c.HasSyntax, &c.HasExample, &summary); err != nil {
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		c.Category = category.String
		c.Summary = summary.String
		commands = append(commands, c)
	}
	return commands, rows.Err()
}

// CommandHistory returns the source of name in each run, most recent first.
func (db *DB) CommandHistory(name string, limit int) ([]RunCommand, error) {
	query := `
		SELECT run_id, name, source, category, has_syntax, has_example, summary
		FROM run_commands
		WHERE name = ?
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get command history: %w", err)
	}
	defer rows.Close()

	var history []RunCommand
	for rows.Next() {
		var c RunCommand
		var category, summary sql.NullString
		if err := rows.Scan(&c.RunID, &c.Name, &c.Source, &category, &c.HasSyntax, &c.HasExample, &summary); err != nil {
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		c.Category = category.String
		c.Summary = summary.String
		history = append(history, c)
	}
	return history, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `%`)

// likePattern turns a name pattern where * matches anything into a LIKE
// pattern. Every other character, _ and % included, matches literally.
func likePattern(pattern string) string {
	return likeEscaper.Replace(pattern)
}

// NewNullString converts empty strings to NULL.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
