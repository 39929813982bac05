package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/buildreport/internal/generate"
)

// dbFileName is the SQLite file created inside the history directory.
const dbFileName = "buildreport.db"

// ErrNotFound is returned by lookups that match no stored row.
var ErrNotFound = errors.New("no matching history record")

// Store provides SQLite-based storage for generation history.
// It manages connection pooling and provides methods for saving and
// querying generation records.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store under the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created; otherwise a missing database is an error.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check history database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	// modernc.org/sqlite uses URI-style mode flags: rwc allows creation,
	// rw requires the file to exist.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer; a larger pool buys nothing here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Generations store one row per report generation run
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		generated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_generations_project ON generations(project);
	CREATE INDEX IF NOT EXISTS idx_generations_time ON generations(generated_at);

	-- Artifacts store one row per rendered report within a generation
	CREATE TABLE IF NOT EXISTS artifacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		generation_id INTEGER NOT NULL REFERENCES generations(id),
		report_name TEXT NOT NULL,
		destination TEXT NOT NULL,
		output_type TEXT NOT NULL,
		digest TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		UNIQUE(generation_id, report_name)
	);

	CREATE INDEX IF NOT EXISTS idx_artifacts_generation ON artifacts(generation_id);
	CREATE INDEX IF NOT EXISTS idx_artifacts_report ON artifacts(report_name);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Generation is a stored generation run.
type Generation struct {
	ID          int64
	Project     string
	GeneratedAt time.Time
}

// Artifact is a stored record of one rendered report.
type Artifact struct {
	ID           int64
	GenerationID int64
	ReportName   string
	Destination  string
	OutputType   string
	Digest       string
	SizeBytes    int64
}

// SaveOutcome stores the successful records of a generation run.
// Failed records carry no artifact and are skipped. Runs where every
// report failed are not stored at all; the returned generation ID is 0
// in that case.
func (s *Store) SaveOutcome(ctx context.Context, project string, outcome *generate.Outcome) (int64, error) {
	succeeded := make([]generate.Record, 0, len(outcome.Records))
	for _, rec := range outcome.Records {
		if rec.Err == nil {
			succeeded = append(succeeded, rec)
		}
	}
	if len(succeeded) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	result, err := tx.ExecContext(ctx,
		"INSERT INTO generations (project) VALUES (?)", project)
	if err != nil {
		return 0, fmt.Errorf("failed to insert generation: %w", err)
	}
	generationID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generation id: %w", err)
	}

	for _, rec := range succeeded {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO artifacts (generation_id, report_name, destination, output_type, digest, size_bytes)
		VALUES (?, ?, ?, ?, ?, ?)`,
			generationID,
			rec.ReportName,
			rec.Destination,
			rec.OutputType.String(),
			rec.Digest,
			rec.SizeBytes,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert artifact %q: %w", rec.ReportName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit generation: %w", err)
	}
	return generationID, nil
}

// ListGenerations returns the most recent generations, newest first.
// limit <= 0 means no limit.
func (s *Store) ListGenerations(ctx context.Context, limit int) ([]Generation, error) {
	query := "SELECT id, project, generated_at FROM generations ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var generations []Generation
	for rows.Next() {
		var g Generation
		var generatedAt string
		if err := rows.Scan(&g.ID, &g.Project, &generatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		g.GeneratedAt = parseTimestamp(generatedAt)
		generations = append(generations, g)
	}
	return generations, rows.Err()
}

// ArtifactsFor returns the artifacts of a generation in report-name order.
func (s *Store) ArtifactsFor(ctx context.Context, generationID int64) ([]Artifact, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, generation_id, report_name, destination, output_type, digest, size_bytes
	FROM artifacts
	WHERE generation_id = ?
	ORDER BY report_name`, generationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	var artifacts []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.ID, &a.GenerationID, &a.ReportName, &a.Destination,
			&a.OutputType, &a.Digest, &a.SizeBytes); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, rows.Err()
}

// LatestArtifact returns the most recently stored artifact for a report name.
// It returns ErrNotFound when the report was never generated.
func (s *Store) LatestArtifact(ctx context.Context, reportName string) (*Artifact, error) {
	var a Artifact
	err := s.db.QueryRowContext(ctx, `
	SELECT id, generation_id, report_name, destination, output_type, digest, size_bytes
	FROM artifacts
	WHERE report_name = ?
	ORDER BY generation_id DESC
	LIMIT 1`, reportName).Scan(&a.ID, &a.GenerationID, &a.ReportName, &a.Destination,
		&a.OutputType, &a.Digest, &a.SizeBytes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: report %q", ErrNotFound, reportName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest artifact: %w", err)
	}
	return &a, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp parses a timestamp string returned by SQLite.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	// Zero time fallback keeps listings working for unexpected formats.
	return time.Time{}
}
