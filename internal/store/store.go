// Package store persists the last analysis per username. This is
// caller-owned state: the scoring engine never reads or writes it.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when no report is stored under a key.
var ErrNotFound = errors.New("report not found")

// Kind distinguishes the two report pipelines.
type Kind string

const (
	KindProfile Kind = "profile"
	KindRepo    Kind = "repo"
)

// Store is a SQLite-backed report store with prepared statements.
type Store struct {
	db       *sql.DB
	prepared map[string]*sql.Stmt
	mutex    sync.RWMutex
}

// Open creates (or opens) the report database under dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "gitflex.db")
	connStr := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &Store{
		db:       db,
		prepared: make(map[string]*sql.Stmt),
	}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := s.initPreparedStatements(); err != nil {
		return nil, fmt.Errorf("failed to initialize prepared statements: %w", err)
	}

	slog.Info("Report store initialized", "path", dbPath)

	return s, nil
}

// migrate creates the necessary tables
func (s *Store) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			username TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (username, kind)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_updated ON reports(updated_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

// initPreparedStatements initializes frequently used prepared statements
func (s *Store) initPreparedStatements() error {
	statements := map[string]string{
		"upsert_report": `INSERT INTO reports (username, kind, payload, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?) ON CONFLICT(username, kind) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,

		"get_report": `SELECT payload FROM reports WHERE username = ? AND kind = ?`,

		"delete_report": `DELETE FROM reports WHERE username = ? AND kind = ?`,

		"count_reports": `SELECT COUNT(*) FROM reports`,

		"recent_reports": `SELECT username, kind, updated_at FROM reports
			ORDER BY updated_at DESC LIMIT ?`,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for name, query := range statements {
		stmt, err := s.db.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement %s: %w", name, err)
		}
		s.prepared[name] = stmt
	}

	return nil
}

func (s *Store) stmt(name string) (*sql.Stmt, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stmt, exists := s.prepared[name]
	if !exists {
		return nil, fmt.Errorf("prepared statement %s not found", name)
	}
	return stmt, nil
}

// Save upserts the serialized report for a username.
func (s *Store) Save(username string, kind Kind, payload []byte) error {
	stmt, err := s.stmt("upsert_report")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := stmt.Exec(username, string(kind), string(payload), now, now); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load returns the serialized report for a username, or ErrNotFound.
func (s *Store) Load(username string, kind Kind) ([]byte, error) {
	stmt, err := s.stmt("get_report")
	if err != nil {
		return nil, err
	}

	var payload string
	err = stmt.QueryRow(username, string(kind)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return []byte(payload), nil
}

// Delete removes the stored report for a username. Deleting a missing report
// is not an error.
func (s *Store) Delete(username string, kind Kind) error {
	stmt, err := s.stmt("delete_report")
	if err != nil {
		return err
	}

	if _, err := stmt.Exec(username, string(kind)); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// ReportSummary is a listing row: who was analyzed, by which pipeline, when.
type ReportSummary struct {
	Username  string    `json:"username"`
	Kind      Kind      `json:"kind"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recent returns the most recently updated reports, newest first.
func (s *Store) Recent(limit int) ([]ReportSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	stmt, err := s.stmt("recent_reports")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := []ReportSummary{}
	for rows.Next() {
		var summary ReportSummary
		if err := rows.Scan(&summary.Username, &summary.Kind, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Stats returns store statistics for the health endpoint.
func (s *Store) Stats() map[string]any {
	stats := map[string]any{"reports": 0}

	stmt, err := s.stmt("count_reports")
	if err != nil {
		return stats
	}

	var count int
	if err := stmt.QueryRow().Scan(&count); err == nil {
		stats["reports"] = count
	}
	return stats
}

// Close closes the prepared statements and the database connection.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for name, stmt := range s.prepared {
		if err := stmt.Close(); err != nil {
			slog.Warn("Failed to close prepared statement", "name", name, "error", err)
		}
	}
	s.prepared = make(map[string]*sql.Stmt)

	return s.db.Close()
}
