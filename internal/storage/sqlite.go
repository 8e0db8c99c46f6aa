// Package storage implements the local staging store: MTB files with
// non-fatal quality issues are kept here, together with their reports,
// until they are cleaned up and re-submitted or purged. The store is
// keyed by patient; saving file and report is atomic per key.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mtb-intake-service/internal/domain"
)

// SQLiteStore implements domain.StagingStore using SQLite, the single-node
// default backend.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite staging store. It creates the
// database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS staging (
		patient_id TEXT PRIMARY KEY,
		mtbfile TEXT NOT NULL,
		report TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_staging_updated_at ON staging(updated_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Save upserts the file and its report under the patient key in a single
// transaction.
func (s *SQLiteStore) Save(ctx context.Context, file *domain.MTBFile, report *domain.DataQualityReport) error {
	fileJSON, reportJSON, err := marshalPair(file, report)
	if err != nil {
		return err
	}
	now := time.Now()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO staging (patient_id, mtbfile, report, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (patient_id) DO UPDATE SET
			mtbfile = excluded.mtbfile,
			report = excluded.report,
			updated_at = excluded.updated_at
	`, file.Patient.ID.String(), fileJSON, reportJSON, now, now)
	if err != nil {
		return fmt.Errorf("failed to save staging entry: %w", err)
	}
	return nil
}

// MTBFile returns the staged file for a patient, or domain.ErrNotFound.
func (s *SQLiteStore) MTBFile(ctx context.Context, patient domain.PatientID) (*domain.MTBFile, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT mtbfile FROM staging WHERE patient_id = ?", patient.String(),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load staged file: %w", err)
	}

	var file domain.MTBFile
	if err := json.Unmarshal([]byte(raw), &file); err != nil {
		return nil, fmt.Errorf("failed to decode staged file: %w", err)
	}
	return &file, nil
}

// DataQualityReport returns the staged report for a patient, or
// domain.ErrNotFound.
func (s *SQLiteStore) DataQualityReport(ctx context.Context, patient domain.PatientID) (*domain.DataQualityReport, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT report FROM staging WHERE patient_id = ?", patient.String(),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load staged report: %w", err)
	}

	var report domain.DataQualityReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("failed to decode staged report: %w", err)
	}
	return &report, nil
}

// MTBFiles lists all staged files, oldest first.
func (s *SQLiteStore) MTBFiles(ctx context.Context) ([]*domain.MTBFile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT mtbfile FROM staging ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	defer rows.Close()

	var files []*domain.MTBFile
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var file domain.MTBFile
		if err := json.Unmarshal([]byte(raw), &file); err != nil {
			return nil, fmt.Errorf("failed to decode staged file: %w", err)
		}
		files = append(files, &file)
	}
	return files, rows.Err()
}

// DeleteAll removes the staged entry of a patient. Deleting an absent
// entry is not an error.
func (s *SQLiteStore) DeleteAll(ctx context.Context, patient domain.PatientID) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM staging WHERE patient_id = ?", patient.String())
	if err != nil {
		return fmt.Errorf("failed to delete staging entry: %w", err)
	}
	return nil
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func marshalPair(file *domain.MTBFile, report *domain.DataQualityReport) (string, string, error) {
	fileJSON, err := json.Marshal(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode MTB file: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(fileJSON), string(reportJSON), nil
}
