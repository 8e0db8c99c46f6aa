package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/mtb-intake-service/internal/domain"
)

// PostgresStore implements domain.StagingStore using PostgreSQL, for
// shared deployments. It expects the schema to already exist (created via
// migrations).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL staging store on an existing
// connection.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL creates a new PostgreSQL staging store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Save upserts the file and its report under the patient key.
func (s *PostgresStore) Save(ctx context.Context, file *domain.MTBFile, report *domain.DataQualityReport) error {
	fileJSON, reportJSON, err := marshalPair(file, report)
	if err != nil {
		return err
	}
	now := time.Now()

	query := `
		INSERT INTO staging (patient_id, mtbfile, report, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (patient_id) DO UPDATE SET
			mtbfile = EXCLUDED.mtbfile,
			report = EXCLUDED.report,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query,
		file.Patient.ID.String(), fileJSON, reportJSON, now, now); err != nil {
		return fmt.Errorf("failed to save staging entry: %w", err)
	}
	return nil
}

// MTBFile returns the staged file for a patient, or domain.ErrNotFound.
func (s *PostgresStore) MTBFile(ctx context.Context, patient domain.PatientID) (*domain.MTBFile, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT mtbfile FROM staging WHERE patient_id = $1", patient.String(),
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
func (s *PostgresStore) DataQualityReport(ctx context.Context, patient domain.PatientID) (*domain.DataQualityReport, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT report FROM staging WHERE patient_id = $1", patient.String(),
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
func (s *PostgresStore) MTBFiles(ctx context.Context) ([]*domain.MTBFile, error) {
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

// DeleteAll removes the staged entry of a patient; absent entries are
// ignored.
func (s *PostgresStore) DeleteAll(ctx context.Context, patient domain.PatientID) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM staging WHERE patient_id = $1", patient.String()); err != nil {
		return fmt.Errorf("failed to delete staging entry: %w", err)
	}
	return nil
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
