package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb-intake-service/internal/domain"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "staging-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := NewSQLiteStore(filepath.Join(tmpDir, "staging.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func stagedFile(patient domain.PatientID) (*domain.MTBFile, *domain.DataQualityReport) {
	birth := domain.NewYearMonth(1970, time.January)
	file := &domain.MTBFile{
		Patient: domain.Patient{ID: patient, Gender: domain.GenderFemale, BirthDate: &birth},
		Consent: domain.Consent{ID: "C1", Patient: patient, Status: domain.ConsentActive},
		Episode: domain.MTBEpisode{
			ID: "E1", Patient: patient,
			Period: domain.Period{Start: domain.NewDate(2025, time.January, 1)},
		},
	}
	report := &domain.DataQualityReport{
		Patient:   patient,
		CreatedOn: time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC),
		Issues: []domain.Issue{{
			Severity: domain.SeverityWarning,
			Message:  "health insurance should be documented",
			Location: domain.Location{EntityKind: "Patient", EntityID: string(patient), Attribute: "insurance"},
		}},
	}
	return file, report
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "staging-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "nested", "staging.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	file, report := stagedFile("P1")
	require.NoError(t, store.Save(ctx, file, report))

	gotFile, err := store.MTBFile(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, file.Patient.ID, gotFile.Patient.ID)
	assert.Equal(t, file.Consent.Status, gotFile.Consent.Status)

	gotReport, err := store.DataQualityReport(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, report.Issues, gotReport.Issues)
}

func TestSQLiteStore_SaveUpserts(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	file, report := stagedFile("P1")
	require.NoError(t, store.Save(ctx, file, report))

	// A re-submission replaces the staged pair for the same patient.
	report.Issues = append(report.Issues, domain.Issue{
		Severity: domain.SeverityError,
		Message:  "diagnoses must be documented",
		Location: domain.Location{EntityKind: "MTBFile", EntityID: "P1", Attribute: "diagnoses"},
	})
	require.NoError(t, store.Save(ctx, file, report))

	got, err := store.DataQualityReport(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, got.Issues, 2)

	files, err := store.MTBFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSQLiteStore_NotFound(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.MTBFile(ctx, "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.DataQualityReport(ctx, "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteStore_DeleteAllIsIdempotent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	file, report := stagedFile("P1")
	require.NoError(t, store.Save(ctx, file, report))

	require.NoError(t, store.DeleteAll(ctx, "P1"))
	_, err := store.MTBFile(ctx, "P1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.DeleteAll(ctx, "P1"))
}

func TestSQLiteStore_MTBFilesListsAllPatients(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, patient := range []domain.PatientID{"P1", "P2", "P3"} {
		file, report := stagedFile(patient)
		require.NoError(t, store.Save(ctx, file, report))
	}

	files, err := store.MTBFiles(ctx)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}
