package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb-intake-service/internal/domain"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectPing()
	store, err := NewPostgresStore(db)
	require.NoError(t, err)

	return store, mock
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := newMockStore(t)

	file, report := stagedFile("P1")

	mock.ExpectExec("INSERT INTO staging").
		WithArgs("P1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), file, report)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MTBFile(t *testing.T) {
	store, mock := newMockStore(t)

	raw := `{"patient":{"id":"P1","gender":"female","birthDate":"1970-01"},` +
		`"consent":{"id":"C1","patient":"P1","status":"active"},` +
		`"episode":{"id":"E1","patient":"P1","period":{"start":"2025-01-01"}}}`

	mock.ExpectQuery("SELECT mtbfile FROM staging WHERE patient_id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"mtbfile"}).AddRow(raw))

	file, err := store.MTBFile(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, domain.PatientID("P1"), file.Patient.ID)
	assert.Equal(t, domain.ConsentActive, file.Consent.Status)
	assert.Equal(t, domain.NewYearMonth(1970, time.January), *file.Patient.BirthDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MTBFile_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT mtbfile FROM staging WHERE patient_id").
		WithArgs("MISSING").
		WillReturnRows(sqlmock.NewRows([]string{"mtbfile"}))

	_, err := store.MTBFile(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresStore_DeleteAll(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM staging WHERE patient_id").
		WithArgs("P1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.DeleteAll(context.Background(), "P1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DataQualityReport(t *testing.T) {
	store, mock := newMockStore(t)

	raw := `{"patient":"P1","createdOn":"2025-07-01T09:00:00Z","issues":[` +
		`{"severity":"warning","message":"m","location":{"entityKind":"Patient","entityId":"P1","attribute":"insurance"}}]}`

	mock.ExpectQuery("SELECT report FROM staging WHERE patient_id").
		WithArgs("P1").
		WillReturnRows(sqlmock.NewRows([]string{"report"}).AddRow(raw))

	report, err := store.DataQualityReport(context.Background(), "P1")
	require.NoError(t, err)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, report.Issues[0].Severity)
}
