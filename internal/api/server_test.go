package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb-intake-service/internal/config"
	"github.com/mtb-intake-service/internal/domain"
	"github.com/mtb-intake-service/internal/service"
	"github.com/mtb-intake-service/internal/storage"
	"github.com/mtb-intake-service/internal/validation"
)

type fakeCatalogs struct{}

func (fakeCatalogs) ICD10Versions() []string       { return []string{"2022"} }
func (fakeCatalogs) HasICD10Version(v string) bool { return v == "2022" }
func (fakeCatalogs) HasICDO3Version(v string) bool { return v == "2021" }
func (fakeCatalogs) HasICD10Code(v string, c domain.ICD10Code) bool {
	return v == "2022" && c == "C34.9"
}
func (fakeCatalogs) HasICDO3TopographyCode(string, domain.ICDO3TCode) bool { return false }
func (fakeCatalogs) HasICDO3MorphologyCode(string, domain.ICDO3MCode) bool { return false }
func (fakeCatalogs) HasATCCode(domain.ATCCode) bool                        { return true }
func (fakeCatalogs) HasHGNCSymbol(domain.HGNCSymbol) bool                  { return true }

type fakeQuery struct {
	uploads int
	deletes int
}

func (q *fakeQuery) Upload(context.Context, *domain.MTBFile) error { q.uploads++; return nil }
func (q *fakeQuery) Delete(context.Context, domain.PatientID) error {
	q.deletes++
	return nil
}

func newTestServer(t *testing.T) (*Server, *fakeQuery) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "staging.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	validator := validation.NewFileValidatorWithClock(fakeCatalogs{},
		func() time.Time { return time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC) })

	query := &fakeQuery{}
	intake, err := service.NewIntakeService(logger, "ZPM-TEST", validator, store, query)
	require.NoError(t, err)

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0, RateLimit: 1000}
	return NewServer(cfg, "info", logger, intake, store), query
}

const minimalRejectedJSON = `{
	"patient": {"id": "P1", "gender": "male", "birthDate": "1970-01"},
	"consent": {"id": "C1", "patient": "P1", "status": "rejected"},
	"episode": {"id": "E1", "patient": "P1", "period": {"start": "2025-01-10"}}
}`

func TestServer_UploadValidFile(t *testing.T) {
	server, query := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mtbfile", strings.NewReader(minimalRejectedJSON))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, query.uploads)

	var outcome service.IntakeOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, service.OutcomeImported, outcome.Kind)
	assert.Equal(t, "ZPM-TEST", outcome.File.Patient.ManagingZPM)
}

func TestServer_UploadWithIssuesIsStaged(t *testing.T) {
	server, query := newTestServer(t)

	body := strings.Replace(minimalRejectedJSON, `"rejected"`, `"active"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/mtbfile", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, query.uploads)

	// The staged report is retrievable.
	req = httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var report domain.DataQualityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, domain.PatientID("P1"), report.Patient)
	assert.NotEmpty(t, report.Issues)
}

func TestServer_UploadFatalIsRejected(t *testing.T) {
	server, query := newTestServer(t)

	// Rejected consent with a diagnosis present.
	body := strings.Replace(minimalRejectedJSON, `"episode"`, `"diagnoses": [{"id": "D1", "patient": "P1"}], "episode"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/mtbfile", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, query.uploads)
}

func TestServer_UploadMalformedJSON(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mtbfile", strings.NewReader(`{"patient": 42}`))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Delete(t *testing.T) {
	server, query := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/mtbfile/P1", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, query.deletes)
}

func TestServer_ReportNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/mtbfile/UNKNOWN/report", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Health(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RequestIDPropagation(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	// Without a caller-supplied id one is generated.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
