package query

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtb-intake-service/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testFile(patient domain.PatientID) *domain.MTBFile {
	birth := domain.NewYearMonth(1970, time.January)
	return &domain.MTBFile{
		Patient: domain.Patient{ID: patient, Gender: domain.GenderMale, BirthDate: &birth},
		Consent: domain.Consent{ID: "C1", Patient: patient, Status: domain.ConsentRejected},
	}
}

func newTestClient(t *testing.T, baseURL string, dedup IdempotencyCache) *Client {
	t.Helper()
	client, err := NewClient(Config{BaseURL: baseURL, Timeout: 5 * time.Second, RateLimit: 100}, dedup, testLogger())
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{}, nil, testLogger())
	assert.Error(t, err)
}

func TestClient_Upload(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mtbfile", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	require.NoError(t, client.Upload(context.Background(), testFile("P1")))
	assert.Equal(t, 1, requests)
}

func TestClient_UploadDeduplicatesIdenticalFiles(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dedup, err := NewLRUCache(8)
	require.NoError(t, err)
	client := newTestClient(t, server.URL, dedup)

	file := testFile("P1")
	require.NoError(t, client.Upload(context.Background(), file))
	require.NoError(t, client.Upload(context.Background(), file))
	assert.Equal(t, 1, requests, "identical re-upload must not hit the service")

	// A changed file is forwarded again.
	file.Patient.ManagingZPM = "ZPM-A"
	require.NoError(t, client.Upload(context.Background(), file))
	assert.Equal(t, 2, requests)
}

func TestClient_UploadFailureIsNotRemembered(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dedup, err := NewLRUCache(8)
	require.NoError(t, err)
	client := newTestClient(t, server.URL, dedup)

	file := testFile("P1")
	assert.Error(t, client.Upload(context.Background(), file))
	assert.Error(t, client.Upload(context.Background(), file))
	assert.Equal(t, 2, requests)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/mtbfile/P1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	assert.NoError(t, client.Delete(context.Background(), "P1"))
}

func TestClient_ErrorStatusSurfacesAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	err := client.Upload(context.Background(), testFile("P1"))
	assert.ErrorContains(t, err, "500")
}

func TestLRUCache(t *testing.T) {
	cache, err := NewLRUCache(2)
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, cache.Seen(ctx, "P1", "abc"))

	cache.Remember(ctx, "P1", "abc")
	assert.True(t, cache.Seen(ctx, "P1", "abc"))
	assert.False(t, cache.Seen(ctx, "P1", "def"), "a different digest for the same patient is not seen")
	assert.False(t, cache.Seen(ctx, "P2", "abc"))
}
