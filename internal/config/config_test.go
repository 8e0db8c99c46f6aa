package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SiteHasNoFallback(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	err = manager.Validate()
	assert.ErrorContains(t, err, "site.zpm")
}

func TestManager_LoadsFromEnvironment(t *testing.T) {
	t.Setenv("MTB_SITE_ZPM", "ZPM-TUE")
	t.Setenv("MTB_QUERY_BASE_URL", "http://localhost:9010")
	t.Setenv("MTB_LOGGING_LEVEL", "debug")

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Validate())

	cfg := manager.GetConfig()
	assert.Equal(t, "ZPM-TUE", cfg.Site.ZPM)
	assert.Equal(t, "http://localhost:9010", cfg.Query.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults stay in place for everything not overridden.
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
}

func TestManager_RejectsUnknownStorageBackend(t *testing.T) {
	t.Setenv("MTB_SITE_ZPM", "ZPM-TUE")
	t.Setenv("MTB_QUERY_BASE_URL", "http://localhost:9010")
	t.Setenv("MTB_STORAGE_BACKEND", "cassandra")

	manager, err := NewManager()
	require.NoError(t, err)
	assert.ErrorContains(t, manager.Validate(), "storage backend")
}

func TestManager_RejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("MTB_SITE_ZPM", "ZPM-TUE")
	t.Setenv("MTB_QUERY_BASE_URL", "http://localhost:9010")
	t.Setenv("MTB_LOGGING_LEVEL", "loud")

	manager, err := NewManager()
	require.NoError(t, err)
	assert.ErrorContains(t, manager.Validate(), "log level")
}

func TestPostgresURL(t *testing.T) {
	t.Setenv("MTB_SITE_ZPM", "ZPM-TUE")
	t.Setenv("MTB_QUERY_BASE_URL", "http://localhost:9010")

	manager, err := NewManager()
	require.NoError(t, err)

	url := manager.GetPostgresURL()
	assert.Contains(t, url, "postgres://postgres:@localhost:5432/mtb_staging")
	assert.Contains(t, url, "sslmode=disable")
}
