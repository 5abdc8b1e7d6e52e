package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "../../configs/config.yaml"

func Test_Config_ShouldLoadFileValues(t *testing.T) {
	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, "https://api.airtable.com", cfg.Store.EndpointURL)
	assert.Equal(t, "Jobs", cfg.Store.TableName)
	assert.Equal(t, 100, cfg.Store.PageSize)
	assert.Equal(t, PolicyUnified, cfg.Mapping.Policy)
	assert.Equal(t, "*/5 * * * *", cfg.Sync.Schedule)
	assert.Equal(t, 5*time.Minute, cfg.Sync.CacheTTL)
	assert.Equal(t, ":8080", cfg.Server.Address())
}

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	t.Setenv("AIRTABLE_ACCESS_TOKEN", "patToken")
	t.Setenv("AIRTABLE_BASE_ID", "appBase")
	t.Setenv("AIRTABLE_TABLE_NAME", "Postings")
	t.Setenv("AIRTABLE_MAX_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("MAPPING_POLICY", PolicyLegacy)
	t.Setenv("DB_CONNECTION_STRING", "file::memory:")
	t.Setenv("SYNC_SCHEDULE", "0 * * * *")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PORT", "9090")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "patToken", cfg.Store.AccessToken)
	assert.Equal(t, "appBase", cfg.Store.BaseID)
	assert.Equal(t, "Postings", cfg.Store.TableName)
	assert.Equal(t, float32(2.5), cfg.Store.MaxRequestsPerSecond)
	assert.Equal(t, PolicyLegacy, cfg.Mapping.Policy)
	assert.Equal(t, "file::memory:", cfg.DB.ConnectionString)
	assert.Equal(t, "0 * * * *", cfg.Sync.Schedule)
	assert.Equal(t, 90*time.Second, cfg.Sync.CacheTTL)
	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func Test_Config_WhenCredentialsMissing_ShouldStillLoad(t *testing.T) {
	t.Setenv("AIRTABLE_ACCESS_TOKEN", "")
	t.Setenv("AIRTABLE_BASE_ID", "")

	cfg, err := Load(configPath)

	require.NoError(t, err)
	assert.Empty(t, cfg.Store.AccessToken)
	assert.Empty(t, cfg.Store.BaseID)
}

func Test_Config_WhenOnlyRequiredSections_ShouldApplyDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("store:\n  base_id: appX\n"), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "appX", cfg.Store.BaseID)
	assert.Equal(t, "Jobs", cfg.Store.TableName)
	assert.Equal(t, PolicyUnified, cfg.Mapping.Policy)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
}

func Test_Config_WhenValuesInvalid_ShouldReportEverySection(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := "mapping:\n  policy: strict\nsync:\n  schedule: every minute\nserver:\n  port: 0\nstore:\n  page_size: 500\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	_, err := Load(file)

	require.Error(t, err)
	for _, section := range []string{"MappingConfig", "SyncConfig", "ServerConfig", "StoreConfig"} {
		assert.Contains(t, err.Error(), section)
	}
}

func Test_Config_WhenFileMissing_ShouldFail(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
