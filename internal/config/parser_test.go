package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_AppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"harvest": {"url": "https://jobs.bytedance.com/campus/position/list?keywords="}}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultApiPattern, cfg.Harvest.ApiPattern)
	assert.Equal(t, DefaultLimit, cfg.Harvest.Limit)
	assert.Equal(t, DefaultPageTimeoutSeconds, cfg.Harvest.PageTimeoutSeconds)
	assert.Equal(t, DefaultDriver, cfg.Harvest.Driver)
	assert.Equal(t, DefaultOutputDir, cfg.Store.OutputDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseConfig_ResolvesUserDataDir(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"harvest": {"url": "https://example.com/list"},
		"chromedp": {"user_data_dir": "chrome-data"}
	}`))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Chromedp.UserDataDir))
	assert.Empty(t, cfg.Rod.UserDataDir)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed json", `{"harvest":`},
		{"missing url", `{"harvest": {"limit": 10}}`},
		{"bad url", `{"harvest": {"url": "not a url"}}`},
		{"negative limit", `{"harvest": {"url": "https://example.com", "limit": -1}}`},
		{"unknown driver", `{"harvest": {"url": "https://example.com", "driver": "selenium"}}`},
		{"es without address", `{"harvest": {"url": "https://example.com"}, "elasticsearch": {"enabled": true}}`},
		{"embedder without model", `{"harvest": {"url": "https://example.com"}, "embedder": {"enabled": true}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_EnvOverridesElasticsearch(t *testing.T) {
	t.Setenv("ES_ADDRESS", "http://localhost:9200")
	t.Setenv("ES_USERNAME", "elastic")
	t.Setenv("ES_PASSWORD", "secret")

	cfg, err := ParseConfig([]byte(`{"harvest": {"url": "https://example.com"}, "elasticsearch": {"enabled": true}}`))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9200", cfg.Elasticsearch.Address)
	assert.Equal(t, "elastic", cfg.Elasticsearch.Username)
	assert.Equal(t, "secret", cfg.Elasticsearch.Password)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"harvest": {"url": "https://example.com", "limit": 20}}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Harvest.Limit)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
