package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.Corrector.MaxEditDistance)
	assert.Equal(t, 5, cfg.Corrector.TopKCandidates)
	assert.Equal(t, 15*time.Second, cfg.OracleTimeout())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
vocabulary:
  first_names: /srv/first.csv
  last_names: /srv/last.csv
corrector:
  max_edit_distance: 1
oracle:
  model: claude-3-haiku-20240307
  timeout_seconds: 5
batch:
  workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/first.csv", cfg.Vocabulary.FirstNames)
	assert.Equal(t, 1, cfg.Corrector.MaxEditDistance)
	assert.Equal(t, 5, cfg.Corrector.TopKCandidates) // default survives partial file
	assert.Equal(t, "claude-3-haiku-20240307", cfg.Oracle.Model)
	assert.Equal(t, 5*time.Second, cfg.OracleTimeout())
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("ORACLE_MODEL", "claude-3-opus-20240229")
	t.Setenv("FIRST_NAMES_PATH", "/override/first.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "claude-3-opus-20240229", cfg.Oracle.Model)
	assert.Equal(t, "/override/first.csv", cfg.Vocabulary.FirstNames)
}
