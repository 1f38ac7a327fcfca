package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, RepoInMemory, cfg.RepoType)
	assert.Equal(t, "clients.txt", cfg.ClientsFile)
	assert.Equal(t, "./badger_data", cfg.BadgerDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Populate)
}

func TestLoadConfig_FileAndQuotedPaths(t *testing.T) {
	dir := t.TempDir()
	content := `REPO_TYPE: binary
CLIENTS_FILE: "\"clients.pickle\""
MOVIES_FILE: movies.pickle
RENTALS_FILE: rentals.pickle
POPULATE: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, RepoBinary, cfg.RepoType)
	assert.Equal(t, "clients.pickle", cfg.ClientsFile)
	assert.Equal(t, "movies.pickle", cfg.MoviesFile)
	assert.False(t, cfg.Populate)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REPO_TYPE", "FILE")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, RepoFile, cfg.RepoType)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_UnknownRepoType(t *testing.T) {
	t.Setenv("REPO_TYPE", "postgres")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unknown repository type")
}

func TestWithRepoType(t *testing.T) {
	cfg, err := Config{RepoType: RepoInMemory}.WithRepoType("kv")
	require.NoError(t, err)
	assert.Equal(t, RepoKV, cfg.RepoType)

	_, err = cfg.WithRepoType("sqlite")
	assert.Error(t, err)
}
