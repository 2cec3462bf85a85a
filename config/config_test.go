package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordsearch.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "none.json"))
	_, err := Load("")
	assert.Error(t, err, "named config file must exist")

	t.Setenv(EnvConfig, "")
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"dict": "words.txt",
		"workers": "3",
		"log": {"level": "debug", "max_age": 30}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.Dict)
	assert.Equal(t, "compact_trie", cfg.Kind, "kept from defaults")
	assert.Equal(t, 3, cfg.Workers, "weakly typed")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Log.MaxAge)
	assert.Equal(t, 10, cfg.Log.MaxSize)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(writeConfig(t, `{"dict": `))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{"dictionary": "words.txt"}`))
	assert.ErrorContains(t, err, "dictionary")

	_, err = Load(writeConfig(t, `{"log": {"level": "loud"}}`))
	assert.ErrorContains(t, err, "log level")

	_, err = Load(writeConfig(t, `{"workers": -1}`))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"dict": "file.txt", "kind": "trie"}`)
	t.Setenv(EnvDict, "env.txt")
	t.Setenv(EnvWorkers, "8")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "ws.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.Dict)
	assert.Equal(t, "trie", cfg.Kind)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "ws.log", cfg.Log.File)

	t.Setenv(EnvWorkers, "many")
	_, err = Load(path)
	assert.ErrorContains(t, err, EnvWorkers)
}
