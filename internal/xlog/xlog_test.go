package xlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/config"
)

func restoreLogger(t *testing.T) {
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	closer, err := Setup(config.Log{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("file", "words.txt").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"file":"words.txt"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestSetupFile(t *testing.T) {
	restoreLogger(t)

	path := filepath.Join(t.TempDir(), "logs", "wordsearch.log")
	var buf bytes.Buffer
	closer, err := Setup(config.Log{Level: "debug", File: path, MaxSize: 1}, &buf)
	require.NoError(t, err)

	log.Debug().Int("words", 3).Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"words":3`)
	assert.Contains(t, buf.String(), `"words":3`)
}

func TestSetupBadLevel(t *testing.T) {
	restoreLogger(t)

	_, err := Setup(config.Log{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(ConsoleWriter(&buf, StylesByName("light"))).With().Timestamp().Logger()

	logger.Info().Str("kind", "trie").Msg("Test message")

	assert.Contains(t, buf.String(), "Test message")
	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "kind")
	assert.Contains(t, buf.String(), "trie")
}
