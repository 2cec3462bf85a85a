package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	words, skipped, err := Read(strings.NewReader("Apple\n  banana \n\n\tcherry\r\ndon't\ncafé\nzoo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry", "zoo"}, words)
	assert.Equal(t, 2, skipped)
}

func TestReadEmpty(t *testing.T) {
	words, skipped, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Zero(t, skipped)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("act\nActor\nx-ray\n"), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"act", "actor"}, words)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
