package sortedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/internal/dicttest"
)

func TestList(t *testing.T) {
	dicttest.Run(t, func(words []string) (dictionary.Dictionary, error) {
		return New(words)
	})
}

func TestWords(t *testing.T) {
	l, err := New([]string{"zoo", "ahem", "zoo", "", "boom"})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ahem", "boom", "zoo"}, l.Words())
	assert.Equal(t, 4, l.Size())
}

func TestFurtherSkipsExactMatch(t *testing.T) {
	l, err := New([]string{"ab", "abc", "abd", "b"})
	require.NoError(t, err)

	assert.True(t, l.Further("ab"))
	assert.False(t, l.Further("abc"))
	assert.False(t, l.Further("b"))
	assert.True(t, l.Further(""))

	got := l.ContainsFurther("a", "ba", nil)
	assert.Equal(t, []dictionary.Result{{Contains: true, Further: true}, {}}, got)
}

func TestInvalidWord(t *testing.T) {
	_, err := New([]string{"fine", "Nope"})
	assert.ErrorIs(t, err, dictionary.ErrInvalidCharacter)
}
