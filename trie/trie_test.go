package trie

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/internal/dicttest"
)

func TestTrie(t *testing.T) {
	dicttest.Run(t, func(words []string) (dictionary.Dictionary, error) {
		return New(words)
	})
}

func TestSession(t *testing.T) {
	dicttest.Run(t, func(words []string) (dictionary.Dictionary, error) {
		tr, err := New(words)
		if err != nil {
			return nil, err
		}
		return tr.NewSession(), nil
	})
}

func TestInsert(t *testing.T) {
	tr, err := New(nil)
	require.NoError(t, err)
	assert.True(t, tr.Empty())

	added, err := tr.Insert("burn")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = tr.Insert("burn")
	require.NoError(t, err)
	assert.False(t, added, "duplicate is not new")
	assert.Equal(t, 1, tr.Size())

	added, err = tr.Insert("bur")
	require.NoError(t, err)
	assert.True(t, added, "prefix of an existing word is new")
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 5, tr.NumNodes())

	_, err = tr.Insert("Burn")
	assert.ErrorIs(t, err, dictionary.ErrInvalidCharacter)
	assert.Equal(t, 2, tr.Size())
}

func TestZeroValue(t *testing.T) {
	var tr Trie
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.Further(""))
	assert.Equal(t, []dictionary.Result{{}}, tr.ContainsFurther("", "a", nil))
	assert.Empty(t, dictionary.Words(&tr))

	_, err := tr.Insert("a")
	require.NoError(t, err)
	assert.True(t, tr.Contains("a"))
}

func TestInvalidWord(t *testing.T) {
	_, err := New([]string{"fine", "not fine"})
	assert.ErrorIs(t, err, dictionary.ErrInvalidCharacter)
}

func TestEdgesSorted(t *testing.T) {
	tr, err := New([]string{"zo", "za", "am", "ab", "az", "m"})
	require.NoError(t, err)

	for _, n := range tr.nodes {
		for i := 1; i < len(n.edges); i++ {
			assert.Less(t, n.edges[i-1].ch, n.edges[i].ch)
		}
	}
	assert.Equal(t, []string{"ab", "am", "az", "m", "za", "zo"}, dictionary.Words(tr))
}

func TestSessionSurvivesInsert(t *testing.T) {
	tr, err := New([]string{"burn"})
	require.NoError(t, err)
	s := tr.NewSession()

	assert.False(t, s.Contains("burnt"))
	assert.True(t, s.Further("bur"))

	_, err = tr.Insert("burnt")
	require.NoError(t, err)
	assert.True(t, s.Contains("burnt"))
	assert.True(t, s.Further("burn"))
	assert.Equal(t, 2, s.Size())
}

func TestSessionReset(t *testing.T) {
	tr, err := New([]string{"abc"})
	require.NoError(t, err)
	s := tr.NewSession().(*Session)

	assert.True(t, s.Contains("abc"))
	assert.Equal(t, 3, s.cache.Len())
	s.Reset()
	assert.Equal(t, 0, s.cache.Len())
	assert.True(t, s.Contains("abc"))
}

func TestClone(t *testing.T) {
	tr, err := New([]string{"cat", "cats"})
	require.NoError(t, err)

	c := tr.Clone()
	_, err = c.Insert("dog")
	require.NoError(t, err)

	assert.True(t, c.Contains("cats"))
	assert.True(t, c.Contains("dog"))
	assert.False(t, tr.Contains("dog"), "clone must not share nodes")
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 3, c.Size())
}

func TestEnumerate(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	words := dicttest.RandomWords(r, 500, 9, "abcdefg")
	tr, err := New(words)
	require.NoError(t, err)

	assert.Equal(t, dicttest.NewModel(words).Words(), dictionary.Words(tr))

	var visited []string
	tr.Enumerate(func(word []byte, final bool) dictionary.EnumerationResult {
		visited = append(visited, string(word))
		if len(word) == 1 {
			return dictionary.Skip
		}
		return dictionary.Continue
	})
	for _, v := range visited {
		assert.LessOrEqual(t, len(v), 1)
	}

	count := 0
	tr.Enumerate(func(word []byte, final bool) dictionary.EnumerationResult {
		count++
		if count == 3 {
			return dictionary.Stop
		}
		return dictionary.Continue
	})
	assert.Equal(t, 3, count)
}

func TestDump(t *testing.T) {
	tr, err := New([]string{"ab", "a", "c"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tr.Dump(&buf))
	assert.Equal(t, "Size: 3\n{ac }\n{b|}{|}\n{|}\n", buf.String())
}
