package perfecthash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/internal/dicttest"
)

func testMph(t *testing.T, words []string) {
	G, permute := CreateMinimalPerfectHash(len(words), func(d int32, i int) uint32 {
		return Hash(d, words[i])
	})
	require.Len(t, G, len(words))
	require.ElementsMatch(t, indexes(len(words)), permute, "permute is a permutation")

	words2 := make([]string, len(words))
	for dest, src := range permute {
		words2[dest] = words[src]
	}

	for _, word := range words2 {
		d := G[Hash(0, word)%uint32(len(G))]
		var result string
		if d < 0 {
			result = words2[-d-1]
		} else {
			result = words2[Hash(d, word)%uint32(len(words2))]
		}
		assert.Equal(t, word, result)
	}
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func TestMph_5Words(t *testing.T) {
	testMph(t, []string{
		"apple",
		"banana",
		"hello",
		"how",
		"what",
	})
}

func TestMph_1Words(t *testing.T) {
	testMph(t, []string{
		"alpha",
	})
}

func TestMph_0Words(t *testing.T) {
	testMph(t, []string{})
}

func TestMph_Random(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	words := dicttest.NewModel(dicttest.RandomWords(r, 5000, 9, "abcdefghijklmnopqrstuvwxyz")).Words()
	testMph(t, words)
}

func TestHashBytesMatchesString(t *testing.T) {
	for _, s := range []string{"", "a", "zoological", "th\x00"} {
		for _, d := range []int32{0, 1, 77} {
			assert.Equal(t, Hash(d, s), Hash(d, []byte(s)))
		}
	}
	assert.NotEqual(t, Hash(0, "ab"), Hash(0, "ba"))
	assert.NotEqual(t, Hash(0, "ab"), Hash(1, "ab"))
}

func TestTable(t *testing.T) {
	tb := newTable([]string{"x", "", "yy"})
	assert.True(t, has(&tb, ""))
	assert.True(t, has(&tb, "yy"))
	assert.True(t, has(&tb, []byte("x")))
	assert.False(t, has(&tb, "y"))

	var empty table
	assert.False(t, has(&empty, ""))
}
