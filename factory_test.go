package wordsearch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/internal/dicttest"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"trie", "compact_trie", "sorted_list", "perfect_hash"}, Kinds())
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("btree", []string{"a"})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorContains(t, err, "compact_trie")
}

func TestNewInvalidWord(t *testing.T) {
	for _, kind := range Kinds() {
		d, err := New(kind, []string{"good", "BAD"})
		assert.ErrorIs(t, err, dictionary.ErrInvalidCharacter, kind)
		assert.True(t, d == nil, "%s: failed build returned a non-nil dictionary", kind)
	}
}

func TestEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			dicttest.Run(t, func(words []string) (dictionary.Dictionary, error) {
				return New(kind, words)
			})
		})
	}
}

// Every kind, and a session of it, answers every query the same way.
func TestKindsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		words := dicttest.RandomWords(r, 1+r.Intn(400), 7, "abcdefg")
		queries := dicttest.RandomWords(r, 500, 8, "abcdefgh")

		var dicts []dictionary.Dictionary
		for _, kind := range Kinds() {
			d, err := New(kind, words)
			require.NoError(t, err)
			dicts = append(dicts, d, dictionary.Session(d))
		}

		want := dicts[0]
		for j, d := range dicts[1:] {
			require.Equal(t, want.Size(), d.Size(), "dictionary %d", j+1)
			for _, q := range queries {
				require.Equal(t, want.Contains(q), d.Contains(q), "dictionary %d contains %q", j+1, q)
				require.Equal(t, want.Further(q), d.Further(q), "dictionary %d further %q", j+1, q)
				require.Equal(t,
					want.ContainsFurther(q, "gfedcbah", nil),
					d.ContainsFurther(q, "gfedcbah", nil),
					"dictionary %d stem %q", j+1, q)
			}
		}
	}
}

// Further holds for every proper prefix of every word and answers the
// same for all extensions of a non extensible string.
func TestFurtherMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	words := dicttest.RandomWords(r, 300, 6, "abcd")
	for _, kind := range Kinds() {
		d, err := New(kind, words)
		require.NoError(t, err)

		for _, w := range words {
			for i := 0; i < len(w); i++ {
				require.True(t, d.Further(w[:i]), "%s: further %q", kind, w[:i])
			}
		}
		for _, q := range dicttest.RandomWords(r, 200, 6, "abcd") {
			if d.Further(q) || d.Contains(q) {
				continue
			}
			for _, c := range "abcd" {
				ext := q + string(c)
				require.False(t, d.Contains(ext), "%s: contains %q", kind, ext)
				require.False(t, d.Further(ext), "%s: further %q", kind, ext)
			}
		}
	}
}
