// Package dicttest holds the behaviour every dictionary.Dictionary must
// show, as a suite each implementation runs from its own tests, plus a brute
// force model to compare implementations against.
package dicttest

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordsearch/dictionary"
)

// BuildFn builds the dictionary under test from words.
type BuildFn func(words []string) (dictionary.Dictionary, error)

// Query is one contains/further expectation.
type Query struct {
	Word     string
	Contains bool
	Further  bool
}

// Scenario is a fixed word list with expected answers.
type Scenario struct {
	Name    string
	Words   []string
	Size    int
	Queries []Query
}

// Scenarios are the observed behaviours every implementation must match.
var Scenarios = []Scenario{
	{
		Name:  "act",
		Words: []string{"act", "acted", "acting", "action", "actions", "actor", "activate"},
		Size:  7,
		Queries: []Query{
			{"a", false, true},
			{"ac", false, true},
			{"act", true, true},
			{"acti", false, true},
			{"activ", false, true},
			{"activa", false, true},
			{"activat", false, true},
			{"activate", true, false},
			{"activates", false, false},
			{"actions", true, false},
			{"b", false, false},
		},
	},
	{
		Name:  "lapland",
		Words: []string{"lapland", "laplanc"},
		Size:  2,
		Queries: []Query{
			{"lap", false, true},
			{"laplan", false, true},
			{"lapland", true, false},
			{"laplanc", true, false},
			{"laplanda", false, false},
			{"", false, true},
		},
	},
	{
		Name:  "empty word only",
		Words: []string{""},
		Size:  1,
		Queries: []Query{
			{"", true, false},
			{"a", false, false},
		},
	},
	{
		Name:  "empty word and letters",
		Words: []string{"", "a", "b", "c"},
		Size:  4,
		Queries: []Query{
			{"", true, true},
			{"a", true, false},
			{"c", true, false},
			{"d", false, false},
			{"ab", false, false},
		},
	},
	{
		Name:  "no words",
		Words: nil,
		Size:  0,
		Queries: []Query{
			{"", false, false},
			{"a", false, false},
			{"anything", false, false},
		},
	},
	{
		Name: "duplicates",
		Words: []string{
			"burner", "zoo", "zoological", "ahem", "ahe", "aheaaaaaaaaa", "ahem",
			"boom", "boomer", "zoo", "burn", "burning", "burned", "burner", "burner", "bur",
		},
		Size: 12,
		Queries: []Query{
			{"burne", false, true},
			{"buzn", false, false},
			{"ba", false, false},
			{"zooz", false, false},
			{"x", false, false},
			{"bu", false, true},
			{"aheaa", false, true},
			{"ahe", true, true},
			{"a", false, true},
			{"z", false, true},
			{"zoo", true, true},
			{"burning", true, false},
			{"boomer", true, false},
			{"aheaaaaaaaaa", true, false},
		},
	},
	{
		Name:  "out of alphabet queries",
		Words: []string{"hi", "there", "chum"},
		Size:  3,
		Queries: []Query{
			{"y", false, false},
			{"yq", false, false},
			{"Hi", false, false},
			{"h{", false, false},
			{"h`", false, false},
			{"th\x00", false, false},
			{"chum\xff", false, false},
			{"hi", true, false},
		},
	},
}

// Run checks build against every scenario, the batch query examples and
// random word sets compared with a Model.
func Run(t *testing.T, build BuildFn) {
	t.Helper()

	for _, sc := range Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			d, err := build(sc.Words)
			require.NoError(t, err)
			assert.Equal(t, sc.Size, d.Size())
			assert.Equal(t, sc.Size == 0, d.Empty())

			for _, word := range sc.Words {
				assert.True(t, d.Contains(word), "contains %q", word)
			}
			for _, q := range sc.Queries {
				assert.Equal(t, q.Contains, d.Contains(q.Word), "contains %q", q.Word)
				assert.Equal(t, q.Further, d.Further(q.Word), "further %q", q.Word)
			}
			CheckBatch(t, d, sc.Words, queryWords(sc.Queries))
		})
	}

	t.Run("contains further", func(t *testing.T) {
		d, err := build([]string{"", "a", "b", "c"})
		require.NoError(t, err)
		got := d.ContainsFurther("", "abcd", nil)
		assert.Equal(t, []dictionary.Result{
			{Contains: true}, {Contains: true}, {Contains: true}, {},
		}, got)

		d, err = build(Scenarios[5].Words)
		require.NoError(t, err)
		got = d.ContainsFurther("burn", "aei", nil)
		assert.Equal(t, []dictionary.Result{
			{}, {Further: true}, {Further: true},
		}, got)

		got = d.ContainsFurther("xyz", "abc", got[:0])
		assert.Equal(t, []dictionary.Result{{}, {}, {}}, got, "unreachable stem")

		got = d.ContainsFurther("burn", "", nil)
		assert.Empty(t, got)

		got = d.ContainsFurther("bur", "nN-", []dictionary.Result{{Contains: true, Further: true}})
		assert.Equal(t, []dictionary.Result{
			{Contains: true, Further: true}, {Contains: true, Further: true}, {}, {},
		}, got, "appends to out")
	})

	t.Run("random", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 20; i++ {
			words := RandomWords(r, r.Intn(200), 8, "abcde")
			d, err := build(words)
			require.NoError(t, err)
			m := NewModel(words)
			Compare(t, m, d, RandomWords(r, 300, 10, "abcdef"))
		}
	})
}

// CheckBatch checks that ContainsFurther agrees with Contains and Further
// for each stem in stems, and for prefixes of words, with every letter and a
// few bytes outside the alphabet as suffixes.
func CheckBatch(t *testing.T, d dictionary.Dictionary, words, stems []string) {
	t.Helper()

	all := append([]string{""}, stems...)
	for _, word := range words {
		for i := 0; i <= len(word); i++ {
			all = append(all, word[:i])
		}
	}

	suffixes := "abcdefghijklmnopqrstuvwxyzA{`\x00"
	var out []dictionary.Result
	for _, stem := range all {
		out = d.ContainsFurther(stem, suffixes, out[:0])
		require.Len(t, out, len(suffixes))
		for i := 0; i < len(suffixes); i++ {
			word := stem + suffixes[i:i+1]
			assert.Equal(t, d.Contains(word), out[i].Contains, "contains %q", word)
			assert.Equal(t, d.Further(word), out[i].Further, "further %q", word)
		}
	}
}

// Compare checks that d answers every query like m.
func Compare(t *testing.T, m *Model, d dictionary.Dictionary, queries []string) {
	t.Helper()

	require.Equal(t, m.Size(), d.Size())
	for word := range m.words {
		require.True(t, d.Contains(word), "contains %q", word)
	}
	for _, q := range queries {
		require.Equal(t, m.Contains(q), d.Contains(q), "contains %q", q)
		require.Equal(t, m.Further(q), d.Further(q), "further %q", q)
	}

	var out []dictionary.Result
	for _, stem := range append(queries, m.Prefixes()...) {
		out = d.ContainsFurther(stem, "fedcbaz", out[:0])
		require.Equal(t, m.ContainsFurther(stem, "fedcbaz", nil), out, "stem %q", stem)
	}
}

// RandomWords returns n random words of length 0 to maxLen over letters.
func RandomWords(r *rand.Rand, n, maxLen int, letters string) []string {
	words := make([]string, n)
	var b strings.Builder
	for i := range words {
		b.Reset()
		for j := r.Intn(maxLen + 1); j > 0; j-- {
			b.WriteByte(letters[r.Intn(len(letters))])
		}
		words[i] = b.String()
	}
	return words
}

func queryWords(qs []Query) []string {
	words := make([]string, len(qs))
	for i, q := range qs {
		words[i] = q.Word
	}
	return words
}

// Model is a brute force dictionary built from Go maps.
type Model struct {
	words    map[string]bool
	prefixes map[string]bool
}

// NewModel returns a Model holding words.
func NewModel(words []string) *Model {
	m := &Model{
		words:    make(map[string]bool),
		prefixes: make(map[string]bool),
	}
	for _, word := range words {
		m.words[word] = true
		for i := 0; i < len(word); i++ {
			m.prefixes[word[:i]] = true
		}
	}
	return m
}

func (m *Model) Contains(word string) bool { return m.words[word] }

func (m *Model) Further(word string) bool { return m.prefixes[word] }

func (m *Model) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	for i := 0; i < len(suffixes); i++ {
		word := stem + suffixes[i:i+1]
		out = append(out, dictionary.Result{Contains: m.Contains(word), Further: m.Further(word)})
	}
	return out
}

func (m *Model) Size() int { return len(m.words) }

func (m *Model) Empty() bool { return len(m.words) == 0 }

// Words returns the model's words in ascending order.
func (m *Model) Words() []string {
	words := make([]string, 0, len(m.words))
	for word := range m.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Prefixes returns every proper prefix of every word, in ascending order.
func (m *Model) Prefixes() []string {
	prefixes := make([]string, 0, len(m.prefixes))
	for p := range m.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes
}

var _ dictionary.Dictionary = (*Model)(nil)
