package wordsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milden6/wordsearch/compacttrie"
	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/perfecthash"
	"github.com/milden6/wordsearch/sortedlist"
	"github.com/milden6/wordsearch/trie"
)

// Dictionary kinds accepted by New.
const (
	KindTrie        = "trie"
	KindCompactTrie = "compact_trie"
	KindSortedList  = "sorted_list"
	KindPerfectHash = "perfect_hash"
)

// ErrUnknownKind is returned by New for a kind it does not know.
var ErrUnknownKind = errors.New("unknown dictionary kind")

type buildFn func(words []string) (dictionary.Dictionary, error)

var kinds = []struct {
	name  string
	build buildFn
}{
	{KindTrie, builder(trie.New)},
	{KindCompactTrie, builder(compacttrie.New)},
	{KindSortedList, builder(sortedlist.New)},
	{KindPerfectHash, builder(perfecthash.New)},
}

// builder adapts a constructor to buildFn. A failed build yields a nil
// interface rather than a typed nil pointer.
func builder[D dictionary.Dictionary](newFn func([]string) (D, error)) buildFn {
	return func(words []string) (dictionary.Dictionary, error) {
		d, err := newFn(words)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Kinds returns the names accepted by New.
func Kinds() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.name
	}
	return names
}

// New builds a dictionary of the given kind holding words. Words may be
// unsorted and repeated, and must hold only the letters a-z.
func New(kind string, words []string) (dictionary.Dictionary, error) {
	for _, k := range kinds {
		if k.name == kind {
			return k.build(words)
		}
	}
	return nil, fmt.Errorf("%w %q, want one of %s", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
}
