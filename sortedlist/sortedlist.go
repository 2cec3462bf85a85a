// Package sortedlist implements a dictionary as a sorted slice of words
// searched by bisection. It is the simplest correct dictionary and serves
// as a baseline for the tries.
package sortedlist

import (
	"sort"
	"strings"

	"github.com/milden6/wordsearch/dictionary"
)

// List is an immutable sorted set of words. It is safe for concurrent use.
type List struct {
	words []string
}

// New returns a List holding words, which may be unsorted and repeated.
func New(words []string) (*List, error) {
	sorted, err := dictionary.Prepare(words)
	if err != nil {
		return nil, err
	}
	return &List{words: sorted}, nil
}

// Contains reports whether word is in the list.
func (l *List) Contains(word string) bool {
	i := sort.SearchStrings(l.words, word)
	return i < len(l.words) && l.words[i] == word
}

// Further reports whether a longer word starts with word. Such a word, if
// any, sorts right after word.
func (l *List) Further(word string) bool {
	i := sort.SearchStrings(l.words, word)
	if i < len(l.words) && l.words[i] == word {
		i++
	}
	return i < len(l.words) && strings.HasPrefix(l.words[i], word)
}

// ContainsFurther narrows the list to the words starting with stem once,
// then bisects that range for each suffix byte.
func (l *List) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	lo := sort.SearchStrings(l.words, stem)
	n := sort.Search(len(l.words)-lo, func(i int) bool {
		return !strings.HasPrefix(l.words[lo+i], stem)
	})
	matches := l.words[lo : lo+n]
	k := len(stem)

	for i := 0; i < len(suffixes); i++ {
		c := suffixes[i]

		// the tails matches[j][k:] are sorted too
		j := sort.Search(len(matches), func(j int) bool {
			tail := matches[j][k:]
			return len(tail) > 0 && tail[0] >= c
		})

		var r dictionary.Result
		if j < len(matches) && len(matches[j]) == k+1 && matches[j][k] == c {
			r.Contains = true
			j++
		}
		if j < len(matches) && len(matches[j]) > k+1 && matches[j][k] == c {
			r.Further = true
		}
		out = append(out, r)
	}
	return out
}

// Size returns the number of words.
func (l *List) Size() int {
	return len(l.words)
}

// Empty reports whether the list holds no words.
func (l *List) Empty() bool {
	return len(l.words) == 0
}

// Words returns the words in ascending order. The slice must not be
// modified.
func (l *List) Words() []string {
	return l.words
}

var _ dictionary.Dictionary = (*List)(nil)
