// Package perfecthash implements a dictionary as two minimal perfect hash
// tables: one over the words and one over every proper prefix of a word.
// Each query hashes the key and compares it with the one stored in its
// slot, so lookups cost the same whatever the dictionary size.
package perfecthash

import (
	"github.com/milden6/wordsearch/dictionary"
)

// Dictionary is an immutable perfect hash dictionary. It is safe for
// concurrent use.
type Dictionary struct {
	words    table
	prefixes table
}

// New returns a Dictionary holding words, which may be unsorted and
// repeated.
func New(words []string) (*Dictionary, error) {
	sorted, err := dictionary.Prepare(words)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var prefixes []string
	for _, word := range sorted {
		for i := 0; i < len(word); i++ {
			if _, ok := seen[word[:i]]; !ok {
				seen[word[:i]] = struct{}{}
				prefixes = append(prefixes, word[:i])
			}
		}
	}

	return &Dictionary{
		words:    newTable(sorted),
		prefixes: newTable(prefixes),
	}, nil
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return has(&d.words, word)
}

// Further reports whether word is a proper prefix of some word.
func (d *Dictionary) Further(word string) bool {
	return has(&d.prefixes, word)
}

// ContainsFurther hashes stem+c for each byte c of suffixes. The stem is
// copied once into a scratch key.
func (d *Dictionary) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	key := make([]byte, len(stem)+1)
	return d.containsFurther(key, stem, suffixes, out)
}

func (d *Dictionary) containsFurther(key []byte, stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	copy(key, stem)
	last := len(stem)
	for i := 0; i < len(suffixes); i++ {
		key[last] = suffixes[i]
		out = append(out, dictionary.Result{
			Contains: has(&d.words, key),
			Further:  has(&d.prefixes, key),
		})
	}
	return out
}

// Size returns the number of words.
func (d *Dictionary) Size() int {
	return len(d.words.keys)
}

// Empty reports whether the dictionary holds no words.
func (d *Dictionary) Empty() bool {
	return len(d.words.keys) == 0
}

// NewSession returns a query session that reuses one scratch key buffer
// across ContainsFurther calls.
func (d *Dictionary) NewSession() dictionary.Dictionary {
	return &Session{Dictionary: d}
}

// Session is a Dictionary with a reusable key buffer. It is not safe for
// concurrent use.
type Session struct {
	*Dictionary
	key []byte
}

// ContainsFurther is Dictionary.ContainsFurther without allocating.
func (s *Session) ContainsFurther(stem, suffixes string, out []dictionary.Result) []dictionary.Result {
	if cap(s.key) < len(stem)+1 {
		s.key = make([]byte, len(stem)+1, 2*len(stem)+1)
	}
	return s.containsFurther(s.key[:len(stem)+1], stem, suffixes, out)
}

var (
	_ dictionary.Dictionary      = (*Dictionary)(nil)
	_ dictionary.SessionProvider = (*Dictionary)(nil)
	_ dictionary.Dictionary      = (*Session)(nil)
)
