package dictionary

import (
	"fmt"
	"sort"
)

// AlphabetSize is the number of distinct letters a dictionary can hold.
const AlphabetSize = 26

// Index returns the bit index of c, 0 for 'a' through 25 for 'z'.
// It reports false for any other byte.
func Index(c byte) (uint, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return uint(c - 'a'), true
}

// Letter is the inverse of Index.
func Letter(i uint) byte {
	return byte('a' + i)
}

// Validate returns an error wrapping ErrInvalidCharacter if word holds a
// byte outside a-z.
func Validate(word string) error {
	for i := 0; i < len(word); i++ {
		if _, ok := Index(word[i]); !ok {
			return fmt.Errorf("%w: %q at position %d of %q", ErrInvalidCharacter, word[i], i, word)
		}
	}
	return nil
}

// Prepare validates words and returns a sorted copy with duplicates removed.
// The input slice is not modified.
func Prepare(words []string) ([]string, error) {
	for _, word := range words {
		if err := Validate(word); err != nil {
			return nil, err
		}
	}

	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	unique := sorted[:0]
	for i, word := range sorted {
		if i > 0 && word == sorted[i-1] {
			continue
		}
		unique = append(unique, word)
	}
	return unique, nil
}
