// Package wordlist reads dictionary files: one word per line, normalized
// to the lowercase letters the dictionaries are built over.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/milden6/wordsearch/dictionary"
)

// Read returns the words of r, one per line. Surrounding whitespace is
// trimmed and letters are lowercased. Blank lines are ignored. Words still
// holding a byte outside a-z, such as apostrophes or accents, are skipped
// and counted.
func Read(r io.Reader) (words []string, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if dictionary.Validate(word) != nil {
			skipped++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return words, skipped, nil
}

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, skipped, err := Read(f)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("file", path).
		Int("words", len(words)).
		Int("skipped", skipped).
		Msg("word list loaded")
	return words, nil
}
