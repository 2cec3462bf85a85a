package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/milden6/wordsearch"
	"github.com/milden6/wordsearch/compacttrie"
	"github.com/milden6/wordsearch/config"
	"github.com/milden6/wordsearch/dictionary"
	"github.com/milden6/wordsearch/wordlist"
)

// compactTrieExt marks files written by the build command.
const compactTrieExt = ".wsct"

var errNoDict = errors.New("no dictionary: set --dict or " + config.EnvDict)

// loadDictionary builds the dictionary c names, or loads it when it is a
// saved compact trie.
func loadDictionary(c *config.Config) (dictionary.Dictionary, error) {
	if c.Dict == "" {
		return nil, errNoDict
	}
	start := time.Now()

	var d dictionary.Dictionary
	if filepath.Ext(c.Dict) == compactTrieExt {
		if c.Kind != wordsearch.KindCompactTrie {
			return nil, fmt.Errorf("%s is a saved compact trie, kind %q cannot use it", c.Dict, c.Kind)
		}
		t, err := compacttrie.Load(c.Dict)
		if err != nil {
			return nil, err
		}
		d = t
	} else {
		words, err := wordlist.Load(c.Dict)
		if err != nil {
			return nil, err
		}
		if d, err = wordsearch.New(c.Kind, words); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("file", c.Dict).
		Str("kind", c.Kind).
		Int("words", d.Size()).
		Dur("took", time.Since(start)).
		Msg("dictionary ready")
	return d, nil
}
