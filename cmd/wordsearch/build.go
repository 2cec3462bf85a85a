package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch/compacttrie"
	"github.com/milden6/wordsearch/wordlist"
)

var buildOut string

// buildCmd saves a compact trie so later runs can load it instead of
// building it from the word list.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a compact trie from a word list and save it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Dict == "" {
			return errNoDict
		}
		if filepath.Ext(cfg.Dict) == compactTrieExt {
			return fmt.Errorf("%s is already a compact trie", cfg.Dict)
		}

		words, err := wordlist.Load(cfg.Dict)
		if err != nil {
			return err
		}
		t, err := compacttrie.New(words)
		if err != nil {
			return err
		}

		out := buildOut
		if out == "" {
			out = cfg.Dict[:len(cfg.Dict)-len(filepath.Ext(cfg.Dict))] + compactTrieExt
		}
		n, err := t.Save(out)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words, %d rows, %d bytes\n", out, t.Size(), t.NumRows(), n)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output file (default: the word list name with "+compactTrieExt+")")
	rootCmd.AddCommand(buildCmd)
}
