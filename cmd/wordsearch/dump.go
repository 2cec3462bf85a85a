package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch/compacttrie"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Verify a saved compact trie and print its layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return compacttrie.DumpFile(f, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
