package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List dictionary kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, kind := range wordsearch.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
