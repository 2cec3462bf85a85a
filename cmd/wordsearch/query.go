package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch/dictionary"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a dictionary interactively",
	Long: "Query a dictionary interactively. Lines are split like shell words.\n" +
		"Type help for the list of commands.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDictionary(cfg)
		if err != nil {
			return err
		}
		return runQueries(dictionary.Session(d), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

const queryHelp = `commands:
  contains WORD         is WORD in the dictionary
  further WORD          does a longer word start with WORD
  cf STEM LETTERS       contains and further of STEM followed by each letter
  size                  number of words
  help                  this text
  quit                  leave
`

// runQueries answers the commands read from in until it ends or a quit
// command. Bad commands are reported and skipped.
func runQueries(d dictionary.Dictionary, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var results []dictionary.Result

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			fmt.Fprint(out, "> ")
			continue
		}

		if len(args) > 0 {
			switch cmd, rest := strings.ToLower(args[0]), args[1:]; {
			case cmd == "quit" || cmd == "exit":
				return nil
			case cmd == "help":
				fmt.Fprint(out, queryHelp)
			case cmd == "size" && len(rest) == 0:
				fmt.Fprintln(out, d.Size())
			case cmd == "contains" && len(rest) <= 1:
				fmt.Fprintln(out, d.Contains(optional(rest)))
			case cmd == "further" && len(rest) <= 1:
				fmt.Fprintln(out, d.Further(optional(rest)))
			case cmd == "cf" && len(rest) == 2:
				stem, letters := rest[0], rest[1]
				results = d.ContainsFurther(stem, letters, results[:0])
				for i, r := range results {
					fmt.Fprintf(out, "%s%c contains=%v further=%v\n", stem, letters[i], r.Contains, r.Further)
				}
			default:
				fmt.Fprintf(out, "bad command %q, type help\n", strings.Join(args, " "))
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// optional returns the only argument, or the empty word.
func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
