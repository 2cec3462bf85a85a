package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/milden6/wordsearch/config"
	"github.com/milden6/wordsearch/internal/xlog"
)

var (
	cfg       *config.Config
	logCloser io.Closer

	configPath   string
	flagDict     string
	flagKind     string
	flagLogLevel string
)

// rootCmd loads the configuration and sets up logging before any
// subcommand runs.
var rootCmd = &cobra.Command{
	Use:           "wordsearch",
	Short:         "Find dictionary words in letter grids",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// flags override the file and the environment
		flags := cmd.Flags()
		if flags.Changed("dict") {
			c.Dict = flagDict
		}
		if flags.Changed("kind") {
			c.Kind = flagKind
		}
		if flags.Changed("log-level") {
			c.Log.Level = flagLogLevel
		}
		if err := c.Validate(); err != nil {
			return err
		}

		closer, err := xlog.Setup(c.Log, os.Stderr)
		if err != nil {
			return err
		}
		cfg, logCloser = c, closer
		return nil
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $WORDSEARCH_CONFIG or ./wordsearch.json)")
	pf.StringVarP(&flagDict, "dict", "d", "", "word list, or compact trie saved with build (.wsct)")
	pf.StringVarP(&flagKind, "kind", "k", "", "dictionary kind, see the kinds command")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
}
