package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stanleychen/sgtpuzzles/internal/generator"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pegs",
	Short: "Peg Solitaire board generator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			generator.Log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print generation diagnostics")
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
