package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags.
var (
	verbose bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "jokebot",
	Short: "Interactive joke bot driven by a state graph",
	Long: `jokebot runs interactive joke sessions as a small state machine:
show the menu, read a choice, fetch a joke or change category, repeat
until you quit.

Jokes come from pluggable sources: a built-in collection, an LLM
writer/critic pair, or a scraped web page. The active source is picked
with JOKES_SOURCE (auto prefers the LLM when an API key is configured).

Run without arguments to start an interactive session.`,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment overrides from this file")

	rootCmd.AddCommand(jokeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(launchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
