// Package cmd is the command-line front end: a cobra root command plus a
// run subcommand, the external driver spec.md's §1 explicitly places out of
// scope for the interpreter package itself.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "spellscript",
	Short: "A tree-walking interpreter for the SpellScript language",
	Long: `spellscript runs ".spell" source files: a small, fantasy-themed,
phrase-matching scripting language bracketed by "Begin the grimoire" and
"Close the grimoire".`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set the log level to info")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "set the log level to debug: run start/end and ponder durations (implies --verbose)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional YAML config file (default: ./spellscript.yaml if present)")
}
