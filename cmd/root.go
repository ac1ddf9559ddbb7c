package cmd

import (
	"fmt"

	logger "github.com/skalene/logshift/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "logshift",
		Short: "Logshift - A CLI for migrating debug print statements to structured logging.",
		Long: `Logshift scans a directory tree for source files and replaces ad hoc
debug print calls with structured Logger calls, so production builds get
categorized, leveled diagnostics instead of console noise.

The conversion is a textual heuristic over three recognized print shapes:
a bracket-tagged message, a plain message, and a message with a trailing
interpolation argument. It is intentionally not a parser; always review
the resulting categories.

Usage:
  logshift <command> [flags]

Available Commands:
  rewrite    Rewrite print calls in place under a directory
  scan       List the files a rewrite would consider
  init       Write a starter .logshift.toml config
  version    Show version information

Run 'logshift help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Args are validated before this hook runs, so usage still
			// prints for bad invocations but not for runtime failures.
			cmd.SilenceUsage = true

			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing logshift with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to Logshift! Run 'logshift --help' to see available commands.")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
