package cmd

import (
	"fmt"

	"github.com/skalene/logshift/internal/ui"
	"github.com/skalene/logshift/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scanExt string

var scanCmd = &cobra.Command{
	Use:   "scan <directory> [pattern...]",
	Short: "Lists the source files a rewrite would consider, without touching them",
	Long: `Discovers matching source files under the directory. Extra arguments
narrow the scan to explicit paths, directories, or glob patterns
(** is supported), anchored at the directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting scan command")
		s, cleanup := startSpinner("Scanning for source files...", verbose)
		defer cleanup()

		root := args[0]
		patterns := args[1:]
		Logger.Debugf("Target directory: %s, patterns: %v, ext=%q", root, patterns, scanExt)

		result, err := workflows.Scan(cmd.Context(), root, workflows.ScanOptions{
			Extension: scanExt,
			Patterns:  patterns,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("scan failed: %v", err)
		}

		if len(result.Files) == 0 {
			s.FinalMSG = color.RedString("✗") + " No " + ui.Highlight.Sprint(result.Extension) +
				" files found in " + ui.Path.Sprint(root)
			return nil
		}

		s.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Found %d %s files:",
			len(result.Files), ui.Highlight.Sprint(result.Extension)) + ui.PathList(result.Files)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanExt, "ext", "", "override the target file extension (e.g. .m)")
}
