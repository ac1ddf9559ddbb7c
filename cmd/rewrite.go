package cmd

import (
	"fmt"

	"github.com/skalene/logshift/internal/ui"
	"github.com/skalene/logshift/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rewriteDryRun bool
	rewriteDiff   bool
	rewriteExt    string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <directory>",
	Short: "Rewrites debug print calls into structured Logger calls in place",
	Long: `Walks the directory tree, finds source files with the target extension,
and replaces recognized print(...) calls with Logger.shared.log(...) calls
carrying a category symbol and severity level. Files are overwritten in
place with no backup; only files whose content actually changes are
written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rewrite command")
		s, cleanup := startSpinner("Rewriting print statements...", verbose)
		defer cleanup()

		root := args[0]
		Logger.Debugf("Target directory: %s, dry-run=%t, diff=%t, ext=%q", root, rewriteDryRun, rewriteDiff, rewriteExt)

		verb := "Modified"
		if rewriteDryRun {
			verb = "Would modify"
		}

		result, err := workflows.Rewrite(cmd.Context(), root, workflows.RewriteOptions{
			Extension:    rewriteExt,
			DryRun:       rewriteDryRun,
			CollectDiffs: rewriteDiff,
			Found: func(count int) {
				pauseSpinner(s, func() {
					fmt.Printf("Found %d matching files\n", count)
				})
			},
			Progress: func(path string) {
				pauseSpinner(s, func() {
					fmt.Println(ui.Success.Sprint("✓") + " " + verb + ": " + ui.Path.Sprint(path))
				})
			},
		})
		if err != nil {
			return Logger.ErrorfAndReturn("rewrite failed: %v", err)
		}

		if rewriteDiff {
			for _, change := range result.Changes {
				pauseSpinner(s, func() {
					fmt.Print(ui.EnsureNewline(ui.UnifiedDiff(change.Path, change.Before, change.After)))
				})
			}
		}

		Logger.Infof("Rewrite completed: %d of %d files modified", len(result.Modified), result.FilesFound)

		summary := color.GreenString("✓") + fmt.Sprintf(" %s %d of %d %s files",
			verb, len(result.Modified), result.FilesFound, ui.Highlight.Sprint(result.Extension))
		if len(result.Modified) > 0 {
			summary += "\nThe following files were rewritten: " + ui.PathList(result.Modified)
		} else {
			summary += "\n"
		}
		summary += color.CyanString("→") + " Note: you may need to manually review and adjust the Logger categories"

		s.FinalMSG = summary
		return nil
	},
}

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteDryRun, "dry-run", false, "compute changes without writing anything")
	rewriteCmd.Flags().BoolVar(&rewriteDiff, "diff", false, "show unified diffs of the changes")
	rewriteCmd.Flags().StringVar(&rewriteExt, "ext", "", "override the target file extension (e.g. .m)")
}
