package cmd

import (
	"errors"

	lserrors "github.com/skalene/logshift/internal/errors"
	"github.com/skalene/logshift/internal/ui"
	"github.com/skalene/logshift/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <directory>",
	Short: "Writes a starter .logshift.toml and enables the audit trail",
	Long: `Creates a starter project config in the directory, along with the
.logshift directory so rewrite runs get recorded to the audit log.
The config documents every tunable: target extension, default category,
severity level, ignored directories, and category overrides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		s, cleanup := startSpinner("Initializing project...", verbose)
		defer cleanup()

		root := args[0]

		result, err := workflows.Init(cmd.Context(), root)
		if errors.Is(err, lserrors.ErrConfigExists) {
			s.FinalMSG = color.RedString("✗") + " A " + ui.Path.Sprint(".logshift.toml") +
				" already exists in " + ui.Path.Sprint(root) + "\n" +
				color.CyanString("→") + " Edit it directly to change the rewrite settings"
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("init failed: %v", err)
		}

		s.FinalMSG = color.GreenString("✓") + " Project initialized!\n" +
			"Created: " + ui.PathList([]string{result.ConfigPath, result.AuditDir}) +
			color.CyanString("→") + " Run " + ui.Code.Sprint("logshift rewrite "+root) + " to convert print statements"
		return nil
	},
}
