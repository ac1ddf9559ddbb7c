package cmd

import (
	"fmt"

	"github.com/skalene/logshift/internal/version"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var versionBanner bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionBanner {
			banner := figure.NewFigure("logshift", "", true)
			banner.Print()
		}
		fmt.Println("logshift " + version.Info())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionBanner, "banner", false, "show the ASCII art banner")
}
