package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxbow/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show oxbow build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		color.NoColor = !useColor
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}
