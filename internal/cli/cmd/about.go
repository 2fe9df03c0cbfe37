package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/switchboard/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
