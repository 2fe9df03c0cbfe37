package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/switchboard/internal/cli/styles"
	"github.com/bnema/switchboard/internal/domain/entity"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Inspect how addresses map to views",
}

var routesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the route table in match order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		views, err := a.Config.ViewSet()
		if err != nil {
			return err
		}
		routes, err := a.Config.RouteTable()
		if err != nil {
			return err
		}

		out := styles.NewRoutesRenderer(a.Theme).RenderTable(routes, views, entity.ViewID(a.Config.Startup.DefaultView))
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var routesResolveCmd = &cobra.Command{
	Use:   "resolve <path-or-url>...",
	Short: "Show which view an address belongs to",
	Long: `Resolve one or more addresses against the route table. Relative paths
are resolved against content.base_url.

Examples:
  switchboard routes resolve /mail/inbox/123
  switchboard routes resolve http://localhost:5173/calendar /settings`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		routes, err := a.Config.RouteTable()
		if err != nil {
			return err
		}

		r := styles.NewRoutesRenderer(a.Theme)
		for _, raw := range args {
			pathname, view, ok := routes.ResolveURL(raw, a.Config.Content.BaseURL)
			if _, err := fmt.Fprint(cmd.OutOrStdout(), r.RenderResolution(raw, pathname, view, ok)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	routesCmd.AddCommand(routesListCmd, routesResolveCmd)
	rootCmd.AddCommand(routesCmd)
}
