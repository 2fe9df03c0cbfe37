package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/switchboard/internal/application/usecase"
	"github.com/bnema/switchboard/internal/cli/styles"
)

var eventsLimit int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the most recent lifecycle events",
	Long: `Show the tail of the lifecycle journal: surface creation, loads,
redirected navigations, activations, crashes and window events, across runs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if eventsLimit <= 0 {
			return fmt.Errorf("--limit must be positive, got %d", eventsLimit)
		}

		journal, err := a.Journal()
		if err != nil {
			return err
		}
		out, err := usecase.NewListLifecycleEventsUseCase(journal).Execute(a.Context(), eventsLimit)
		if err != nil {
			return err
		}

		r := styles.NewEventsRenderer(a.Theme)
		w := cmd.OutOrStdout()
		if _, err := fmt.Fprint(w, r.Render(out.Events)); err != nil {
			return err
		}
		_, err = fmt.Fprint(w, r.RenderSummary(out.Runs, time.Now()))
		return err
	},
}

func init() {
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", usecase.DefaultEventsLimit, "number of events to show")
	rootCmd.AddCommand(eventsCmd)
}
