package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and refresh submitted historical entries",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRefreshCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored historical entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var window *int
			if cmd.Flags().Changed("months") {
				if months <= 0 {
					return fmt.Errorf("--months must be positive, got %d", months)
				}
				window = &months
			}

			entries, err := app.History.List(ctx, app.UserID, window)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatEntriesTable(entries))

			ts, err := app.History.LastRefreshedAt(ctx, app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatLastRefreshed(ts))
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 0, "Only show entries from the last N months")

	return cmd
}

func newHistoryRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch fresh historical data via the scrape script",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.History.Refresh(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRefreshOutcome(out))
			return nil
		},
	}
}
