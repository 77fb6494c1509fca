package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/cli/formatter"
	"github.com/mwhite/chronoassist/internal/domain"
)

func newProposedCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposed",
		Short: "Preview and edit the proposed entries before submission",
	}

	cmd.AddCommand(
		newProposedListCmd(app),
		newProposedEditCmd(app),
		newProposedRemoveCmd(app),
		newProposedClearCmd(app),
	)

	return cmd
}

func newProposedListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current proposal set",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Proposals.Get(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntriesTable(entries))
			return nil
		},
	}
}

// resolveEntryIndex maps a 1-based position from `proposed list` onto the
// stored set.
func resolveEntryIndex(entries []domain.TimeEntry, position int) (int, error) {
	if position < 1 || position > len(entries) {
		return 0, fmt.Errorf("entry %d does not exist (the set holds %d)", position, len(entries))
	}
	return position - 1, nil
}

func newProposedEditCmd(app *App) *cobra.Command {
	var (
		date, project, activity, workItem, comment string
		hours                                      float64
	)

	cmd := &cobra.Command{
		Use:   "edit <entry#>",
		Short: "Change fields of one proposed entry",
		Long:  "Updates the given entry in place. Editing clears any submission error the entry carried from a previous attempt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position := 0
			if _, err := fmt.Sscanf(args[0], "%d", &position); err != nil {
				return fmt.Errorf("entry number must be an integer, got %q", args[0])
			}

			ctx := cmd.Context()
			entries, err := app.Proposals.Get(ctx, app.UserID)
			if err != nil {
				return err
			}
			idx, err := resolveEntryIndex(entries, position)
			if err != nil {
				return err
			}

			e := &entries[idx]
			if cmd.Flags().Changed("date") {
				e.Date = date
			}
			if cmd.Flags().Changed("project") {
				e.Project = project
			}
			if cmd.Flags().Changed("activity") {
				e.Activity = activity
			}
			if cmd.Flags().Changed("work-item") {
				e.WorkItem = workItem
			}
			if cmd.Flags().Changed("comment") {
				e.Comment = comment
			}
			if cmd.Flags().Changed("hours") {
				if hours < 0 {
					return fmt.Errorf("--hours must not be negative")
				}
				e.Hours = hours
			}

			if err := app.Proposals.Save(ctx, app.UserID, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d updated.\n", position)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&project, "project", "", "Project name")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity name")
	cmd.Flags().StringVar(&workItem, "work-item", "", "Work item name")
	cmd.Flags().StringVar(&comment, "comment", "", "Comment text")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")

	return cmd
}

func newProposedRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry#>",
		Short: "Remove one entry from the proposal set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position := 0
			if _, err := fmt.Sscanf(args[0], "%d", &position); err != nil {
				return fmt.Errorf("entry number must be an integer, got %q", args[0])
			}

			ctx := cmd.Context()
			entries, err := app.Proposals.Get(ctx, app.UserID)
			if err != nil {
				return err
			}
			idx, err := resolveEntryIndex(entries, position)
			if err != nil {
				return err
			}

			entries = append(entries[:idx], entries[idx+1:]...)
			if err := app.Proposals.Save(ctx, app.UserID, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d removed, %d remaining.\n", position, len(entries))
			return nil
		},
	}
}

func newProposedClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard all proposed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Proposals.Clear(cmd.Context(), app.UserID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Proposed entries cleared.")
			return nil
		},
	}
}
