package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/cli/formatter"
	"github.com/mwhite/chronoassist/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change per-user settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Historical data days: %d\n", s.HistoricalDataDays)
			switch {
			case s.PromptOverride == nil:
				fmt.Fprintln(out, "Prompt override:      "+formatter.Dim("(none, built-in prompt)"))
			case *s.PromptOverride == "":
				fmt.Fprintln(out, "Prompt override:      "+formatter.Dim("(blank)"))
			default:
				fmt.Fprintf(out, "Prompt override:\n%s\n", *s.PromptOverride)
			}
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		days           int
		promptOverride string
		clearOverride  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; unspecified fields keep their current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.SettingsPatch{}
			if cmd.Flags().Changed("days") {
				if days <= 0 {
					return fmt.Errorf("--days must be positive, got %d", days)
				}
				patch.HistoricalDataDays = &days
			}
			if cmd.Flags().Changed("prompt-override") && clearOverride {
				return fmt.Errorf("--prompt-override and --clear-prompt-override are mutually exclusive")
			}
			if cmd.Flags().Changed("prompt-override") {
				patch.PromptOverride = &promptOverride
				patch.SetPromptOverride = true
			}
			if clearOverride {
				patch.PromptOverride = nil
				patch.SetPromptOverride = true
			}

			if err := app.Settings.Save(cmd.Context(), app.UserID, patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "How many days of history the scrape script fetches")
	cmd.Flags().StringVar(&promptOverride, "prompt-override", "", "Replace the built-in suggestion prompt (empty string is a blank prompt)")
	cmd.Flags().BoolVar(&clearOverride, "clear-prompt-override", false, "Return to the built-in suggestion prompt")

	return cmd
}
