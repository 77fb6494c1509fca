package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShorthandCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shorthand",
		Short: "View and edit the abbreviation glossary used during suggestions",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored shorthand glossary",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := app.Notes.GetShorthand(cmd.Context(), app.UserID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set [text]",
			Short: "Replace the glossary with the given text (or stdin)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := textFromArgsOrStdin(cmd, args)
				if err != nil {
					return err
				}
				if err := app.Notes.SaveShorthand(cmd.Context(), app.UserID, text); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shorthand saved.")
				return nil
			},
		},
	)

	return cmd
}
