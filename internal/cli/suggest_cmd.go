package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/cli/formatter"
	"github.com/mwhite/chronoassist/internal/proposal"
	"github.com/mwhite/chronoassist/internal/service"
)

func newSuggestCmd(app *App) *cobra.Command {
	var add bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate proposed entries from the stored notes",
		Long:  "Runs the AI over the stored notes with the shorthand glossary and historical entries as context. By default the result replaces the proposal set; --add appends instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := proposal.ModeGenerate
			if add {
				mode = proposal.ModeAdd
			}

			out, err := app.Proposals.Suggest(cmd.Context(), app.UserID, mode)
			if errors.Is(err, service.ErrEmptyNotes) {
				return fmt.Errorf("no notes to work from; add some with 'chronoassist notes set' first")
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestOutcome(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&add, "add", false, "Append suggestions to the current proposal set instead of replacing it")

	return cmd
}
