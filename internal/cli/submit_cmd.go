package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/cli/formatter"
	"github.com/mwhite/chronoassist/internal/service"
)

func newSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the proposed entries through the external script",
		Long:  "Sends the whole proposal set to the submit script. Confirmed entries move to history; failed entries stay proposed with their error shown, ready to edit and resubmit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Submission.Submit(cmd.Context(), app.UserID)
			if errors.Is(err, service.ErrNoProposals) {
				return fmt.Errorf("nothing to submit; run 'chronoassist suggest' first")
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubmitOutcome(out))
			return nil
		},
	}
}
