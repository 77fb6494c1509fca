package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Notes      service.NotesService
	Settings   service.SettingsService
	Proposals  service.ProposalService
	History    service.HistoryService
	Submission service.SubmissionService

	// UserID is the anonymous local identity every operation is keyed by.
	UserID string

	// IsInteractive reports whether stdin is a terminal; the notes editor
	// behaves differently when input is piped.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronoassist" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chronoassist",
		Short:         "AI-assisted timesheet entry workflow",
		Long:          "Turn free-form work notes into structured timesheet entries, preview and edit them, then submit them through the external timesheet scripts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNotesCmd(app),
		newShorthandCmd(app),
		newSettingsCmd(app),
		newSuggestCmd(app),
		newProposedCmd(app),
		newHistoryCmd(app),
		newSubmitCmd(app),
	)

	return root
}
