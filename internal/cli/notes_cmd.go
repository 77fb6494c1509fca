package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhite/chronoassist/internal/autosave"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "View and edit the work notes behind suggestions",
	}

	cmd.AddCommand(
		newNotesShowCmd(app),
		newNotesSetCmd(app),
		newNotesEditCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Notes.GetMainNotes(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newNotesSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [text]",
		Short: "Replace the stored notes with the given text (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			if err := app.Notes.SaveMainNotes(cmd.Context(), app.UserID, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notes saved.")
			return nil
		},
	}
}

// newNotesEditCmd reads notes line by line, autosaving as the user types the
// way the original editor did. Each line is appended; a blank EOF ends the
// session with a final flush.
func newNotesEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Append to the notes interactively with autosave",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Notes.GetMainNotes(ctx, app.UserID)
			if err != nil {
				return err
			}

			if app.IsInteractive != nil && app.IsInteractive() {
				fmt.Fprintln(cmd.OutOrStdout(), "Enter notes, one per line. Ctrl-D to finish.")
			}

			deb := autosave.NewDebouncer(time.Second, func(saveCtx context.Context, text string) error {
				return app.Notes.SaveMainNotes(saveCtx, app.UserID, text)
			})

			lines := []string{}
			if strings.TrimSpace(current) != "" {
				lines = append(lines, current)
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
				deb.Update(strings.Join(lines, "\n"))
			}
			if err := scanner.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("reading input: %w", err)
			}

			if err := deb.Stop(ctx); err != nil {
				return fmt.Errorf("saving notes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notes saved.")
			return nil
		},
	}
}

func textFromArgsOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
