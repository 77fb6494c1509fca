package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// ActionName identifies one of the user-facing workflow actions.
type ActionName string

const (
	ActionSuggestEntries ActionName = "suggest-entries"
	ActionRefreshHistory ActionName = "refresh-history"
	ActionSubmitEntries  ActionName = "submit-entries"
)

// ActionEvent records one completed workflow action: a suggestion run, a
// history refresh, or a submission attempt. Counts are zero where the action
// never reached that stage.
type ActionEvent struct {
	Action    ActionName
	UserID    string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error

	Mode       string // suggest merge mode, "generate" or "add"
	WindowDays int    // refresh scrape window

	RawCount       int // model entries before normalization
	EntryCount     int // proposals kept, rows scraped, or batch size
	ImportedCount  int // new historical rows from a refresh
	SubmittedCount int
	FailedCount    int

	// Detail carries the summary of a non-fatal model or script failure.
	Detail string
}

// ActionObserver receives workflow action events.
type ActionObserver interface {
	ObserveAction(ctx context.Context, event ActionEvent)
}

// NoopActionObserver ignores all events.
type NoopActionObserver struct{}

func (NoopActionObserver) ObserveAction(context.Context, ActionEvent) {}

type actionLogObserver struct {
	logger *slog.Logger
}

// NewActionLogObserver writes workflow action events to the provided writer,
// one slog text line per action.
func NewActionLogObserver(w io.Writer) ActionObserver {
	if w == nil {
		return NoopActionObserver{}
	}
	return &actionLogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *actionLogObserver) ObserveAction(ctx context.Context, event ActionEvent) {
	attrs := make([]any, 0, 24)
	attrs = append(attrs,
		"action", string(event.Action),
		"user", event.UserID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	if event.Mode != "" {
		attrs = append(attrs, "mode", event.Mode)
	}
	if event.WindowDays > 0 {
		attrs = append(attrs, "window_days", event.WindowDays)
	}
	if event.RawCount > 0 {
		attrs = append(attrs, "raw", event.RawCount)
	}
	if event.EntryCount > 0 {
		attrs = append(attrs, "entries", event.EntryCount)
	}
	if event.ImportedCount > 0 {
		attrs = append(attrs, "imported", event.ImportedCount)
	}
	if event.SubmittedCount > 0 {
		attrs = append(attrs, "submitted", event.SubmittedCount)
	}
	if event.FailedCount > 0 {
		attrs = append(attrs, "failed", event.FailedCount)
	}
	if event.Detail != "" {
		attrs = append(attrs, "detail", event.Detail)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "workflow_action", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "workflow_action", attrs...)
}

func actionObserverOrNoop(observers []ActionObserver) ActionObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopActionObserver{}
}
