package service

import (
	"context"
	"errors"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/proposal"
)

var (
	// ErrEmptyNotes means suggestion was requested with no usable notes.
	ErrEmptyNotes = errors.New("notes are empty")

	// ErrNoProposals means submission was requested with nothing selected.
	ErrNoProposals = errors.New("no proposed entries to submit")
)

// Result is the action-boundary outcome for operations whose failures the
// caller shows the user instead of aborting on: AI calls and external
// scripts fail routinely, and a failed run is still a valid answer.
type Result struct {
	Success bool
	Message string
}

// UserService provisions per-user records on first access.
type UserService interface {
	Ensure(ctx context.Context, userID string) error
}

// NotesService manages the two free-form documents behind suggestion runs.
type NotesService interface {
	GetMainNotes(ctx context.Context, userID string) (string, error)
	SaveMainNotes(ctx context.Context, userID, text string) error
	GetShorthand(ctx context.Context, userID string) (string, error)
	SaveShorthand(ctx context.Context, userID, text string) error
}

// SettingsService resolves and updates per-user settings.
type SettingsService interface {
	// Get returns the effective settings: stored values overlaid on defaults.
	Get(ctx context.Context, userID string) (domain.UserSettings, error)

	// Save merges a partial update over the current effective settings.
	Save(ctx context.Context, userID string, patch domain.SettingsPatch) error
}

// SuggestOutcome reports one suggestion run. RawCount is how many entries
// the model produced before normalization; Entries is the full proposal set
// after the merge.
type SuggestOutcome struct {
	Result
	RawCount int
	Entries  []domain.TimeEntry
}

// ProposalService owns the mutable proposed-entry set.
type ProposalService interface {
	// Suggest runs the AI over the stored notes and merges the result into
	// the proposal set per mode. Blank notes return ErrEmptyNotes before any
	// model call. AI failures come back as a failed Result, not an error.
	Suggest(ctx context.Context, userID string, mode proposal.Mode) (SuggestOutcome, error)

	Get(ctx context.Context, userID string) ([]domain.TimeEntry, error)

	// Save replaces the proposal set with the user's edited entries,
	// clearing any stale submission errors.
	Save(ctx context.Context, userID string, entries []domain.TimeEntry) error

	Clear(ctx context.Context, userID string) error
}

// RefreshOutcome reports one historical-data refresh. Data always holds the
// best available entries: the fresh set on success, the previously stored
// set when the scrape failed.
type RefreshOutcome struct {
	Result
	Imported int
	Data     []domain.TimeEntry
}

// HistoryService owns the confirmed-entry store and its refresh flow.
type HistoryService interface {
	List(ctx context.Context, userID string, windowMonths *int) ([]domain.TimeEntry, error)
	Refresh(ctx context.Context, userID string) (RefreshOutcome, error)
	LastRefreshedAt(ctx context.Context, userID string) (*time.Time, error)
}

// SubmitOutcome reports one submission attempt. A partially failed batch is
// a successful reconciliation: confirmed entries moved to history, failed
// ones stayed proposed with their errors attached.
type SubmitOutcome struct {
	Result
	SubmittedCount int
	FailedCount    int
	Remaining      []domain.TimeEntry
}

// SubmissionService drives the external submit script and reconciles its
// per-entry report against the proposal set.
type SubmissionService interface {
	Submit(ctx context.Context, userID string) (SubmitOutcome, error)
}
