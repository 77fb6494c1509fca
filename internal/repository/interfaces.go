package repository

import (
	"context"
	"time"

	"github.com/mwhite/chronoassist/internal/domain"
)

// NotesRepo persists the two free-form per-user documents: the shorthand
// glossary and the main notes. Both are last-write-wins upserts.
type NotesRepo interface {
	GetShorthand(ctx context.Context, userID string) (string, error)
	SaveShorthand(ctx context.Context, userID, text string) error
	GetMainNotes(ctx context.Context, userID string) (string, error)
	SaveMainNotes(ctx context.Context, userID, text string) error
}

// SettingsRepo persists per-user settings. Get returns ErrNotFound when no
// row exists; resolution against defaults happens in the service layer.
type SettingsRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Upsert(ctx context.Context, userID string, s domain.UserSettings) error
}

// HistoricalRepo persists confirmed (already submitted) entries, keyed on a
// per-user content fingerprint so repeated imports stay idempotent.
type HistoricalRepo interface {
	// List returns entries ordered by date descending, ties broken by most
	// recent insert first. A nil window returns everything; otherwise only
	// entries dated within the last windowMonths months are returned.
	List(ctx context.Context, userID string, windowMonths *int) ([]domain.TimeEntry, error)

	// AddAll inserts entries whose fingerprint is not already present for
	// this user and reports how many rows were actually inserted.
	AddAll(ctx context.Context, userID string, entries []domain.TimeEntry) (int, error)

	// LatestImportedAt returns the insert timestamp of the most recently
	// imported entry, or nil when the user has no historical entries.
	LatestImportedAt(ctx context.Context, userID string) (*time.Time, error)
}

// ProposedRepo persists the single mutable per-user set of proposed entries.
type ProposedRepo interface {
	// List returns the current proposal set in insertion order.
	List(ctx context.Context, userID string) ([]domain.TimeEntry, error)

	// ReplaceAll atomically replaces the proposal set (delete then insert in
	// one transaction). SubmissionError values are stored as given; clearing
	// them is the caller's decision.
	ReplaceAll(ctx context.Context, userID string, entries []domain.TimeEntry) error

	// Clear empties the proposal set.
	Clear(ctx context.Context, userID string) error
}
