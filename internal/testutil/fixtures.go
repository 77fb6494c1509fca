package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwhite/chronoassist/internal/domain"
)

// EntryOption mutates a fixture entry.
type EntryOption func(*domain.TimeEntry)

func WithDate(date string) EntryOption {
	return func(e *domain.TimeEntry) { e.Date = date }
}

func WithDaysAgo(days int) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Date = time.Now().UTC().AddDate(0, 0, -days).Format(domain.DateLayout)
	}
}

func WithHours(h float64) EntryOption {
	return func(e *domain.TimeEntry) { e.Hours = h }
}

func WithComment(c string) EntryOption {
	return func(e *domain.TimeEntry) { e.Comment = c }
}

func WithSubmissionError(msg string) EntryOption {
	return func(e *domain.TimeEntry) { e.SubmissionError = msg }
}

// NewTestEntry builds a plausible time entry dated today.
func NewTestEntry(project, workItem string, opts ...EntryOption) domain.TimeEntry {
	e := domain.TimeEntry{
		ID:       uuid.New().String(),
		Date:     time.Now().UTC().Format(domain.DateLayout),
		Project:  project,
		Activity: "Development",
		WorkItem: workItem,
		Hours:    1,
		Comment:  "worked on " + workItem,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
